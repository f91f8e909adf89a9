package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const (
	maxCategoryNameLength   = 50
	maxCategoryReasonLength = 255
)

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func validateCategoryForCreate(c domain.Category) domain.ErrorList {
	var errs domain.ErrorList
	switch {
	case strings.TrimSpace(c.CategoryName) == "":
		errs = append(errs, domain.ErrCategoryNameRequired)
	case len(c.CategoryName) > maxCategoryNameLength:
		errs = append(errs, domain.ErrCategoryNameTooLong)
	}
	if len(c.Reason) > maxCategoryReasonLength {
		errs = append(errs, domain.ErrCategoryReasonTooLong)
	}
	return errs
}

func validateCategoryForUpdate(c domain.Category) domain.ErrorList {
	var errs domain.ErrorList
	if c.CategoryID <= 0 {
		errs = append(errs, domain.ErrInvalidCategoryID)
	}
	return append(errs, validateCategoryForCreate(c)...)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID int) (*domain.Category, error) {
	if categoryID <= 0 {
		return nil, domain.ErrorList{domain.ErrInvalidCategoryID}
	}
	return s.repo.GetByID(ctx, categoryID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if errs := validateCategoryForCreate(category); len(errs) > 0 {
		return nil, errs
	}
	created, err := s.repo.Create(ctx, &category)
	if err != nil {
		s.logger.Error().Err(err).Str("name", category.CategoryName).Msg("failed to create category")
		return nil, err
	}
	s.logger.Info().Int("category_id", created.CategoryID).Msg("category created")
	return created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category domain.Category) error {
	if errs := validateCategoryForUpdate(category); len(errs) > 0 {
		return errs
	}
	return s.repo.Update(ctx, &category)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID int) error {
	if categoryID <= 0 {
		return domain.ErrorList{domain.ErrInvalidCategoryID}
	}
	return s.repo.Delete(ctx, categoryID)
}
