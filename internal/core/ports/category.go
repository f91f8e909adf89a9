package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, categoryID int) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, categoryID int) error
}

type CategoryService interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID int) (*domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int) error
}
