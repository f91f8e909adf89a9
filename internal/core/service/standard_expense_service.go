package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const (
	maxExpenseReasonLength = 30
	maxExpenseDescLength   = 255
)

var validFrequencies = []string{
	domain.FrequencyDaily,
	domain.FrequencyWeekly,
	domain.FrequencyMonthly,
	domain.FrequencyYearly,
}

type StandardExpenseService struct {
	repo   ports.StandardExpenseRepository
	logger zerolog.Logger
}

func NewStandardExpenseService(repo ports.StandardExpenseRepository, logger zerolog.Logger) *StandardExpenseService {
	return &StandardExpenseService{repo: repo, logger: logger}
}

func canonicalFrequency(f string) string {
	for _, valid := range validFrequencies {
		if strings.EqualFold(f, valid) {
			return valid
		}
	}
	return ""
}

func validateStandardExpenseForCreate(e domain.StandardExpense) domain.ErrorList {
	var errs domain.ErrorList
	if e.WalletID <= 0 {
		errs = append(errs, domain.ErrStandardExpenseInvalidWallet)
	}
	if e.CategoryID <= 0 {
		errs = append(errs, domain.ErrStandardExpenseInvalidCategory)
	}
	if canonicalFrequency(e.Frequency) == "" {
		errs = append(errs, domain.ErrInvalidFrequencyType)
	}
	if len(e.Reason) > maxExpenseReasonLength {
		errs = append(errs, domain.ErrStandardExpenseReasonTooLong)
	}
	if len(e.Description) > maxExpenseDescLength {
		errs = append(errs, domain.ErrStandardExpenseDescTooLong)
	}
	if e.Amount <= 0 {
		errs = append(errs, domain.ErrInvalidStandardExpenseAmount)
	}
	if e.NextDate.Before(startOfToday()) {
		errs = append(errs, domain.ErrStandardExpensePastDate)
	}
	return errs
}

func validateStandardExpenseForUpdate(e domain.StandardExpense) domain.ErrorList {
	var errs domain.ErrorList
	if e.ExpenseID <= 0 {
		errs = append(errs, domain.ErrInvalidStandardExpenseID)
	}
	return append(errs, validateStandardExpenseForCreate(e)...)
}

func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *StandardExpenseService) GetStandardExpenses(ctx context.Context, walletID int) ([]domain.StandardExpense, error) {
	if walletID <= 0 {
		return nil, domain.ErrorList{domain.ErrStandardExpenseInvalidWallet}
	}
	return s.repo.GetAll(ctx, walletID)
}

func (s *StandardExpenseService) GetStandardExpense(ctx context.Context, expenseID int) (*domain.StandardExpense, error) {
	if expenseID <= 0 {
		return nil, domain.ErrorList{domain.ErrInvalidStandardExpenseID}
	}
	return s.repo.GetByID(ctx, expenseID)
}

func (s *StandardExpenseService) CreateStandardExpense(ctx context.Context, expense domain.StandardExpense) (*domain.StandardExpense, error) {
	if errs := validateStandardExpenseForCreate(expense); len(errs) > 0 {
		return nil, errs
	}
	expense.Frequency = canonicalFrequency(expense.Frequency)
	created, err := s.repo.Create(ctx, &expense)
	if err != nil {
		s.logger.Error().Err(err).Int("wallet_id", expense.WalletID).Msg("failed to create standard expense")
		return nil, err
	}
	s.logger.Info().Int("expense_id", created.ExpenseID).Int("wallet_id", created.WalletID).Msg("standard expense created")
	return created, nil
}

func (s *StandardExpenseService) UpdateStandardExpense(ctx context.Context, expense domain.StandardExpense) error {
	if errs := validateStandardExpenseForUpdate(expense); len(errs) > 0 {
		return errs
	}
	expense.Frequency = canonicalFrequency(expense.Frequency)
	return s.repo.Update(ctx, &expense)
}

func (s *StandardExpenseService) DeleteStandardExpense(ctx context.Context, expenseID int) error {
	if expenseID <= 0 {
		return domain.ErrorList{domain.ErrInvalidStandardExpenseID}
	}
	return s.repo.Delete(ctx, expenseID)
}
