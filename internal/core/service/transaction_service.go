package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const maxTransactionDescLength = 255

var validTransactionTypes = []string{domain.TransactionTypeCash, domain.TransactionTypeCard}

type TransactionService struct {
	repo   ports.TransactionRepository
	logger zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// canonicalTransactionType matches case-insensitively and returns the
// canonical spelling, or "" when the type is unknown.
func canonicalTransactionType(t string) string {
	for _, valid := range validTransactionTypes {
		if strings.EqualFold(t, valid) {
			return valid
		}
	}
	return ""
}

func validateTransactionForCreate(tx domain.Transaction) domain.ErrorList {
	var errs domain.ErrorList
	if tx.WalletID <= 0 {
		errs = append(errs, domain.ErrTransactionInvalidWallet)
	}
	if tx.CategoryID <= 0 {
		errs = append(errs, domain.ErrTransactionInvalidCategory)
	}
	if tx.CurrencyID <= 0 {
		errs = append(errs, domain.ErrTransactionInvalidCurrency)
	}
	if canonicalTransactionType(tx.TransactionType) == "" {
		errs = append(errs, domain.ErrInvalidTransactionType)
	}
	if tx.Amount <= 0 {
		errs = append(errs, domain.ErrInvalidTransactionAmount)
	}
	if len(tx.Description) > maxTransactionDescLength {
		errs = append(errs, domain.ErrTransactionDescTooLong)
	}
	if tx.TransactionDate.After(endOfToday()) {
		errs = append(errs, domain.ErrTransactionFutureDate)
	}
	return errs
}

func validateTransactionForUpdate(tx domain.Transaction) domain.ErrorList {
	var errs domain.ErrorList
	if tx.TransactionID <= 0 {
		errs = append(errs, domain.ErrInvalidTransactionID)
	}
	return append(errs, validateTransactionForCreate(tx)...)
}

func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}

func (s *TransactionService) GetTransactions(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	if walletID <= 0 {
		return nil, domain.ErrorList{domain.ErrTransactionInvalidWallet}
	}
	return s.repo.GetAll(ctx, walletID)
}

func (s *TransactionService) GetTransaction(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	if transactionID <= 0 {
		return nil, domain.ErrorList{domain.ErrInvalidTransactionID}
	}
	return s.repo.GetByID(ctx, transactionID)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if errs := validateTransactionForCreate(tx); len(errs) > 0 {
		return nil, errs
	}
	tx.TransactionType = canonicalTransactionType(tx.TransactionType)
	created, err := s.repo.Create(ctx, &tx)
	if err != nil {
		s.logger.Error().Err(err).Int("wallet_id", tx.WalletID).Msg("failed to create transaction")
		return nil, err
	}
	s.logger.Info().Int("transaction_id", created.TransactionID).Int("wallet_id", created.WalletID).Msg("transaction created")
	return created, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, tx domain.Transaction) error {
	if errs := validateTransactionForUpdate(tx); len(errs) > 0 {
		return errs
	}
	tx.TransactionType = canonicalTransactionType(tx.TransactionType)
	return s.repo.Update(ctx, &tx)
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int) error {
	if transactionID <= 0 {
		return domain.ErrorList{domain.ErrInvalidTransactionID}
	}
	return s.repo.Delete(ctx, transactionID)
}
