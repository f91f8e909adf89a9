package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// PostingDedup abstracts the idempotency store (Redis) guarding recurring
// postings. A due expense must be posted at most once per due date.
type PostingDedup interface {
	IsPosted(ctx context.Context, expenseID int, due time.Time) (bool, error)
	MarkPosted(ctx context.Context, expenseID int, due time.Time) error
}

type postingService struct {
	expenseRepo     ports.StandardExpenseRepository
	transactionRepo ports.TransactionRepository
	walletRepo      ports.WalletRepository
	dedup           PostingDedup
	log             zerolog.Logger
}

// NewPostingService returns a PostingService that records due standard
// expenses as card transactions against their wallets.
func NewPostingService(
	expenseRepo ports.StandardExpenseRepository,
	transactionRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	dedup PostingDedup,
	log zerolog.Logger,
) ports.PostingService {
	return &postingService{
		expenseRepo:     expenseRepo,
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		dedup:           dedup,
		log:             log,
	}
}

// Post materializes one due standard expense as a transaction and advances
// its next-due date.
func (s *postingService) Post(ctx context.Context, expense domain.StandardExpense) error {
	due := expense.NextDate

	// 1. Idempotency check, silently skip repeat postings.
	posted, err := s.dedup.IsPosted(ctx, expense.ExpenseID, due)
	if err != nil {
		s.log.Warn().Err(err).Int("expense_id", expense.ExpenseID).Msg("dedup check failed, posting anyway")
	} else if posted {
		s.log.Debug().Int("expense_id", expense.ExpenseID).Time("due", due).Msg("duplicate posting skipped")
		return nil
	}

	// 2. The wallet supplies the currency for the posted transaction.
	wallet, err := s.walletRepo.GetByID(ctx, expense.WalletID)
	if err != nil {
		return fmt.Errorf("post expense %d: %w", expense.ExpenseID, err)
	}

	// 3. Mark before writing so a retried tick cannot double-post.
	if markErr := s.dedup.MarkPosted(ctx, expense.ExpenseID, due); markErr != nil {
		s.log.Warn().Err(markErr).Int("expense_id", expense.ExpenseID).Msg("failed to set dedup key")
	}

	tx := &domain.Transaction{
		WalletID:        expense.WalletID,
		CategoryID:      expense.CategoryID,
		CurrencyID:      wallet.CurrencyID,
		TransactionDate: due,
		TransactionTime: time.Now().UTC().Format("15:04:05"),
		TransactionType: domain.TransactionTypeCard,
		Amount:          expense.Amount,
		Description:     expense.Description,
	}
	if _, err := s.transactionRepo.Create(ctx, tx); err != nil {
		return fmt.Errorf("post expense %d: create transaction: %w", expense.ExpenseID, err)
	}

	// 4. Advance the schedule; failure here leaves the expense due again,
	// which the dedup key absorbs on the next tick.
	next := expense.NextOccurrence(due)
	if err := s.expenseRepo.AdvanceNextDate(ctx, expense.ExpenseID, next); err != nil {
		s.log.Warn().Err(err).Int("expense_id", expense.ExpenseID).Msg("failed to advance next date")
	}

	s.log.Info().
		Int("expense_id", expense.ExpenseID).
		Int("wallet_id", expense.WalletID).
		Float64("amount", expense.Amount).
		Str("frequency", expense.Frequency).
		Msg("standard expense posted")

	return nil
}
