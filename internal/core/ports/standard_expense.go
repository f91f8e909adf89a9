package ports

import (
	"context"
	"time"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type StandardExpenseRepository interface {
	GetAll(ctx context.Context, walletID int) ([]domain.StandardExpense, error)
	GetByID(ctx context.Context, expenseID int) (*domain.StandardExpense, error)
	Create(ctx context.Context, expense *domain.StandardExpense) (*domain.StandardExpense, error)
	Update(ctx context.Context, expense *domain.StandardExpense) error
	Delete(ctx context.Context, expenseID int) error

	// ListDue returns expenses whose next date is on or before the given day.
	ListDue(ctx context.Context, due time.Time) ([]domain.StandardExpense, error)

	// AdvanceNextDate moves the expense's next date forward after a posting.
	AdvanceNextDate(ctx context.Context, expenseID int, nextDate time.Time) error
}

type StandardExpenseService interface {
	GetStandardExpenses(ctx context.Context, walletID int) ([]domain.StandardExpense, error)
	GetStandardExpense(ctx context.Context, expenseID int) (*domain.StandardExpense, error)
	CreateStandardExpense(ctx context.Context, expense domain.StandardExpense) (*domain.StandardExpense, error)
	UpdateStandardExpense(ctx context.Context, expense domain.StandardExpense) error
	DeleteStandardExpense(ctx context.Context, expenseID int) error
}

// PostingService posts a due standard expense as a concrete transaction.
// Implementations must be idempotent per (expense, due date).
type PostingService interface {
	Post(ctx context.Context, expense domain.StandardExpense) error
}
