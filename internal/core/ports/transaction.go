package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type TransactionRepository interface {
	GetAll(ctx context.Context, walletID int) ([]domain.Transaction, error)
	GetByID(ctx context.Context, transactionID int) (*domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, transactionID int) error
}

type TransactionService interface {
	GetTransactions(ctx context.Context, walletID int) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, transactionID int) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, tx domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID int) error
}
