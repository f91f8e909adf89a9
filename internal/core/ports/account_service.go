package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// AccountService exposes the generic account CRUD surface. Credential
// changes go through AuthService, not here.
type AccountService interface {
	GetAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, userID int) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, userID int) error
}
