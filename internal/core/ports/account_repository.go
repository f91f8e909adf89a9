package ports

import (
	"context"
	"time"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// AccountRepository persists accounts. Implementations classify store-level
// failures into the domain error taxonomy at the boundary (connection,
// timeout, duplicate constraint) and never reinterpret them.
type AccountRepository interface {
	GetByID(ctx context.Context, userID int) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error

	// RotateRefreshToken atomically replaces oldToken with newToken,
	// compare-and-swap on the stored value. A lost race (the stored token
	// no longer equals oldToken) returns domain.ErrInvalidRefreshToken.
	RotateRefreshToken(ctx context.Context, userID int, oldToken, newToken string, expiry, lastLogin time.Time) error

	List(ctx context.Context) ([]domain.Account, error)
	Delete(ctx context.Context, userID int) error
}
