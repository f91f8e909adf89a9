package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// RegisterInput carries the raw registration fields as decoded by the HTTP
// boundary. PhoneNumber may be empty (it is optional).
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	RealName    string
	RealSurname string
	PhoneNumber string
}

// AuthService implements the credential protocol: registration, login,
// refresh-token rotation, and revocation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	RevokeToken(ctx context.Context, userID int) error
}

// PasswordHasher performs one-way salted hashing. Verify never returns an
// error: any failure is indistinguishable from a wrong password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenGenerator mints signed access tokens and opaque refresh tokens.
type TokenGenerator interface {
	GenerateAccessToken(account *domain.Account) (string, error)
	GenerateRefreshToken() (string, error)
}
