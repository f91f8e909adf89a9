package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type WalletRepository interface {
	GetAll(ctx context.Context, userID int) ([]domain.Wallet, error)
	GetByID(ctx context.Context, walletID int) (*domain.Wallet, error)
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
	Delete(ctx context.Context, walletID int) error
}

type WalletService interface {
	GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error)
	GetWallet(ctx context.Context, walletID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error
	DeleteWallet(ctx context.Context, walletID int) error
}
