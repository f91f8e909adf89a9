package ports

import (
	"context"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type CurrencyRepository interface {
	GetAll(ctx context.Context) ([]domain.Currency, error)
	GetByID(ctx context.Context, currencyID int) (*domain.Currency, error)
	Create(ctx context.Context, currency *domain.Currency) (*domain.Currency, error)
	Update(ctx context.Context, currency *domain.Currency) error
	Delete(ctx context.Context, currencyID int) error
}

type CurrencyService interface {
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
	GetCurrency(ctx context.Context, currencyID int) (*domain.Currency, error)
	CreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
	DeleteCurrency(ctx context.Context, currencyID int) error
}
