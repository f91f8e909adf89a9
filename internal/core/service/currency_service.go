package service

import (
	"context"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const (
	currencyCodeLength    = 3
	maxCurrencyNameLength = 50
)

type CurrencyService struct {
	repo   ports.CurrencyRepository
	logger zerolog.Logger
}

func NewCurrencyService(repo ports.CurrencyRepository, logger zerolog.Logger) *CurrencyService {
	return &CurrencyService{repo: repo, logger: logger}
}

func isCurrencyCode(code string) bool {
	if len(code) != currencyCodeLength {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func validateCurrencyForCreate(c domain.Currency) domain.ErrorList {
	var errs domain.ErrorList
	switch {
	case strings.TrimSpace(c.CurrencyCode) == "":
		errs = append(errs, domain.ErrCurrencyCodeRequired)
	case !isCurrencyCode(c.CurrencyCode):
		errs = append(errs, domain.ErrInvalidCurrencyCode)
	}
	switch {
	case strings.TrimSpace(c.CurrencyName) == "":
		errs = append(errs, domain.ErrCurrencyNameRequired)
	case len(c.CurrencyName) > maxCurrencyNameLength:
		errs = append(errs, domain.ErrCurrencyNameTooLong)
	}
	if c.RateToEuro <= 0 {
		errs = append(errs, domain.ErrInvalidCurrencyRate)
	}
	return errs
}

func validateCurrencyForUpdate(c domain.Currency) domain.ErrorList {
	var errs domain.ErrorList
	if c.CurrencyID <= 0 {
		errs = append(errs, domain.ErrInvalidCurrencyID)
	}
	return append(errs, validateCurrencyForCreate(c)...)
}

func (s *CurrencyService) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.GetAll(ctx)
}

func (s *CurrencyService) GetCurrency(ctx context.Context, currencyID int) (*domain.Currency, error) {
	if currencyID <= 0 {
		return nil, domain.ErrorList{domain.ErrInvalidCurrencyID}
	}
	return s.repo.GetByID(ctx, currencyID)
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	if errs := validateCurrencyForCreate(currency); len(errs) > 0 {
		return nil, errs
	}
	currency.CurrencyCode = strings.ToUpper(currency.CurrencyCode)
	created, err := s.repo.Create(ctx, &currency)
	if err != nil {
		s.logger.Error().Err(err).Str("code", currency.CurrencyCode).Msg("failed to create currency")
		return nil, err
	}
	s.logger.Info().Int("currency_id", created.CurrencyID).Str("code", created.CurrencyCode).Msg("currency created")
	return created, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	if errs := validateCurrencyForUpdate(currency); len(errs) > 0 {
		return errs
	}
	currency.CurrencyCode = strings.ToUpper(currency.CurrencyCode)
	return s.repo.Update(ctx, &currency)
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int) error {
	if currencyID <= 0 {
		return domain.ErrorList{domain.ErrInvalidCurrencyID}
	}
	return s.repo.Delete(ctx, currencyID)
}
