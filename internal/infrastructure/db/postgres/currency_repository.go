package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewCurrencyRepository(pool *pgxpool.Pool, log zerolog.Logger) *CurrencyRepository {
	return &CurrencyRepository{pool: pool, log: log}
}

func (r *CurrencyRepository) GetAll(ctx context.Context) ([]domain.Currency, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT currency_id, currency_code, currency_name, rate_to_euro
		FROM currencies
		ORDER BY currency_id
	`)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list currencies")
		return nil, classify(err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.CurrencyID, &c.CurrencyCode, &c.CurrencyName, &c.RateToEuro); err != nil {
			return nil, classify(err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) GetByID(ctx context.Context, currencyID int) (*domain.Currency, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c domain.Currency
	err := r.pool.QueryRow(ctx, `
		SELECT currency_id, currency_code, currency_name, rate_to_euro
		FROM currencies
		WHERE currency_id = $1
	`, currencyID).Scan(&c.CurrencyID, &c.CurrencyCode, &c.CurrencyName, &c.RateToEuro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCurrencyNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("currency_id", currencyID).Msg("failed to fetch currency")
		return nil, classify(err)
	}
	return &c, nil
}

func (r *CurrencyRepository) Create(ctx context.Context, currency *domain.Currency) (*domain.Currency, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO currencies (currency_code, currency_name, rate_to_euro)
		VALUES ($1, $2, $3)
		RETURNING currency_id
	`, currency.CurrencyCode, currency.CurrencyName, currency.RateToEuro).Scan(&currency.CurrencyID)
	if err != nil {
		r.log.Error().Err(err).Str("code", currency.CurrencyCode).Msg("failed to create currency")
		return nil, classify(err)
	}
	return currency, nil
}

func (r *CurrencyRepository) Update(ctx context.Context, currency *domain.Currency) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE currencies
		SET currency_code = $2, currency_name = $3, rate_to_euro = $4
		WHERE currency_id = $1
	`, currency.CurrencyID, currency.CurrencyCode, currency.CurrencyName, currency.RateToEuro)
	if err != nil {
		r.log.Error().Err(err).Int("currency_id", currency.CurrencyID).Msg("failed to update currency")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCurrencyNotFound
	}
	return nil
}

func (r *CurrencyRepository) Delete(ctx context.Context, currencyID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1`, currencyID)
	if err != nil {
		r.log.Error().Err(err).Int("currency_id", currencyID).Msg("failed to delete currency")
		return classifyDelete(err, domain.ErrCurrencyInUse)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCurrencyNotFound
	}
	return nil
}
