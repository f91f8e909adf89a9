package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type WalletRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewWalletRepository(pool *pgxpool.Pool, log zerolog.Logger) *WalletRepository {
	return &WalletRepository{pool: pool, log: log}
}

func (r *WalletRepository) GetAll(ctx context.Context, userID int) ([]domain.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT wallet_id, user_id, currency_id, balance, purpose
		FROM wallets
		WHERE user_id = $1
		ORDER BY wallet_id
	`, userID)
	if err != nil {
		r.log.Error().Err(err).Int("user_id", userID).Msg("failed to list wallets")
		return nil, classify(err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.WalletID, &w.UserID, &w.CurrencyID, &w.Balance, &w.Purpose); err != nil {
			return nil, classify(err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return wallets, nil
}

func (r *WalletRepository) GetByID(ctx context.Context, walletID int) (*domain.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var w domain.Wallet
	err := r.pool.QueryRow(ctx, `
		SELECT wallet_id, user_id, currency_id, balance, purpose
		FROM wallets
		WHERE wallet_id = $1
	`, walletID).Scan(&w.WalletID, &w.UserID, &w.CurrencyID, &w.Balance, &w.Purpose)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWalletNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", walletID).Msg("failed to fetch wallet")
		return nil, classify(err)
	}
	return &w, nil
}

func (r *WalletRepository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO wallets (user_id, currency_id, balance, purpose)
		VALUES ($1, $2, $3, $4)
		RETURNING wallet_id
	`, wallet.UserID, wallet.CurrencyID, wallet.Balance, wallet.Purpose).Scan(&wallet.WalletID)
	if err != nil {
		r.log.Error().Err(err).Int("user_id", wallet.UserID).Msg("failed to create wallet")
		return nil, classify(err)
	}
	return wallet, nil
}

func (r *WalletRepository) Update(ctx context.Context, wallet *domain.Wallet) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE wallets
		SET currency_id = $2, balance = $3, purpose = $4
		WHERE wallet_id = $1
	`, wallet.WalletID, wallet.CurrencyID, wallet.Balance, wallet.Purpose)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", wallet.WalletID).Msg("failed to update wallet")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepository) Delete(ctx context.Context, walletID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1`, walletID)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", walletID).Msg("failed to delete wallet")
		return classifyDelete(err, domain.ErrWalletInUse)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}
