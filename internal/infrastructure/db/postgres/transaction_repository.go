package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

const transactionColumns = `transaction_id, wallet_id, category_id, currency_id,
	transaction_date, transaction_time, transaction_type, amount, description`

type TransactionRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewTransactionRepository(pool *pgxpool.Pool, log zerolog.Logger) *TransactionRepository {
	return &TransactionRepository{pool: pool, log: log}
}

func (r *TransactionRepository) GetAll(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY transaction_date DESC, transaction_time DESC
	`, walletID)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", walletID).Msg("failed to list transactions")
		return nil, classify(err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, classify(err)
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return transactions, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transaction_id = $1
	`, transactionID)
	tx, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("transaction_id", transactionID).Msg("failed to fetch transaction")
		return nil, classify(err)
	}
	return tx, nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO transactions
			(wallet_id, category_id, currency_id, transaction_date,
			 transaction_time, transaction_type, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id
	`, tx.WalletID, tx.CategoryID, tx.CurrencyID, tx.TransactionDate,
		tx.TransactionTime, tx.TransactionType, tx.Amount, tx.Description).Scan(&tx.TransactionID)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", tx.WalletID).Msg("failed to create transaction")
		return nil, classify(err)
	}
	return tx, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET wallet_id = $2, category_id = $3, currency_id = $4,
		    transaction_date = $5, transaction_time = $6,
		    transaction_type = $7, amount = $8, description = $9
		WHERE transaction_id = $1
	`, tx.TransactionID, tx.WalletID, tx.CategoryID, tx.CurrencyID,
		tx.TransactionDate, tx.TransactionTime, tx.TransactionType, tx.Amount, tx.Description)
	if err != nil {
		r.log.Error().Err(err).Int("transaction_id", tx.TransactionID).Msg("failed to update transaction")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		r.log.Error().Err(err).Int("transaction_id", transactionID).Msg("failed to delete transaction")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(&tx.TransactionID, &tx.WalletID, &tx.CategoryID, &tx.CurrencyID,
		&tx.TransactionDate, &tx.TransactionTime, &tx.TransactionType, &tx.Amount, &tx.Description)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
