package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

const standardExpenseColumns = `expense_id, wallet_id, category_id, reason,
	description, amount, frequency, next_date`

type StandardExpenseRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewStandardExpenseRepository(pool *pgxpool.Pool, log zerolog.Logger) *StandardExpenseRepository {
	return &StandardExpenseRepository{pool: pool, log: log}
}

func (r *StandardExpenseRepository) GetAll(ctx context.Context, walletID int) ([]domain.StandardExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+standardExpenseColumns+`
		FROM standard_expenses
		WHERE wallet_id = $1
		ORDER BY next_date
	`, walletID)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", walletID).Msg("failed to list standard expenses")
		return nil, classify(err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func (r *StandardExpenseRepository) GetByID(ctx context.Context, expenseID int) (*domain.StandardExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+standardExpenseColumns+`
		FROM standard_expenses
		WHERE expense_id = $1
	`, expenseID)
	expense, err := scanStandardExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStandardExpenseNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("expense_id", expenseID).Msg("failed to fetch standard expense")
		return nil, classify(err)
	}
	return expense, nil
}

func (r *StandardExpenseRepository) Create(ctx context.Context, expense *domain.StandardExpense) (*domain.StandardExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO standard_expenses
			(wallet_id, category_id, reason, description, amount, frequency, next_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING expense_id
	`, expense.WalletID, expense.CategoryID, expense.Reason, expense.Description,
		expense.Amount, expense.Frequency, expense.NextDate).Scan(&expense.ExpenseID)
	if err != nil {
		r.log.Error().Err(err).Int("wallet_id", expense.WalletID).Msg("failed to create standard expense")
		return nil, classify(err)
	}
	return expense, nil
}

func (r *StandardExpenseRepository) Update(ctx context.Context, expense *domain.StandardExpense) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE standard_expenses
		SET wallet_id = $2, category_id = $3, reason = $4, description = $5,
		    amount = $6, frequency = $7, next_date = $8
		WHERE expense_id = $1
	`, expense.ExpenseID, expense.WalletID, expense.CategoryID, expense.Reason,
		expense.Description, expense.Amount, expense.Frequency, expense.NextDate)
	if err != nil {
		r.log.Error().Err(err).Int("expense_id", expense.ExpenseID).Msg("failed to update standard expense")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStandardExpenseNotFound
	}
	return nil
}

func (r *StandardExpenseRepository) Delete(ctx context.Context, expenseID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM standard_expenses WHERE expense_id = $1`, expenseID)
	if err != nil {
		r.log.Error().Err(err).Int("expense_id", expenseID).Msg("failed to delete standard expense")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStandardExpenseNotFound
	}
	return nil
}

func (r *StandardExpenseRepository) ListDue(ctx context.Context, due time.Time) ([]domain.StandardExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+standardExpenseColumns+`
		FROM standard_expenses
		WHERE next_date <= $1
		ORDER BY next_date
	`, due)
	if err != nil {
		r.log.Error().Err(err).Time("due", due).Msg("failed to list due standard expenses")
		return nil, classify(err)
	}
	defer rows.Close()

	return collectExpenses(rows)
}

func (r *StandardExpenseRepository) AdvanceNextDate(ctx context.Context, expenseID int, nextDate time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE standard_expenses
		SET next_date = $2
		WHERE expense_id = $1
	`, expenseID, nextDate)
	if err != nil {
		r.log.Error().Err(err).Int("expense_id", expenseID).Msg("failed to advance next date")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStandardExpenseNotFound
	}
	return nil
}

func collectExpenses(rows pgx.Rows) ([]domain.StandardExpense, error) {
	var expenses []domain.StandardExpense
	for rows.Next() {
		expense, err := scanStandardExpense(rows)
		if err != nil {
			return nil, classify(err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return expenses, nil
}

func scanStandardExpense(row pgx.Row) (*domain.StandardExpense, error) {
	var e domain.StandardExpense
	err := row.Scan(&e.ExpenseID, &e.WalletID, &e.CategoryID, &e.Reason,
		&e.Description, &e.Amount, &e.Frequency, &e.NextDate)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
