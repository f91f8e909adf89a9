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

// queryTimeout bounds every single statement; an operation that cannot
// finish inside it fails definitively with Database.Timeout.
const queryTimeout = 30 * time.Second

const accountColumns = `user_id, username, email, password_hash, real_name, real_surname,
       phone_number, created_at, last_login_at, is_active, refresh_token, refresh_token_expiry`

// AccountRepository implements ports.AccountRepository with parameterized
// SQL against PostgreSQL.
type AccountRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewAccountRepository(pool *pgxpool.Pool, log zerolog.Logger) *AccountRepository {
	return &AccountRepository{pool: pool, log: log}
}

func (r *AccountRepository) GetByID(ctx context.Context, userID int) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE user_id = $1
	`, userID)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		r.log.Warn().Int("user_id", userID).Msg("account not found")
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Int("user_id", userID).Msg("failed to fetch account")
		return nil, classify(err)
	}
	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1
	`, email)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Str("email", email).Msg("failed to fetch account by email")
		return nil, classify(err)
	}
	return account, nil
}

func (r *AccountRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE refresh_token = $1
	`, refreshToken)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Msg("failed to fetch account by refresh token")
		return nil, classify(err)
	}
	return account, nil
}

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		r.log.Error().Err(err).Str("email", email).Msg("failed to check email existence")
		return false, classify(err)
	}
	return exists, nil
}

func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		r.log.Error().Err(err).Str("username", username).Msg("failed to check username existence")
		return false, classify(err)
	}
	return exists, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (username, email, password_hash, real_name, real_surname,
		                      phone_number, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING user_id
	`,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.RealName,
		account.RealSurname,
		account.PhoneNumber,
		account.CreatedAt,
		account.IsActive,
	).Scan(&account.UserID)
	if err != nil {
		r.log.Error().Err(err).Str("email", account.Email).Msg("failed to create account")
		return nil, classify(err)
	}

	r.log.Info().Int("user_id", account.UserID).Msg("account created")
	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET username = $2,
		    email = $3,
		    password_hash = $4,
		    real_name = $5,
		    real_surname = $6,
		    phone_number = $7,
		    last_login_at = $8,
		    is_active = $9,
		    refresh_token = $10,
		    refresh_token_expiry = $11
		WHERE user_id = $1
	`,
		account.UserID,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.RealName,
		account.RealSurname,
		account.PhoneNumber,
		account.LastLoginAt,
		account.IsActive,
		account.RefreshToken,
		account.RefreshTokenExpiry,
	)
	if err != nil {
		r.log.Error().Err(err).Int("user_id", account.UserID).Msg("failed to update account")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// RotateRefreshToken atomically swaps oldToken for newToken. The WHERE
// clause compares the stored token, so of two concurrent rotations exactly
// one wins; the loser observes zero rows and gets InvalidRefreshToken.
func (r *AccountRepository) RotateRefreshToken(ctx context.Context, userID int, oldToken, newToken string, expiry, lastLogin time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET refresh_token = $3,
		    refresh_token_expiry = $4,
		    last_login_at = $5
		WHERE user_id = $1 AND refresh_token = $2
	`, userID, oldToken, newToken, expiry, lastLogin)
	if err != nil {
		r.log.Error().Err(err).Int("user_id", userID).Msg("failed to rotate refresh token")
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidRefreshToken
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		ORDER BY user_id
	`)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list accounts")
		return nil, classify(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, classify(err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return accounts, nil
}

func (r *AccountRepository) Delete(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error().Err(err).Int("user_id", userID).Msg("failed to delete account")
		return classifyDelete(err, domain.ErrAccountInUse)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	r.log.Info().Int("user_id", userID).Msg("account deleted")
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.UserID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.RealName,
		&a.RealSurname,
		&a.PhoneNumber,
		&a.CreatedAt,
		&a.LastLoginAt,
		&a.IsActive,
		&a.RefreshToken,
		&a.RefreshTokenExpiry,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
