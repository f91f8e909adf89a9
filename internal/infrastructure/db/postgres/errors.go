package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// classify maps a pgx error onto the domain error taxonomy. The service
// layer receives these values unchanged; it never reinterprets them.
//
// Unique violations are resolved by constraint name so a racing duplicate
// registration surfaces the same Conflict error as the fast-path existence
// check. Cancellation and deadline expiry both read as a timeout.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrDatabaseTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return classifyUnique(pgErr)
		case pgerrcode.ForeignKeyViolation:
			return domain.ErrOperationFailed
		}
		if pgerrcode.IsConnectionException(pgErr.Code) {
			return domain.ErrConnectionFailed
		}
		return domain.ErrOperationFailed
	}

	if pgconn.Timeout(err) {
		return domain.ErrDatabaseTimeout
	}

	return domain.ErrOperationFailed
}

// classifyDelete is classify specialized for DELETE statements: a foreign
// key violation means the row is still referenced, which each resource
// reports with its own in-use conflict.
func classifyDelete(err error, inUse error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return inUse
	}
	return classify(err)
}

func classifyUnique(pgErr *pgconn.PgError) error {
	name := pgErr.ConstraintName
	switch {
	case strings.Contains(name, "email"):
		return domain.ErrDuplicateEmail
	case strings.Contains(name, "username"):
		return domain.ErrDuplicateUsername
	case strings.Contains(name, "currency_code"):
		return domain.ErrDuplicateCurrencyCode
	default:
		return domain.ErrDuplicateTransaction
	}
}
