package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for repository operations. Handlers never see raw driver
// errors; constraint failures are classified here so callers can map them to
// distinct response codes.
var (
	ErrEmailExists  = errors.New("email already exists")
	ErrNameExists   = errors.New("product name already exists")
	ErrInvalidInput = errors.New("row violates a store constraint")
)

// PostgreSQL error classes worth distinguishing.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
)

// classifyConstraint maps a PostgreSQL constraint error to a sentinel.
// onUnique is the sentinel for a unique violation on the table's natural
// key. Returns nil when the error is not a recognized constraint failure.
func classifyConstraint(err error, onUnique error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return onUnique
	case pgNotNullViolation, pgCheckViolation:
		return ErrInvalidInput
	default:
		return nil
	}
}
