package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Index names that carry business meaning.
const (
	uniqOpenMatchPair = "uniq_open_match_pair"
)

// Helper functions for PostgreSQL error checking
func pgErrorCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgUniqueViolation
}

// isConstraintViolationOn reports a unique violation raised by the named constraint or index.
// A translated gorm.ErrDuplicatedKey carries no name, so it falls back to a message match.
func isConstraintViolationOn(err error, constraint string) bool {
	if pgErr, ok := pgErrorCode(err); ok {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
	}

	return errors.Is(err, gorm.ErrDuplicatedKey) && strings.Contains(err.Error(), constraint)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := pgErrorCode(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr, ok := pgErrorCode(err)

	return ok && pgErr.Code == pgCheckViolation
}
