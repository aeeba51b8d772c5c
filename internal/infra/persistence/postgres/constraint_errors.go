package postgres

import (
	"strings"

	"seely/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the user table can raise.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

// hasSQLState matches pgx errors that reached us without gorm's TranslateError.
func hasSQLState(err error, code string) bool {
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

// isUniqueConstraintViolation reports duplicate username or keycloak_id writes.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation)
}

// isInvalidRowError reports writes rejected by NOT NULL or CHECK constraints.
func isInvalidRowError(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		hasSQLState(err, sqlStateNotNullViolation) ||
		hasSQLState(err, sqlStateCheckViolation)
}
