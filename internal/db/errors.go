package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// SQLState returns the PostgreSQL error code behind err, whichever driver
// produced it (pgx in production, lib/pq in tests), or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsForeignKeyViolation(err error) bool { return SQLState(err) == codeForeignKeyViolation }

func IsUniqueViolation(err error) bool { return SQLState(err) == codeUniqueViolation }

// IsConstraintViolation reports CHECK and NOT NULL failures, i.e. bad field values.
func IsConstraintViolation(err error) bool {
	switch SQLState(err) {
	case codeCheckViolation, codeNotNullViolation:
		return true
	}
	return false
}
