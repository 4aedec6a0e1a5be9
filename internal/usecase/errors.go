package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyUpdate       = errors.New("no fields to update")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidEnumValue  = errors.New("invalid status, role or gender value")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// isDuplicateKeyError checks if the error is a unique constraint violation on the
// given column. PostgreSQL reports the constraint name (idx_<table>_<column>);
// SQLite reports "UNIQUE constraint failed: <table>.<column>".
func isDuplicateKeyError(err error, column string) bool {
	if err == nil {
		return false
	}
	column = strings.ToLower(column)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && strings.Contains(strings.ToLower(pgErr.ConstraintName), column)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, "."+column)
}

// isForeignKeyError checks if the error is a foreign key violation. SQLite does not
// name the violated constraint, so callers classify by operation instead.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// isCheckViolation checks if the error is a CHECK constraint violation
func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint failed")
}

func parseDate(value string) (time.Time, error) {
	t, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// actorID returns the authenticated user recorded as the audit actor, if any
func actorID(ctx context.Context) *int {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		return nil
	}
	id := session.UserID
	return &id
}
