package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_clients_email"}

	assert.True(t, isDuplicateKeyError(pgErr, "email"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", pgErr), "email"))
	assert.False(t, isDuplicateKeyError(pgErr, "phone"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_clients_email"}, "email"))

	sqliteErr := errors.New("constraint failed: UNIQUE constraint failed: clients.phone (2067)")
	assert.True(t, isDuplicateKeyError(sqliteErr, "phone"))
	assert.False(t, isDuplicateKeyError(sqliteErr, "email"))

	assert.False(t, isDuplicateKeyError(nil, "email"))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, isForeignKeyError(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyError(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyError(nil))
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, isCheckViolation(errors.New("constraint failed: CHECK constraint failed: status IN ('a') (275)")))
	assert.False(t, isCheckViolation(errors.New("disk I/O error")))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = parseDate("2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
