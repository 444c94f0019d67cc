package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrConflict is returned by repositories when a write hits a unique
// constraint. Callers never need to know how the store encodes that.
var ErrConflict = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

// IsUniqueViolation recognises duplicate-key errors from every store we run on.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry")
}

// Classify maps a store error onto ErrConflict, leaving other errors as-is.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		if errors.Is(err, ErrConflict) {
			return err
		}
		return errors.Join(ErrConflict, err)
	}
	return err
}
