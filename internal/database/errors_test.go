package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"pg 23505", &pgconn.PgError{Code: "23505", ConstraintName: "uq_propostas_email"}, true},
		{"pg other code", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite text", errors.New("constraint failed: UNIQUE constraint failed: propostas.email (2067)"), true},
		{"mysql text", errors.New("Error 1062 (23000): Duplicate entry 'bia@x.com' for key 'email'"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(nil))

	dup := &pgconn.PgError{Code: "23505"}
	err := Classify(dup)
	assert.ErrorIs(t, err, ErrConflict)
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)

	assert.Same(t, ErrConflict, Classify(ErrConflict))

	other := errors.New("timeout")
	assert.Same(t, other, Classify(other))
}
