//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"mynbala-backend/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		kind   []infra.RepositoryErrorKind
		expect infra.RepositoryErrorKind
	}{
		{name: "no rows becomes not found", err: pgx.ErrNoRows, expect: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expect: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expect: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, expect: infra.KindConflict},
		{name: "unknown error", err: errors.New("connection reset"), expect: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expect: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(wrapped, tc.expect), "got %v", wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}
