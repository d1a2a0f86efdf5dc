//go:build unit

package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/uow"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return nil
}

type fakePool struct {
	txs      []*fakeTx
	beginErr error
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	return tx, nil
}

func newUoW(pool *fakePool) *uow.PostgresUoW {
	return uow.NewUoW(pool, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostgresUoW_Within(t *testing.T) {
	ctx := context.Background()
	serialization := &pgconn.PgError{Code: "40001"}

	t.Run("commits on success", func(t *testing.T) {
		pool := &fakePool{}

		err := newUoW(pool).Within(ctx, func(context.Context, infra.DBTX) error { return nil })

		require.NoError(t, err)
		require.Len(t, pool.txs, 1)
		assert.Equal(t, 1, pool.txs[0].commits)
		assert.Zero(t, pool.txs[0].rollbacks)
	})

	t.Run("rolls back and returns a plain error", func(t *testing.T) {
		pool := &fakePool{}
		boom := errors.New("boom")

		err := newUoW(pool).Within(ctx, func(context.Context, infra.DBTX) error { return boom })

		assert.ErrorIs(t, err, boom)
		require.Len(t, pool.txs, 1)
		assert.Zero(t, pool.txs[0].commits)
		assert.Equal(t, 1, pool.txs[0].rollbacks)
	})

	t.Run("retries a serialization failure", func(t *testing.T) {
		pool := &fakePool{}
		calls := 0

		err := newUoW(pool).Within(ctx, func(context.Context, infra.DBTX) error {
			calls++
			if calls == 1 {
				return serialization
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, pool.txs, 2)
		assert.Equal(t, 1, pool.txs[0].rollbacks)
		assert.Equal(t, 1, pool.txs[1].commits)
	})

	t.Run("stops retrying when the context ends", func(t *testing.T) {
		pool := &fakePool{}
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := newUoW(pool).Within(cancelled, func(context.Context, infra.DBTX) error { return serialization })

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, pool.txs, 1)
	})

	t.Run("begin failure", func(t *testing.T) {
		refused := errors.New("connection refused")
		pool := &fakePool{beginErr: refused}

		err := newUoW(pool).Within(ctx, func(context.Context, infra.DBTX) error {
			t.Fatal("callback must not run")
			return nil
		})

		assert.ErrorIs(t, err, refused)
	})

	t.Run("commit failure is returned", func(t *testing.T) {
		u := newUoW(&fakePool{})
		commitErr := errors.New("commit lost")

		err := u.Within(ctx, func(_ context.Context, tx infra.DBTX) error {
			tx.(*fakeTx).commitErr = commitErr
			return nil
		})

		assert.ErrorIs(t, err, commitErr)
	})
}
