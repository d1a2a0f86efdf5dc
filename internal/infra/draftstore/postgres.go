package draftstore

import (
	"context"
	"log/slog"
	"time"

	"mynbala-backend/internal/domain/draft"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/metrics"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

const draftsTable = "funnel_drafts"

// PostgresStore persists drafts in funnel_drafts. Failures are logged and swallowed.
type PostgresStore struct {
	db      infra.DBTX
	ttl     time.Duration
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewPostgresStore(db infra.DBTX, ttl time.Duration, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl, clock: clk, metrics: m, logger: logger}
}

func (s *PostgresStore) Read(ctx context.Context, sessionID string) (draft.State, bool) {
	key := draft.Key(sessionID)
	query, args, err := psql.Select("payload").
		From(draftsTable).
		Where(squirrel.Eq{"session_id": key}).
		Where(squirrel.Gt{"expires_at": s.clock.Now()}).
		ToSql()
	if err != nil {
		return s.readFailed(ctx, key, err)
	}

	var payload []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if infra.IsNoRows(err) {
			s.metrics.DraftOp("read", "miss")
			return draft.State{}, false
		}
		return s.readFailed(ctx, key, err)
	}

	state, err := draft.Unmarshal(payload)
	if err != nil {
		s.Clear(ctx, sessionID)
		return s.readFailed(ctx, key, err)
	}
	s.metrics.DraftOp("read", "hit")
	return state.Normalized(), true
}

func (s *PostgresStore) Write(ctx context.Context, sessionID string, state draft.State) {
	key := draft.Key(sessionID)
	payload, err := draft.Marshal(state)
	if err != nil {
		s.writeFailed(ctx, "write", key, err)
		return
	}

	now := s.clock.Now()
	query, args, err := psql.Insert(draftsTable).
		Columns("session_id", "payload", "updated_at", "expires_at").
		Values(key, payload, now, s.expiry(now)).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		s.writeFailed(ctx, "write", key, err)
		return
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.writeFailed(ctx, "write", key, err)
		return
	}
	s.metrics.DraftOp("write", "ok")
}

// expiry mirrors MemoryStore: a non-positive TTL keeps drafts until cleared.
func (s *PostgresStore) expiry(now time.Time) pgtype.Timestamptz {
	if s.ttl <= 0 {
		return pgtype.Timestamptz{InfinityModifier: pgtype.Infinity, Valid: true}
	}
	return pgtype.Timestamptz{Time: now.Add(s.ttl), Valid: true}
}

func (s *PostgresStore) Clear(ctx context.Context, sessionID string) {
	key := draft.Key(sessionID)
	query, args, err := psql.Delete(draftsTable).Where(squirrel.Eq{"session_id": key}).ToSql()
	if err != nil {
		s.writeFailed(ctx, "clear", key, err)
		return
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.writeFailed(ctx, "clear", key, err)
		return
	}
	s.metrics.DraftOp("clear", "ok")
}

// Purge removes expired rows.
func (s *PostgresStore) Purge(ctx context.Context) (int64, error) {
	query, args, err := psql.Delete(draftsTable).Where(squirrel.LtOrEq{"expires_at": s.clock.Now()}).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build draft purge", err)
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge drafts", err)
	}
	return tag.RowsAffected(), nil
}

// Run purges expired rows every interval until ctx is cancelled.
func (s *PostgresStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Purge(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "draft purge failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Debug("expired drafts purged", "count", n)
			}
		}
	}
}

func (s *PostgresStore) readFailed(ctx context.Context, key string, err error) (draft.State, bool) {
	s.logger.WarnContext(ctx, "draft read failed, treating as miss", "key", key, "error", err)
	s.metrics.DraftOp("read", "error")
	return draft.State{}, false
}

func (s *PostgresStore) writeFailed(ctx context.Context, op, key string, err error) {
	s.logger.WarnContext(ctx, "draft "+op+" failed, dropped", "key", key, "error", err)
	s.metrics.DraftOp(op, "error")
}
