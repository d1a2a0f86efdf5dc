package draftstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mynbala-backend/internal/domain/draft"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/metrics"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps serialized drafts in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	items   map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		items:   make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

func (s *MemoryStore) Read(ctx context.Context, sessionID string) (draft.State, bool) {
	key := draft.Key(sessionID)

	s.mu.Lock()
	entry, ok := s.items[key]
	if ok && s.expired(entry) {
		delete(s.items, key)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		s.metrics.DraftOp("read", "miss")
		return draft.State{}, false
	}

	state, err := draft.Unmarshal(entry.payload)
	if err != nil {
		s.logger.WarnContext(ctx, "draft payload unreadable, discarding", "key", key, "error", err)
		s.metrics.DraftOp("read", "error")
		s.Clear(ctx, sessionID)
		return draft.State{}, false
	}
	s.metrics.DraftOp("read", "hit")
	return state.Normalized(), true
}

func (s *MemoryStore) Write(ctx context.Context, sessionID string, state draft.State) {
	payload, err := draft.Marshal(state)
	if err != nil {
		s.logger.WarnContext(ctx, "draft encode failed", "error", err)
		s.metrics.DraftOp("write", "error")
		return
	}

	s.mu.Lock()
	s.items[draft.Key(sessionID)] = memoryEntry{payload: payload, expiresAt: s.deadline()}
	s.mu.Unlock()
	s.metrics.DraftOp("write", "ok")
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.items, draft.Key(sessionID))
	s.mu.Unlock()
	s.metrics.DraftOp("clear", "ok")
}

// Sweep drops expired drafts and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, entry := range s.items {
		if s.expired(entry) {
			delete(s.items, key)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
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
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("expired drafts removed", "count", n)
			}
		}
	}
}

func (s *MemoryStore) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.clock.Now().Add(s.ttl)
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt)
}
