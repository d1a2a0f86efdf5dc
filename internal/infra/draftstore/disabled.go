package draftstore

import (
	"context"

	"mynbala-backend/internal/domain/draft"
	"mynbala-backend/internal/pkg/metrics"
)

// DisabledStore behaves like blocked browser storage: every read misses and writes vanish.
type DisabledStore struct {
	metrics *metrics.Metrics
}

func NewDisabledStore(m *metrics.Metrics) *DisabledStore {
	return &DisabledStore{metrics: m}
}

func (s *DisabledStore) Read(context.Context, string) (draft.State, bool) {
	s.metrics.DraftOp("read", "disabled")
	return draft.State{}, false
}

func (s *DisabledStore) Write(context.Context, string, draft.State) {
	s.metrics.DraftOp("write", "disabled")
}

func (s *DisabledStore) Clear(context.Context, string) {
	s.metrics.DraftOp("clear", "disabled")
}
