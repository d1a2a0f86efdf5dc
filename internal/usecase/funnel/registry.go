package funnel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"
)

type registryEntry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry holds the mounted controller of each browser session. Idle entries expire.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewRegistry(cfg config.Config, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     cfg.Funnel.SessionTTL,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

// Mount replaces whatever controller the session had before.
func (r *Registry) Mount(ctrl *Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[ctrl.SessionID()] = &registryEntry{ctrl: ctrl, lastSeen: r.clock.Now()}
	r.metrics.SetMountedFunnels(len(r.entries))
}

func (r *Registry) Get(sessionID string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return nil, false
	}
	now := r.clock.Now()
	if r.expired(e, now) {
		delete(r.entries, sessionID)
		r.metrics.SetMountedFunnels(len(r.entries))
		return nil, false
	}
	e.lastSeen = now
	return e.ctrl, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops idle controllers and reports how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	removed := 0
	for id, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, id)
			removed++
		}
	}
	r.metrics.SetMountedFunnels(len(r.entries))
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
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
			if n := r.Sweep(); n > 0 && r.logger != nil {
				r.logger.Debug("funnel sessions expired", "count", n)
			}
		}
	}
}

func (r *Registry) expired(e *registryEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}
