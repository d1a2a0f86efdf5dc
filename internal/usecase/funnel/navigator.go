package funnel

import (
	"maps"
	"sync"
	"time"
)

// RecordingNavigator serves the entry query parameters and remembers the last navigation
// request. The HTTP layer hands the target to the client through the view.
type RecordingNavigator struct {
	mu     sync.Mutex
	query  map[string]string
	target string
	after  time.Duration
}

func NewRecordingNavigator(query map[string]string) *RecordingNavigator {
	return &RecordingNavigator{query: maps.Clone(query)}
}

func (n *RecordingNavigator) QueryParams() map[string]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return maps.Clone(n.query)
}

func (n *RecordingNavigator) GoTo(path string, after time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.target = path
	n.after = after
}

func (n *RecordingNavigator) Target() (string, time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target, n.after
}
