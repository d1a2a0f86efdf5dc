//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("nil receiver is a no-op", func(t *testing.T) {
		var m *metrics.Metrics
		assert.NotPanics(t, func() {
			m.Submission("completed")
			m.PromoApplied("explicit", "applied")
			m.DraftOp("write", "ok")
			m.CabinBooking("created")
			m.SetMountedFunnels(3)
			m.ObserveHTTP("/health", "GET", 200, time.Millisecond)
		})
	})

	t.Run("instances do not share registries", func(t *testing.T) {
		a := metrics.New(config.MetricsConfig{Namespace: "a"})
		b := metrics.New(config.MetricsConfig{Namespace: "a"})

		a.Submission("completed")
		a.Submission("completed")
		b.Submission("redirected")

		count, err := testutil.GatherAndCount(a.Registry(), "a_funnel_submissions_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
