package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveChannelOperation(t *testing.T) {
	m := New()
	m.ObserveChannelOperation("Google Ads", "create", "success", 120*time.Millisecond)
	m.ObserveChannelOperation("Google Ads", "create", "failed", time.Second)
	m.ObserveChannelOperation("Google Ads", "create", "success", 80*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChannelOperationsTotal.WithLabelValues("Google Ads", "create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChannelOperationsTotal.WithLabelValues("Google Ads", "create", "failed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveChannelOperation("Meta Ads", "pause", "success", time.Millisecond)
		m.AddPerformanceRecords(3)
		m.IncGenerationFallback("strategy")
		m.IncAPIRequest("GET", "/health", "200")
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.AddPerformanceRecords(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "automark_performance_records_inserted_total 4"), body)
}
