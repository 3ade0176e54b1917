package observability

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

func TestMetrics_RecordInsight(t *testing.T) {
	m := NewMetrics()

	m.RecordInsight("salary", "fallback", "parse")
	m.RecordInsight("salary", "fallback", "parse")
	m.RecordInsight("salary", "live", "none")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.insightRequests.WithLabelValues("salary", "fallback", "parse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.insightRequests.WithLabelValues("salary", "live", "none")))
}

func TestMetrics_RecordCompletion(t *testing.T) {
	m := NewMetrics()
	m.RecordCompletion("job-market", 1500*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.completionDuration))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordInsight("salary", "live", "none")
		m.RecordCompletion("salary", time.Second)
		m.RecordHTTP("/health", http.StatusOK)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.RecordInsight("skill-demand", "live", "none")
	m.RecordHTTP("/insights/{topic}", http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `career_pulse_insight_requests_total{reason="none",source="live",topic="skill-demand"} 1`))
	assert.Contains(t, body, "career_pulse_http_requests_total")
}
