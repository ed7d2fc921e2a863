package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()

	m.ObserveCompletion("sonar", "ok", time.Second)
	m.ObserveCompletion("sonar", "ok", time.Second)
	m.RecordSearch("search", true, 3*time.Second)
	m.RecordGapFlag("regional", "very_low")
	m.RecordDimensionFailure("thematic")
	m.RecordSavedQuery("save", errors.New("down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CompletionsTotal.WithLabelValues("sonar", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("search", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GapFlagsTotal.WithLabelValues("regional", "very_low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DimensionFailures.WithLabelValues("thematic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SavedQueryOperations.WithLabelValues("save", "error")))
}

func TestIndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.RecordGapFlag("thematic", "under_covered")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.GapFlagsTotal.WithLabelValues("thematic", "under_covered")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := NewMetrics()
	m.RecordSearch("generate_insights", false, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `researchgap_searches_total{degraded="false",endpoint="generate_insights"} 1`)
}
