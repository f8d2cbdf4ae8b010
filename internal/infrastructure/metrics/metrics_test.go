package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFrameByBackend(t *testing.T) {
	before := testutil.ToFloat64(metricFramesPainted.WithLabelValues("bitmap"))
	RecordFrame("bitmap")
	RecordFrame("bitmap")

	assert.Equal(t, before+2, testutil.ToFloat64(metricFramesPainted.WithLabelValues("bitmap")))
}

func TestRecordDirtyRectsIgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(metricDirtyRects)
	RecordDirtyRects(0)
	RecordDirtyRects(-3)
	RecordDirtyRects(4)

	assert.Equal(t, before+4, testutil.ToFloat64(metricDirtyRects))
}

func TestSetLiveBrowsers(t *testing.T) {
	SetLiveBrowsers(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(metricLiveBrowsers))
	SetLiveBrowsers(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(metricLiveBrowsers))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordPump()
	RecordDroppedEvent("lifespan")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "osrview_message_loop_pumps_total")
	assert.Contains(t, body, `osrview_events_dropped_total{channel="lifespan"}`)
}
