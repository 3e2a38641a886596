package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatherValue returns the value of the first sample of the named family
// whose labels include every given pair.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/modules", http.StatusOK, 20*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/modules", http.StatusOK, 30*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/modules", http.StatusConflict, time.Millisecond)

	assert.Equal(t, 2.0, gatherValue(t, reg, "keuzekompas_http_requests_total",
		map[string]string{"method": "GET", "route": "/modules", "status_code": "200"}))
	assert.Equal(t, 1.0, gatherValue(t, reg, "keuzekompas_http_requests_total",
		map[string]string{"method": "POST", "status_code": "409"}))
	assert.Equal(t, 2.0, gatherValue(t, reg, "keuzekompas_http_request_duration_seconds",
		map[string]string{"method": "GET", "route": "/modules"}))
}

func TestCollector_InFlightAndRateLimited(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncInFlight()
	c.IncInFlight()
	c.DecInFlight()
	assert.Equal(t, 1.0, gatherValue(t, reg, "keuzekompas_http_requests_in_flight", nil))

	c.RecordRateLimited("/auth/login")
	assert.Equal(t, 1.0, gatherValue(t, reg, "keuzekompas_rate_limited_total",
		map[string]string{"route": "/auth/login"}))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRequest(http.MethodGet, "/favorites", http.StatusOK, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "keuzekompas_http_requests_total")
	assert.Contains(t, string(body), `route="/favorites"`)
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}
