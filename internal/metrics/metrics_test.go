package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tj/assert"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	c := NewCollector("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(c.Middleware)
	r.HandleFunc("/api/weather/current/{city}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}).Methods(http.MethodGet)

	for _, city := range []string{"Paris", "Rome"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather/current/"+city, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	got := testutil.ToFloat64(c.APIRequestsTotal.WithLabelValues("/api/weather/current/{city}", http.MethodGet, "400"))
	assert.Equal(t, 2.0, got)
}

func TestObserveProviderRequestAndHandler(t *testing.T) {
	c := NewCollector("test", prometheus.NewRegistry())

	c.ObserveProviderRequest("weather", "success")
	c.ObserveProviderRequest("weather", "success")
	c.ObserveProviderRequest("forecast", "provider_error")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ProviderRequestsTotal.WithLabelValues("weather", "success")))

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `test_provider_requests_total{outcome="provider_error",resource="forecast"} 1`))
}
