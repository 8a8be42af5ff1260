// Package metrics exposes Prometheus metrics for the API and its provider calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector provides application metrics collection.
type Collector struct {
	APIRequestsTotal      *prometheus.CounterVec
	APIRequestDuration    *prometheus.HistogramVec
	ProviderRequestsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewCollector creates a new metrics collector registered on reg.
func NewCollector(namespace string, reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"endpoint"},
		),

		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_requests_total",
				Help:      "Total number of outbound weather provider requests by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),

		gatherer: reg,
	}
}

// ObserveProviderRequest records one outbound provider request.
func (c *Collector) ObserveProviderRequest(resource, outcome string) {
	c.ProviderRequestsTotal.WithLabelValues(resource, outcome).Inc()
}

// Handler serves the collected metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by the matched route template.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		endpoint := "unmatched"
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		c.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		c.APIRequestsTotal.WithLabelValues(endpoint, r.Method, strconv.Itoa(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
