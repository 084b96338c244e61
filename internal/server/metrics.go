package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analysis outcome labels.
const (
	OutcomeData    = "data"
	OutcomeCached  = "cached"
	OutcomeNoData  = "no_data"
	OutcomeTimeout = "timeout"
)

// Metrics provides observability for the HTTP API.
type Metrics struct {
	// Requests by route pattern, method and status code
	Requests *prometheus.CounterVec

	// Analysis outcomes: data, cached, no_data, timeout
	Analyses *prometheus.CounterVec

	// End-to-end pipeline latency for POST /analyze
	AnalysisLatency prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewMetrics creates a Metrics instance registered on its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atomscope_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),

		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "atomscope_analyses_total",
			Help: "Total analyses by outcome",
		}, []string{"outcome"}),

		AnalysisLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "atomscope_analysis_duration_seconds",
			Help:    "Duration of a full analysis pipeline run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 90},
		}),

		gatherer: reg,
	}
}

// IncrementOutcome records an analysis outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Analyses.WithLabelValues(outcome).Inc()
	}
}

// ObserveAnalysisLatency records the duration of one pipeline run.
func (m *Metrics) ObserveAnalysisLatency(d time.Duration) {
	if m != nil {
		m.AnalysisLatency.Observe(d.Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// countRequests counts every request by its matched route pattern.
func (m *Metrics) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
