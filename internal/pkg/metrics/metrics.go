// Package metrics exposes Prometheus collectors for the form endpoints.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dnf"

// Outcome labels for form submissions.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeConflict   = "conflict"
	OutcomeEmailError = "email_error"
	OutcomeError      = "error"
)

// Manager owns a private registry so tests can build as many as they like.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	submissions         *prometheus.CounterVec
}

func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)
	return &Manager{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		submissions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
	}
}

// ObserveRequest records one finished HTTP request. route is the matched
// gin pattern, never the raw path.
func (m *Manager) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Submission counts one form submission.
func (m *Manager) Submission(form, outcome string) {
	m.submissions.WithLabelValues(form, outcome).Inc()
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Recorder is the slice of Manager that handlers depend on.
type Recorder interface {
	Submission(form, outcome string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Submission(string, string) {}
