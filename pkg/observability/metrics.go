package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus counters for HTTP dispatch and
// state-machine activity, exposed by the HTTP adapter's /metrics
// endpoint. It is separate from LifecycleHooks so a host that does not
// want metrics can skip it entirely.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with its own registry, so
// multiple Rulang servers in one process don't collide on metric
// names.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rulang_http_requests_total",
			Help: "Total HTTP requests dispatched to Rulang endpoints.",
		}, []string{"method", "path", "status"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rulang_state_transitions_total",
			Help: "Total state-machine transitions applied or rolled back.",
		}, []string{"machine", "event"}),
	}
	reg.MustRegister(m.requests, m.transitions)
	return m
}

// ObserveRequest records one completed HTTP dispatch.
func (m *Metrics) ObserveRequest(method, path string, status int) {
	m.requests.WithLabelValues(method, path, statusLabel(status)).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Hooks returns LifecycleHooks that feed state-machine transitions
// into the transitions_total counter. Compose with WithLifecycleHooks
// alongside any host-specific observation by calling both from the
// OnTransition/OnRegister fields.
func (m *Metrics) Hooks() LifecycleHooks {
	return LifecycleHooks{
		OnTransition: func(ev TransitionEvent) {
			event := ev.Event
			if event == "" {
				event = "rollback"
			}
			m.transitions.WithLabelValues(ev.Machine, event).Inc()
		},
	}
}

// Handler exposes the metrics in the Prometheus text exposition
// format, meant to be mounted at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
