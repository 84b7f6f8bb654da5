package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "zeabur_mcp"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the Prometheus collectors shared by the GraphQL transport,
// the tool handlers and the status-polling engine. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	graphqlRequests *prometheus.CounterVec
	graphqlDuration *prometheus.HistogramVec
	toolCalls       *prometheus.CounterVec
	waitOutcomes    *prometheus.CounterVec
	waitRounds      prometheus.Counter
}

// NewMetrics creates a Metrics instance registered on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		graphqlRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphql_requests_total",
				Help:      "GraphQL requests sent to the Zeabur API by operation and result.",
			},
			[]string{"operation", "result"},
		),
		graphqlDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graphql_request_duration_seconds",
				Help:      "Round-trip duration of GraphQL requests.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "MCP tool invocations by tool and result.",
			},
			[]string{"tool", "result"},
		),
		waitOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "wait_outcomes_total",
				Help:      "Terminal outcomes of wait_for_services_running.",
			},
			[]string{"outcome"},
		),
		waitRounds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "wait_poll_rounds_total",
				Help:      "Status polling rounds issued by wait_for_services_running.",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.graphqlRequests,
		m.graphqlDuration,
		m.toolCalls,
		m.waitOutcomes,
		m.waitRounds,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler returns the HTTP handler serving the registry in exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveGraphQL records one GraphQL round trip.
func (m *Metrics) ObserveGraphQL(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.graphqlRequests.WithLabelValues(operation, resultLabel(err)).Inc()
	m.graphqlDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveTool records one tool invocation.
func (m *Metrics) ObserveTool(tool string, err error) {
	if m == nil {
		return
	}
	m.toolCalls.WithLabelValues(tool, resultLabel(err)).Inc()
}

// ObserveWaitRound counts one polling round.
func (m *Metrics) ObserveWaitRound() {
	if m == nil {
		return
	}
	m.waitRounds.Inc()
}

// ObserveWaitOutcome counts a terminal wait outcome (succeeded, failed,
// timed_out, error).
func (m *Metrics) ObserveWaitOutcome(outcome string) {
	if m == nil {
		return
	}
	m.waitOutcomes.WithLabelValues(outcome).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
