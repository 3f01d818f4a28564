package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "notesgraph_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notesgraph_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.RendersTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "notesgraph_renders_total",
			Help: "Total number of render passes",
		},
	)

	r.LoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "notesgraph_loads_total",
			Help: "Dataset loads by result",
		},
		[]string{"result"},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "notesgraph_graph_nodes",
			Help: "Nodes in the rendered graph",
		},
	)

	r.GraphLinks = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "notesgraph_graph_links",
			Help: "Valid links in the rendered graph",
		},
	)

	r.GraphDroppedLinks = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "notesgraph_graph_dropped_links",
			Help: "Links dropped because an endpoint is missing",
		},
	)

	r.SimulationTicks = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "notesgraph_simulation_ticks_total",
			Help: "Total number of simulation ticks",
		},
	)

	r.SimulationAlpha = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "notesgraph_simulation_alpha",
			Help: "Current simulation energy",
		},
	)
}

func (r *Registry) initStreamMetrics() {
	r.SSEClients = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "notesgraph_sse_clients",
			Help: "Connected event stream clients",
		},
	)

	r.EventsDropped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "notesgraph_events_dropped_total",
			Help: "Events not delivered to slow stream clients",
		},
	)
}
