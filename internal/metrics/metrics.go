// Package metrics exposes Prometheus metrics for the graph view on a private
// registry. Every recording method is safe on a nil *Registry so
// components can run without metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"notesgraph/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Graph Metrics
	RendersTotal      prometheus.Counter
	LoadsTotal        *prometheus.CounterVec
	GraphNodes        prometheus.Gauge
	GraphLinks        prometheus.Gauge
	GraphDroppedLinks prometheus.Gauge
	SimulationTicks   prometheus.Counter
	SimulationAlpha   prometheus.Gauge

	// Stream Metrics
	SSEClients    prometheus.Gauge
	EventsDropped prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric initialised
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initGraphMetrics()
	r.initStreamMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordHTTPRequest records one served request
func (r *Registry) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	code := strconv.Itoa(status)
	r.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// RecordRender records a render pass over a derived graph
func (r *Registry) RecordRender(stats domain.Stats) {
	if r == nil {
		return
	}
	r.RendersTotal.Inc()
	r.GraphNodes.Set(float64(stats.Nodes))
	r.GraphLinks.Set(float64(stats.Links))
	r.GraphDroppedLinks.Set(float64(stats.DroppedLinks))
}

// RecordLoad records a dataset load outcome
func (r *Registry) RecordLoad(err error) {
	if r == nil {
		return
	}
	r.LoadsTotal.WithLabelValues(loadResult(err)).Inc()
}

// RecordTick records one simulation tick at alpha
func (r *Registry) RecordTick(alpha float64) {
	if r == nil {
		return
	}
	r.SimulationTicks.Inc()
	r.SimulationAlpha.Set(alpha)
}

// SetSSEClients sets the connected stream client count
func (r *Registry) SetSSEClients(n int) {
	if r == nil {
		return
	}
	r.SSEClients.Set(float64(n))
}

// RecordDroppedEvent counts an event a slow client missed
func (r *Registry) RecordDroppedEvent() {
	if r == nil {
		return
	}
	r.EventsDropped.Inc()
}

func loadResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsMalformed(err):
		return "malformed"
	default:
		return "fetch_failed"
	}
}
