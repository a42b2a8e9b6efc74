// Package metrics exposes usage counters through Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

const namespace = "wardrobe"

// PrometheusMetrics implements adapter.UsageMetrics on its own registry.
type PrometheusMetrics struct {
	registry            *prometheus.Registry
	wearEvents          *prometheus.CounterVec
	outfitsGenerated    *prometheus.CounterVec
	aggregationFailures *prometheus.CounterVec
}

var _ adapter.UsageMetrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the counters and registers them with a fresh registry
// alongside the Go runtime and process collectors.
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		wearEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wear_events_total",
			Help:      "Items marked as worn, by item kind.",
		}, []string{"kind"}),
		outfitsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outfits_generated_total",
			Help:      "Outfit generation attempts, by result.",
		}, []string{"result"}),
		aggregationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_aggregation_failures_total",
			Help:      "Analytics sub-metrics that failed and were reported empty.",
		}, []string{"metric"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.wearEvents,
		m.outfitsGenerated,
		m.aggregationFailures,
	)
	return m
}

// ObserveWearEvents adds count wear events for an item kind.
func (m *PrometheusMetrics) ObserveWearEvents(kind entity.ItemKind, count int) {
	if count <= 0 {
		return
	}
	m.wearEvents.WithLabelValues(string(kind)).Add(float64(count))
}

// ObserveOutfitGenerated counts one generation attempt.
func (m *PrometheusMetrics) ObserveOutfitGenerated(result string) {
	m.outfitsGenerated.WithLabelValues(result).Inc()
}

// ObserveAggregationFailure counts one failed analytics sub-metric.
func (m *PrometheusMetrics) ObserveAggregationFailure(metric string) {
	m.aggregationFailures.WithLabelValues(metric).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Noop discards every observation.
type Noop struct{}

var _ adapter.UsageMetrics = Noop{}

func (Noop) ObserveWearEvents(entity.ItemKind, int) {}
func (Noop) ObserveOutfitGenerated(string)          {}
func (Noop) ObserveAggregationFailure(string)       {}
