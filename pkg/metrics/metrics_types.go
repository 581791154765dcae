package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphActors    prometheus.Gauge
	GraphEdges     prometheus.Gauge
	GraphMaxWeight prometheus.Gauge

	// Query Metrics
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	QueryNodesVisited *prometheus.HistogramVec
	QueryHops         *prometheus.HistogramVec
	SlowQueries       *prometheus.CounterVec

	// Load Metrics
	LoadRecordsTotal *prometheus.CounterVec
	LoadDuration     prometheus.Histogram
	ReloadsTotal     *prometheus.CounterVec

	// Batch Metrics
	BatchQueriesTotal prometheus.Counter
	BatchDuration     prometheus.Histogram

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initQueryMetrics()
	r.initLoadMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
