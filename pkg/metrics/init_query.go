package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "actorgraph_queries_total",
			Help: "Total number of path queries by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "actorgraph_query_duration_seconds",
			Help:    "Path query duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"algorithm"},
	)

	r.QueryNodesVisited = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "actorgraph_query_nodes_visited",
			Help:    "Number of actors settled per path query",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		},
		[]string{"algorithm"},
	)

	r.QueryHops = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "actorgraph_query_hops",
			Help:    "Hop count of found paths",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		},
		[]string{"algorithm"},
	)

	r.SlowQueries = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "actorgraph_slow_queries_total",
			Help: "Total number of slow path queries (>1s)",
		},
		[]string{"algorithm"},
	)

	r.BatchQueriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "actorgraph_batch_queries_total",
			Help: "Total number of queries executed through batches",
		},
	)

	r.BatchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "actorgraph_batch_duration_seconds",
			Help:    "Wall-clock duration of query batches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
}
