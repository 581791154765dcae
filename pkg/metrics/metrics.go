package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SlowQueryThreshold marks queries counted as slow.
const SlowQueryThreshold = time.Second

// RecordPathQuery records one path query. Hops are observed only for
// queries that found a path.
func (r *Registry) RecordPathQuery(algorithm, outcome string, duration time.Duration, nodesVisited, hops int) {
	r.QueriesTotal.WithLabelValues(algorithm, outcome).Inc()
	r.QueryDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.QueryNodesVisited.WithLabelValues(algorithm).Observe(float64(nodesVisited))
	if outcome == "found" || outcome == "same_actor" {
		r.QueryHops.WithLabelValues(algorithm).Observe(float64(hops))
	}

	if duration > SlowQueryThreshold {
		r.SlowQueries.WithLabelValues(algorithm).Inc()
	}
}

// UpdateGraphMetrics publishes the size of the current snapshot
func (r *Registry) UpdateGraphMetrics(actors, edges, maxWeight int) {
	r.GraphActors.Set(float64(actors))
	r.GraphEdges.Set(float64(edges))
	r.GraphMaxWeight.Set(float64(maxWeight))
}

// RecordLoadRecords adds n records of the given kind and status
func (r *Registry) RecordLoadRecords(kind, status string, n int) {
	if n <= 0 {
		return
	}
	r.LoadRecordsTotal.WithLabelValues(kind, status).Add(float64(n))
}

// RecordLoad records a completed load
func (r *Registry) RecordLoad(duration time.Duration) {
	r.LoadDuration.Observe(duration.Seconds())
}

// RecordReload records a snapshot reload attempt
func (r *Registry) RecordReload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.ReloadsTotal.WithLabelValues(status).Inc()
}

// RecordBatch records a finished batch of n queries
func (r *Registry) RecordBatch(n int, duration time.Duration) {
	r.BatchQueriesTotal.Add(float64(n))
	r.BatchDuration.Observe(duration.Seconds())
}

// WriteTextfile writes every metric in the registry to path in the
// Prometheus text format, for the node_exporter textfile collector. The
// file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
