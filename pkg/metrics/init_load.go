package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoadMetrics() {
	r.LoadRecordsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "actorgraph_load_records_total",
			Help: "Records read by loaders by kind (actor, edge) and status (loaded, invalid, rejected)",
		},
		[]string{"kind", "status"},
	)

	r.LoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "actorgraph_load_duration_seconds",
			Help:    "Duration of full graph loads in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	r.ReloadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "actorgraph_reloads_total",
			Help: "Snapshot reloads by status",
		},
		[]string{"status"},
	)
}
