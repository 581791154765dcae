package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphActors = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "actorgraph_graph_actors",
			Help: "Number of actors in the current graph snapshot",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "actorgraph_graph_edges",
			Help: "Number of undirected collaboration edges in the current graph snapshot",
		},
	)

	r.GraphMaxWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "actorgraph_graph_max_weight",
			Help: "Largest collaboration weight in the current graph snapshot",
		},
	)
}
