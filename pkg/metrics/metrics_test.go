package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.Gauge.GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.Histogram.GetSampleCount()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.GraphActors == nil || r.QueriesTotal == nil || r.LoadRecordsTotal == nil || r.BatchQueriesTotal == nil {
		t.Error("metrics not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}

	// Two registries must not collide.
	if NewRegistry() == nil {
		t.Error("second NewRegistry() returned nil")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordPathQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordPathQuery("bfs", "found", 2*time.Millisecond, 10, 3)
	r.RecordPathQuery("bfs", "found", 3*time.Millisecond, 12, 2)
	r.RecordPathQuery("bfs", "no_path", time.Millisecond, 40, 0)
	r.RecordPathQuery("dijkstra", "found", 2*time.Second, 1000, 4)

	if v := counterValue(t, r.QueriesTotal.WithLabelValues("bfs", "found")); v != 2 {
		t.Errorf("bfs/found = %v, want 2", v)
	}
	if v := counterValue(t, r.QueriesTotal.WithLabelValues("bfs", "no_path")); v != 1 {
		t.Errorf("bfs/no_path = %v, want 1", v)
	}
	if n := histogramCount(t, r.QueryHops.WithLabelValues("bfs")); n != 2 {
		t.Errorf("bfs hops samples = %d, want 2 (no_path not observed)", n)
	}
	if n := histogramCount(t, r.QueryDuration.WithLabelValues("bfs")); n != 3 {
		t.Errorf("bfs duration samples = %d, want 3", n)
	}
	if v := counterValue(t, r.SlowQueries.WithLabelValues("dijkstra")); v != 1 {
		t.Errorf("slow dijkstra = %v, want 1", v)
	}
	if v := counterValue(t, r.SlowQueries.WithLabelValues("bfs")); v != 0 {
		t.Errorf("slow bfs = %v, want 0", v)
	}
}

func TestUpdateGraphMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(4, 3, 10)

	if v := gaugeValue(t, r.GraphActors); v != 4 {
		t.Errorf("actors = %v, want 4", v)
	}
	if v := gaugeValue(t, r.GraphEdges); v != 3 {
		t.Errorf("edges = %v, want 3", v)
	}
	if v := gaugeValue(t, r.GraphMaxWeight); v != 10 {
		t.Errorf("max weight = %v, want 10", v)
	}
}

func TestRecordLoadAndReload(t *testing.T) {
	r := NewRegistry()

	r.RecordLoadRecords("edge", "rejected", 2)
	r.RecordLoadRecords("edge", "rejected", 0)
	r.RecordLoad(time.Second)
	r.RecordReload(nil)
	r.RecordReload(errors.New("boom"))
	r.RecordBatch(5, time.Millisecond)

	if v := counterValue(t, r.LoadRecordsTotal.WithLabelValues("edge", "rejected")); v != 2 {
		t.Errorf("rejected edges = %v, want 2", v)
	}
	if v := counterValue(t, r.ReloadsTotal.WithLabelValues("success")); v != 1 {
		t.Errorf("reload success = %v, want 1", v)
	}
	if v := counterValue(t, r.ReloadsTotal.WithLabelValues("error")); v != 1 {
		t.Errorf("reload error = %v, want 1", v)
	}
	if v := counterValue(t, r.BatchQueriesTotal); v != 5 {
		t.Errorf("batch queries = %v, want 5", v)
	}

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "actorgraph_load_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("actorgraph_load_duration_seconds not gathered")
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(4, 3, 10)
	r.RecordPathQuery("bfs", "found", time.Millisecond, 3, 2)

	path := filepath.Join(t.TempDir(), "actorgraph.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"actorgraph_graph_actors 4",
		`actorgraph_queries_total{algorithm="bfs",outcome="found"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}

	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")); err == nil {
		t.Error("expected error for missing directory")
	}
}
