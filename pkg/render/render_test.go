package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/graph"
)

func found() algorithms.PathResult {
	return algorithms.PathResult{
		Path:            []int{1, 3, 4},
		ActorNames:      []string{"Kevin Bacon", "Meg Ryan", "Bill Paxton"},
		HopCount:        2,
		TotalWeight:     12,
		ExecutionTimeMs: 0.1234,
		PathExists:      true,
		Outcome:         algorithms.OutcomeFound,
		Algorithm:       algorithms.AlgorithmBFS,
	}
}

func TestPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Path(found()))

	out := buf.String()
	assert.Contains(t, out, "BFS Path Result")
	assert.Contains(t, out, "2 degrees of separation")
	assert.Contains(t, out, "Total Collaboration Weight: 12")
	assert.Contains(t, out, "0.123 ms")
	assert.Contains(t, out, "Kevin Bacon → Meg Ryan → Bill Paxton")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\x1b[", "no escape codes for a non-terminal writer")
}

func TestPathMissing(t *testing.T) {
	res := algorithms.PathResult{
		Path:       []int{},
		ActorNames: []string{},
		Outcome:    algorithms.OutcomeUnknownActor,
		Algorithm:  algorithms.AlgorithmDijkstra,
	}
	out := New(&bytes.Buffer{}).FormatPath(res)

	assert.Contains(t, out, "Dijkstra Path Result")
	assert.Contains(t, out, "No path found.")
	assert.Contains(t, out, "unknown actor")
	assert.NotContains(t, out, "degrees of separation")
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Stats(graph.Stats{Actors: 5, Edges: 4, MaxWeight: 10, AverageDegree: 1.6}))

	out := buf.String()
	assert.Contains(t, out, "Graph Statistics")
	assert.Contains(t, out, "Total Actors: 5")
	assert.Contains(t, out, "Total Edges: 4")
	assert.Contains(t, out, "Maximum Edge Weight: 10")
	assert.Contains(t, out, "Average Degree: 1.60")
}

func TestComparison(t *testing.T) {
	strong := found()
	strong.Algorithm = algorithms.AlgorithmDijkstra

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Comparison(found(), strong))

	out := buf.String()
	assert.Contains(t, out, "BFS Path Result")
	assert.Contains(t, out, "Dijkstra Path Result")
	first := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, first, "BFS", "boxes are joined horizontally")
	assert.Contains(t, first, "Dijkstra")
}
