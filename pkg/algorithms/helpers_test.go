package algorithms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

type testEdge struct {
	a, b, w int
}

func buildGraph(t testing.TB, actors map[int]string, edges []testEdge) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(graph.WithLogger(logging.NewNopLogger()))
	for id := 1; len(actors) > 0 && id <= maxKey(actors); id++ {
		if name, ok := actors[id]; ok {
			b.AddActor(id, name)
		}
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e.a, e.b, e.w))
	}
	return b.Build()
}

func maxKey(m map[int]string) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

func quietFinder(opts ...Option) *Finder {
	return NewFinder(append([]Option{WithLogger(logging.NewNopLogger())}, opts...)...)
}

// scenarioGraph is A-B(5), B-C(1), A-C(2), C-D(10) plus isolated E.
func scenarioGraph(t testing.TB) *graph.Graph {
	return buildGraph(t,
		map[int]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E"},
		[]testEdge{{1, 2, 5}, {2, 3, 1}, {1, 3, 2}, {3, 4, 10}},
	)
}

type recordedQuery struct {
	algorithm, outcome string
	visited, hops      int
}

type fakeRecorder struct {
	queries []recordedQuery
}

func (f *fakeRecorder) RecordPathQuery(algorithm, outcome string, _ time.Duration, visited, hops int) {
	f.queries = append(f.queries, recordedQuery{algorithm, outcome, visited, hops})
}
