package algorithms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath_Scenario(t *testing.T) {
	g := scenarioGraph(t)

	res := quietFinder().ShortestPath(g, 1, 4)

	require.True(t, res.PathExists)
	assert.Equal(t, OutcomeFound, res.Outcome)
	assert.Equal(t, []int{1, 3, 4}, res.Path)
	assert.Equal(t, []string{"A", "C", "D"}, res.ActorNames)
	assert.Equal(t, 2, res.HopCount)
	assert.Equal(t, 12, res.TotalWeight)
	assert.Equal(t, AlgorithmBFS, res.Algorithm)
	assert.NotEmpty(t, res.QueryID)
	assert.GreaterOrEqual(t, res.ExecutionTimeMs, 0.0)
	assert.Zero(t, res.Cost)
}

func TestShortestPath_SameActor(t *testing.T) {
	g := scenarioGraph(t)

	for _, id := range []int{1, 5} {
		res := quietFinder().ShortestPath(g, id, id)
		assert.True(t, res.PathExists)
		assert.Equal(t, OutcomeSameActor, res.Outcome)
		assert.Equal(t, []int{id}, res.Path)
		assert.Len(t, res.ActorNames, 1)
		assert.Zero(t, res.HopCount)
		assert.Zero(t, res.TotalWeight)
	}
}

func TestShortestPath_UnknownActor(t *testing.T) {
	g := scenarioGraph(t)

	for _, pair := range [][2]int{{1, 99}, {99, 1}, {99, 99}} {
		res := quietFinder().ShortestPath(g, pair[0], pair[1])
		assert.False(t, res.PathExists)
		assert.Equal(t, OutcomeUnknownActor, res.Outcome)
		assert.Empty(t, res.Path)
		assert.Empty(t, res.ActorNames)
		assert.Zero(t, res.HopCount)
		assert.Zero(t, res.TotalWeight)
	}
}

func TestShortestPath_IsolatedActor(t *testing.T) {
	g := scenarioGraph(t)

	res := quietFinder().ShortestPath(g, 1, 5)
	assert.False(t, res.PathExists)
	assert.Equal(t, OutcomeNoPath, res.Outcome)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.ActorNames)
}

func TestShortestPath_DisjointComponents(t *testing.T) {
	g := buildGraph(t,
		map[int]string{1: "A", 2: "B", 3: "C", 4: "D"},
		[]testEdge{{1, 2, 1}, {3, 4, 1}},
	)

	res := quietFinder().ShortestPath(g, 1, 4)
	assert.False(t, res.PathExists)
	assert.Equal(t, OutcomeNoPath, res.Outcome)
	assert.Equal(t, 2, res.NodesVisited)
}

func TestShortestPath_TieBreakFollowsInsertionOrder(t *testing.T) {
	// 1-2-4 and 1-3-4 are both two hops; 1-2 was inserted first.
	g := buildGraph(t,
		map[int]string{1: "A", 2: "B", 3: "C", 4: "D"},
		[]testEdge{{1, 2, 1}, {1, 3, 9}, {2, 4, 1}, {3, 4, 9}},
	)
	res := quietFinder().ShortestPath(g, 1, 4)
	assert.Equal(t, []int{1, 2, 4}, res.Path)
	assert.Equal(t, 2, res.TotalWeight)

	g = buildGraph(t,
		map[int]string{1: "A", 2: "B", 3: "C", 4: "D"},
		[]testEdge{{1, 3, 9}, {1, 2, 1}, {2, 4, 1}, {3, 4, 9}},
	)
	res = quietFinder().ShortestPath(g, 1, 4)
	assert.Equal(t, []int{1, 3, 4}, res.Path)
	assert.Equal(t, 18, res.TotalWeight)
}

func TestShortestPath_IgnoresWeights(t *testing.T) {
	// Direct weak edge beats a strong two-hop detour.
	g := buildGraph(t,
		map[int]string{1: "A", 2: "B", 3: "C"},
		[]testEdge{{1, 3, 1}, {1, 2, 50}, {2, 3, 50}},
	)
	res := quietFinder().ShortestPath(g, 1, 3)
	assert.Equal(t, []int{1, 3}, res.Path)
	assert.Equal(t, 1, res.HopCount)
	assert.Equal(t, 1, res.TotalWeight)
}

func TestShortestPath_LongChain(t *testing.T) {
	actors := map[int]string{}
	var edges []testEdge
	for i := 1; i <= 50; i++ {
		actors[i] = "actor"
		if i > 1 {
			edges = append(edges, testEdge{i - 1, i, 2})
		}
	}
	g := buildGraph(t, actors, edges)

	res := quietFinder().ShortestPath(g, 1, 50)
	require.True(t, res.PathExists)
	assert.Equal(t, 49, res.HopCount)
	assert.Equal(t, 98, res.TotalWeight)
	assert.Len(t, res.Path, 50)
	assert.Equal(t, 1, res.Path[0])
	assert.Equal(t, 50, res.Path[49])
}

func TestShortestPath_Cancelled(t *testing.T) {
	g := scenarioGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := quietFinder().ShortestPathContext(ctx, g, 1, 4)
	assert.False(t, res.PathExists)
	assert.Equal(t, OutcomeCancelled, res.Outcome)
	assert.Empty(t, res.Path)
}

func TestShortestPath_RecordsMetrics(t *testing.T) {
	g := scenarioGraph(t)
	rec := &fakeRecorder{}
	f := quietFinder(WithRecorder(rec))

	f.ShortestPath(g, 1, 4)
	f.ShortestPath(g, 1, 42)

	require.Len(t, rec.queries, 2)
	assert.Equal(t, "bfs", rec.queries[0].algorithm)
	assert.Equal(t, "found", rec.queries[0].outcome)
	assert.Equal(t, 2, rec.queries[0].hops)
	assert.Equal(t, "unknown_actor", rec.queries[1].outcome)
}

func TestShortestPath_PackageFunction(t *testing.T) {
	g := scenarioGraph(t)
	res := ShortestPath(g, 2, 4)
	assert.Equal(t, []int{2, 3, 4}, res.Path)
}
