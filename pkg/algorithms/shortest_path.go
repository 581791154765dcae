package algorithms

import (
	"context"

	"github.com/dd0wney/actorgraph/pkg/graph"
)

// ShortestPath returns a path with the fewest hops between startID and
// endID. Among several minimum-hop paths, the one reached through
// earlier-inserted adjacency entries is returned. TotalWeight is reported
// for display only and plays no part in the choice.
func (f *Finder) ShortestPath(g Network, startID, endID int) PathResult {
	return f.ShortestPathContext(context.Background(), g, startID, endID)
}

// ShortestPathContext is ShortestPath with cooperative cancellation: ctx is
// checked once per dequeued actor.
func (f *Finder) ShortestPathContext(ctx context.Context, g Network, startID, endID int) PathResult {
	q := f.begin(g, AlgorithmBFS, startID, endID)
	if res, done := q.validate(); done {
		return res
	}

	queue := []int{startID}
	visited := map[int]bool{startID: true}
	parent := make(map[int]int)
	parentWeight := make(map[int]int)

	nodesVisited, edgesExamined := 0, 0
	found := false

	for len(queue) > 0 && !found {
		if q.interrupted(ctx) {
			res := failed(OutcomeCancelled)
			res.NodesVisited, res.EdgesExamined = nodesVisited, edgesExamined
			return q.finish(res)
		}

		current := queue[0]
		queue = queue[1:]
		nodesVisited++

		if current == endID {
			found = true
			break
		}

		g.EachNeighbor(current, func(e graph.Edge) bool {
			edgesExamined++
			if visited[e.Target] {
				return true
			}
			visited[e.Target] = true
			parent[e.Target] = current
			parentWeight[e.Target] = e.Weight
			queue = append(queue, e.Target)

			// Stop as soon as the target is discovered.
			if e.Target == endID {
				found = true
				return false
			}
			return true
		})
	}

	var res PathResult
	if found {
		res = q.found(parent, parentWeight)
	} else {
		res = failed(OutcomeNoPath)
	}
	res.NodesVisited, res.EdgesExamined = nodesVisited, edgesExamined
	return q.finish(res)
}
