package algorithms

import (
	"container/heap"
	"context"

	"github.com/dd0wney/actorgraph/pkg/graph"
)

// pqItem is a frontier entry keyed by accumulated cost. seq orders entries
// with equal cost by push order.
type pqItem struct {
	id   int
	dist float64
	seq  int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// StrongestPath returns a path of minimum total cost under the Finder's
// cost transform, which favours edges between frequent collaborators.
// This is not the fewest-hops path. When several paths share the minimum
// cost, any one of them may be returned. TotalWeight is the sum of the raw
// collaboration weights along the path and Cost the sum of transformed
// costs.
func (f *Finder) StrongestPath(g Network, startID, endID int) PathResult {
	return f.StrongestPathContext(context.Background(), g, startID, endID)
}

// StrongestPathContext is StrongestPath with cooperative cancellation: ctx
// is checked once per popped queue entry.
func (f *Finder) StrongestPathContext(ctx context.Context, g Network, startID, endID int) PathResult {
	q := f.begin(g, AlgorithmDijkstra, startID, endID)
	if res, done := q.validate(); done {
		return res
	}

	maxWeight := g.MaxWeight()
	distance := map[int]float64{startID: 0}
	parent := make(map[int]int)
	parentWeight := make(map[int]int)
	visited := make(map[int]bool)

	seq := 0
	pq := &priorityQueue{{id: startID, dist: 0, seq: seq}}

	nodesVisited, edgesExamined := 0, 0
	found := false

	for pq.Len() > 0 {
		if q.interrupted(ctx) {
			res := failed(OutcomeCancelled)
			res.NodesVisited, res.EdgesExamined = nodesVisited, edgesExamined
			return q.finish(res)
		}

		current := heap.Pop(pq).(pqItem)
		// Stale entries for already settled actors are skipped, not removed.
		if visited[current.id] {
			continue
		}
		visited[current.id] = true
		nodesVisited++

		if current.id == endID {
			found = true
			break
		}

		base := distance[current.id]
		g.EachNeighbor(current.id, func(e graph.Edge) bool {
			edgesExamined++
			if visited[e.Target] {
				return true
			}
			candidate := base + f.cost(e.Weight, maxWeight)
			if old, ok := distance[e.Target]; !ok || candidate < old {
				distance[e.Target] = candidate
				parent[e.Target] = current.id
				parentWeight[e.Target] = e.Weight
				seq++
				heap.Push(pq, pqItem{id: e.Target, dist: candidate, seq: seq})
			}
			return true
		})
	}

	var res PathResult
	if found {
		res = q.found(parent, parentWeight)
		res.Cost = distance[endID]
	} else {
		res = failed(OutcomeNoPath)
	}
	res.NodesVisited, res.EdgesExamined = nodesVisited, edgesExamined
	return q.finish(res)
}
