package algorithms

import (
	"context"
	"fmt"

	"github.com/dd0wney/actorgraph/pkg/graph"
)

// NeighborhoodOptions configures the degrees-of-separation ring search.
type NeighborhoodOptions struct {
	MaxHops    int // must be >= 1
	MinWeight  int // edges lighter than this are ignored; 0 keeps all
	MaxResults int // 0 = unlimited; BFS order gives closer actors priority
}

// NeighborhoodResult groups the actors reachable from a source by their
// degrees of separation.
type NeighborhoodResult struct {
	SourceID       int
	ByHop          map[int][]int // hop distance → actor IDs at that distance
	Distances      map[int]int   // actor ID → hop count
	TotalReachable int
	Truncated      bool // MaxResults cut off at least one reachable actor
}

// DefaultNeighborhoodOptions returns a two-hop search with no filters.
func DefaultNeighborhoodOptions() NeighborhoodOptions {
	return NeighborhoodOptions{MaxHops: 2}
}

type ringEntry struct {
	id  int
	hop int
}

// Neighborhood runs a BFS from sourceID up to MaxHops levels and returns
// every discovered actor grouped by distance. The source is never part of
// the result. Within a ring, actors appear in discovery order, which follows
// edge insertion order.
func Neighborhood(ctx context.Context, g Network, sourceID int, opts NeighborhoodOptions) (NeighborhoodResult, error) {
	if opts.MaxHops < 1 {
		return NeighborhoodResult{}, fmt.Errorf("MaxHops must be >= 1, got %d", opts.MaxHops)
	}
	if !g.HasActor(sourceID) {
		return NeighborhoodResult{}, &graph.Error{Op: "neighborhood", ActorID: sourceID, Cause: graph.ErrActorNotFound}
	}

	res := NeighborhoodResult{
		SourceID:  sourceID,
		ByHop:     make(map[int][]int),
		Distances: make(map[int]int),
	}
	visited := map[int]bool{sourceID: true}
	queue := []ringEntry{{id: sourceID}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		current := queue[0]
		queue = queue[1:]
		if current.hop >= opts.MaxHops {
			continue
		}
		next := current.hop + 1

		g.EachNeighbor(current.id, func(e graph.Edge) bool {
			if visited[e.Target] || e.Weight < opts.MinWeight {
				return true
			}
			if opts.MaxResults > 0 && res.TotalReachable >= opts.MaxResults {
				// an eligible actor is being left out
				res.Truncated = true
				return false
			}
			visited[e.Target] = true
			res.Distances[e.Target] = next
			res.ByHop[next] = append(res.ByHop[next], e.Target)
			res.TotalReachable++
			queue = append(queue, ringEntry{id: e.Target, hop: next})
			return true
		})
		if res.Truncated {
			return res, nil
		}
	}
	return res, nil
}
