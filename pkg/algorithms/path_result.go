package algorithms

import "time"

// Outcome is the terminal state of a path query.
type Outcome string

const (
	// OutcomeFound means a path between two distinct actors was found.
	OutcomeFound Outcome = "found"
	// OutcomeSameActor means start and end were the same actor.
	OutcomeSameActor Outcome = "same_actor"
	// OutcomeUnknownActor means start or end is not in the graph.
	OutcomeUnknownActor Outcome = "unknown_actor"
	// OutcomeNoPath means the actors are in different components.
	OutcomeNoPath Outcome = "no_path"
	// OutcomeCancelled means the query's context ended before a terminal state.
	OutcomeCancelled Outcome = "cancelled"
)

// Algorithm names reported in PathResult.Algorithm.
const (
	AlgorithmBFS      = "bfs"
	AlgorithmDijkstra = "dijkstra"
)

// PathResult is the outcome of a single path query. When PathExists is
// false, Path and ActorNames are empty and HopCount and TotalWeight are 0.
type PathResult struct {
	Path            []int    `json:"path"`
	ActorNames      []string `json:"actor_names"`
	HopCount        int      `json:"hop_count"`
	// TotalWeight sums the raw weights of the edges the search traversed.
	// With parallel edges between two actors this is the weight of the edge
	// actually taken, which may differ from Graph.EdgeWeight (first entry).
	TotalWeight     int      `json:"total_weight"`
	ExecutionTimeMs float64  `json:"execution_time_ms"`
	PathExists      bool     `json:"path_exists"`

	Outcome   Outcome `json:"outcome"`
	Algorithm string  `json:"algorithm"`
	QueryID   string  `json:"query_id"`
	// Cost is the summed transformed edge cost of a Dijkstra path.
	Cost          float64 `json:"cost"`
	NodesVisited  int     `json:"nodes_visited"`
	EdgesExamined int     `json:"edges_examined"`
}

// Elapsed returns ExecutionTimeMs as a duration.
func (r PathResult) Elapsed() time.Duration {
	return time.Duration(r.ExecutionTimeMs * float64(time.Millisecond))
}

func failed(outcome Outcome) PathResult {
	return PathResult{
		Path:       []int{},
		ActorNames: []string{},
		Outcome:    outcome,
	}
}
