package algorithms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

// Network is the read-only view the path finders need. Both *graph.Graph
// and *graph.Builder satisfy it.
type Network interface {
	HasActor(id int) bool
	Actor(id int) (graph.Actor, bool)
	EachNeighbor(id int, fn func(graph.Edge) bool) bool
	MaxWeight() int
}

// Recorder receives per-query measurements. *metrics.Registry implements it.
type Recorder interface {
	RecordPathQuery(algorithm, outcome string, duration time.Duration, nodesVisited, hops int)
}

// Finder runs path queries. It holds only collaborators and no per-query
// state, so one Finder may serve concurrent queries.
type Finder struct {
	logger   logging.Logger
	recorder Recorder
	cost     CostFunc
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(f *Finder) {
		f.recorder = r
	}
}

// WithCostFunc sets the Dijkstra cost transform. Defaults to InverseCost.
func WithCostFunc(c CostFunc) Option {
	return func(f *Finder) {
		if c != nil {
			f.cost = c
		}
	}
}

// NewFinder returns a Finder using the default logger and InverseCost.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		logger: logging.DefaultLogger(),
		cost:   InverseCost,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logging.Component("pathfinder"))
	return f
}

// ShortestPath finds a minimum-hop path with a default Finder.
func ShortestPath(g Network, startID, endID int) PathResult {
	return NewFinder().ShortestPath(g, startID, endID)
}

// StrongestPath finds a minimum-cost path under InverseCost with a default
// Finder.
func StrongestPath(g Network, startID, endID int) PathResult {
	return NewFinder().StrongestPath(g, startID, endID)
}

// query carries the bookkeeping shared by both searches.
type query struct {
	f         *Finder
	g         Network
	algorithm string
	start     time.Time
	startID   int
	endID     int
	logger    logging.Logger
	id        string
}

func (f *Finder) begin(g Network, algorithm string, startID, endID int) *query {
	id := uuid.NewString()
	return &query{
		f:         f,
		g:         g,
		algorithm: algorithm,
		start:     time.Now(),
		startID:   startID,
		endID:     endID,
		id:        id,
		logger: f.logger.With(
			logging.QueryID(id),
			logging.Algorithm(algorithm),
		),
	}
}

// validate returns a terminal result when the query ends before searching:
// an unknown endpoint or start == end.
func (q *query) validate() (PathResult, bool) {
	for _, id := range [2]int{q.startID, q.endID} {
		if !q.g.HasActor(id) {
			q.logger.Warn("actor not found in graph", logging.ActorID(id))
			return q.finish(failed(OutcomeUnknownActor)), true
		}
	}
	if q.startID == q.endID {
		res := PathResult{
			Path:       []int{q.startID},
			ActorNames: []string{q.name(q.startID)},
			PathExists: true,
			Outcome:    OutcomeSameActor,
		}
		return q.finish(res), true
	}
	return PathResult{}, false
}

func (q *query) name(id int) string {
	a, _ := q.g.Actor(id)
	return a.Name
}

// found builds a successful result from a parent map. parentWeight holds the
// weight of the edge used to reach each node.
func (q *query) found(parent, parentWeight map[int]int) PathResult {
	path := reconstructPath(parent, q.startID, q.endID)
	res := PathResult{
		Path:       path,
		ActorNames: make([]string, 0, len(path)),
		HopCount:   len(path) - 1,
		PathExists: true,
		Outcome:    OutcomeFound,
	}
	for i, id := range path {
		res.ActorNames = append(res.ActorNames, q.name(id))
		if i > 0 {
			res.TotalWeight += parentWeight[id]
		}
	}
	return res
}

// interrupted reports whether ctx has ended.
func (q *query) interrupted(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	q.logger.Info("path query cancelled", logging.Error(ctx.Err()))
	return true
}

// finish stamps timing and identity onto res, logs and records it.
func (q *query) finish(res PathResult) PathResult {
	elapsed := time.Since(q.start)
	res.ExecutionTimeMs = float64(elapsed) / float64(time.Millisecond)
	res.Algorithm = q.algorithm
	res.QueryID = q.id

	if res.Outcome == OutcomeNoPath {
		q.logger.Info("no path found between actors",
			logging.Int("start_id", q.startID),
			logging.Int("end_id", q.endID),
		)
	}
	q.logger.Debug("path query finished",
		logging.String("outcome", string(res.Outcome)),
		logging.Hops(res.HopCount),
		logging.Weight(res.TotalWeight),
		logging.Int("nodes_visited", res.NodesVisited),
		logging.Latency(elapsed),
	)
	if q.f.recorder != nil {
		q.f.recorder.RecordPathQuery(q.algorithm, string(res.Outcome), elapsed, res.NodesVisited, res.HopCount)
	}
	return res
}

// reconstructPath follows parent links back from endID and reverses.
func reconstructPath(parent map[int]int, startID, endID int) []int {
	path := []int{endID}
	for node := endID; node != startID; {
		node = parent[node]
		path = append(path, node)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
