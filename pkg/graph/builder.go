package graph

import (
	"github.com/dd0wney/actorgraph/pkg/logging"
)

// Builder is the mutable phase of a network. It is not safe for concurrent
// use; populate it from one goroutine and call Build to obtain a Graph.
type Builder struct {
	store
	logger logging.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for rejected-edge diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder returns an empty builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		store:  newStore(),
		logger: logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(logging.Component("graph"))
	return b
}

// AddActor inserts an actor if id is new. Adding an existing id is a no-op
// and keeps the original name. It reports whether the actor was inserted.
func (b *Builder) AddActor(id int, name string) bool {
	if _, ok := b.actors[id]; ok {
		return false
	}
	b.actors[id] = Actor{ID: id, Name: name}
	b.adj[id] = []Edge{}
	b.order = append(b.order, id)
	return true
}

// AddEdge records an undirected collaboration as a symmetric pair of
// adjacency entries, from->to and to->from, with the same weight. Both
// actors must already exist and weight must be positive; otherwise the
// builder is left unchanged, a warning is logged and a *Error is returned.
func (b *Builder) AddEdge(from, to, weight int) error {
	for _, id := range [2]int{from, to} {
		if !b.HasActor(id) {
			b.logger.Warn("rejected edge between unknown actors",
				logging.Int("actor1_id", from),
				logging.Int("actor2_id", to),
				logging.ActorID(id),
			)
			return &Error{Op: "AddEdge", ActorID: id, Cause: ErrActorNotFound}
		}
	}
	if weight <= 0 {
		b.logger.Warn("rejected edge with non-positive weight",
			logging.Int("actor1_id", from),
			logging.Int("actor2_id", to),
			logging.Weight(weight),
		)
		return &Error{Op: "AddEdge", Weight: weight, Cause: ErrInvalidWeight}
	}

	b.adj[from] = append(b.adj[from], Edge{Target: to, Weight: weight})
	b.adj[to] = append(b.adj[to], Edge{Target: from, Weight: weight})
	b.entries += 2
	if weight > b.maxWeight {
		b.maxWeight = weight
	}
	return nil
}

// Clear resets the builder to an empty network. Graphs already built are
// not affected.
func (b *Builder) Clear() {
	b.store = newStore()
}

// Build returns an immutable snapshot of the current contents.
func (b *Builder) Build() *Graph {
	return &Graph{store: b.clone()}
}
