package graph

import (
	"slices"
	"strings"
)

// store is the read side shared by Builder and Graph.
type store struct {
	actors    map[int]Actor
	order     []int // actor ids in insertion order
	adj       map[int][]Edge
	entries   int // total adjacency entries, twice the edge count
	maxWeight int
}

func newStore() store {
	return store{
		actors: make(map[int]Actor),
		adj:    make(map[int][]Edge),
	}
}

func (s *store) clone() store {
	c := store{
		actors:    make(map[int]Actor, len(s.actors)),
		order:     slices.Clone(s.order),
		adj:       make(map[int][]Edge, len(s.adj)),
		entries:   s.entries,
		maxWeight: s.maxWeight,
	}
	for id, a := range s.actors {
		c.actors[id] = a
	}
	for id, edges := range s.adj {
		c.adj[id] = slices.Clone(edges)
	}
	return c
}

// HasActor reports whether id is present.
func (s *store) HasActor(id int) bool {
	_, ok := s.actors[id]
	return ok
}

// Actor returns the actor with the given id.
func (s *store) Actor(id int) (Actor, bool) {
	a, ok := s.actors[id]
	return a, ok
}

// ActorByName returns the first actor, in insertion order, whose name equals
// name ignoring case.
func (s *store) ActorByName(name string) (Actor, bool) {
	for _, id := range s.order {
		a := s.actors[id]
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Actor{}, false
}

// SearchActorsByName returns every actor whose name contains partial,
// ignoring case, in insertion order. An empty partial matches all actors.
func (s *store) SearchActorsByName(partial string) []Actor {
	needle := strings.ToLower(partial)
	var out []Actor
	for _, id := range s.order {
		a := s.actors[id]
		if strings.Contains(strings.ToLower(a.Name), needle) {
			out = append(out, a)
		}
	}
	return out
}

// Actors returns all actors in insertion order.
func (s *store) Actors() []Actor {
	out := make([]Actor, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.actors[id])
	}
	return out
}

// Neighbors returns a copy of the adjacency list for id. The second result
// is false when the actor does not exist; a known actor without edges yields
// an empty, non-nil slice.
func (s *store) Neighbors(id int) ([]Edge, bool) {
	edges, ok := s.adj[id]
	if !ok {
		return nil, false
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out, true
}

// EachNeighbor calls fn for each adjacency entry of id in insertion order
// until fn returns false. It reports whether the actor exists.
func (s *store) EachNeighbor(id int, fn func(Edge) bool) bool {
	edges, ok := s.adj[id]
	if !ok {
		return false
	}
	for _, e := range edges {
		if !fn(e) {
			break
		}
	}
	return true
}

// Degree returns the number of adjacency entries of id.
func (s *store) Degree(id int) int {
	return len(s.adj[id])
}

// EdgeWeight returns the weight of the first a->b entry, or 0 when there is
// none. Weights are always positive, so 0 unambiguously means no edge.
func (s *store) EdgeWeight(a, b int) int {
	for _, e := range s.adj[a] {
		if e.Target == b {
			return e.Weight
		}
	}
	return 0
}

// ActorCount returns the number of actors.
func (s *store) ActorCount() int {
	return len(s.actors)
}

// EdgeCount returns the number of undirected edges.
func (s *store) EdgeCount() int {
	return s.entries / 2
}

// MaxWeight returns the largest weight ever inserted.
func (s *store) MaxWeight() int {
	return s.maxWeight
}

// Stats summarizes the network.
func (s *store) Stats() Stats {
	st := Stats{
		Actors:    s.ActorCount(),
		Edges:     s.EdgeCount(),
		MaxWeight: s.maxWeight,
	}
	if st.Actors > 0 {
		st.AverageDegree = 2 * float64(st.Edges) / float64(st.Actors)
	}
	return st
}
