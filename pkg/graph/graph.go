package graph

// Graph is an immutable snapshot of a network produced by Builder.Build.
// All methods are safe for concurrent use.
type Graph struct {
	store
}

// Empty returns a graph with no actors.
func Empty() *Graph {
	return &Graph{store: newStore()}
}
