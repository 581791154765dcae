package algorithms

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Find for names other than "bfs" and
// "dijkstra".
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Find dispatches to ShortestPathContext ("bfs", also the default for an
// empty name) or StrongestPathContext ("dijkstra").
func (f *Finder) Find(ctx context.Context, algorithm string, g Network, startID, endID int) (PathResult, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBFS:
		return f.ShortestPathContext(ctx, g, startID, endID), nil
	case AlgorithmDijkstra:
		return f.StrongestPathContext(ctx, g, startID, endID), nil
	default:
		return PathResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
