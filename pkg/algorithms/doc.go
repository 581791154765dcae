// Package algorithms answers path queries over an actor collaboration
// network.
//
// ShortestPath runs a breadth-first search and returns a path with the
// fewest hops. StrongestPath runs Dijkstra's algorithm over a transformed
// cost (InverseCost by default) so that the cheapest path runs through the
// strongest working relationships. Neighborhood groups the actors around
// one actor by degrees of separation.
//
// Both searches are read-only and keep all their state local to the call,
// so any number of queries may run concurrently against one frozen
// *graph.Graph. Failures are not errors: every query returns a PathResult
// whose Outcome and PathExists describe what happened.
package algorithms
