// Package graph holds the actor collaboration network.
//
// A network is built in two phases. A Builder is mutable and is populated
// once, typically by a loader: actors first, then the undirected weighted
// edges between them. Build freezes the contents into a Graph, an immutable
// snapshot that any number of goroutines may query concurrently.
//
// Every edge is stored as a symmetric pair of adjacency entries (a->b and
// b->a with the same weight). Adjacency lists keep insertion order; search
// algorithms use that order to break ties.
package graph
