package graph

// Actor is a node in the collaboration network. Identity is the ID; names
// are not guaranteed to be unique.
type Actor struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Edge is one directed adjacency entry. Weight is the number of productions
// the two actors share.
type Edge struct {
	Target int `json:"target"`
	Weight int `json:"weight"`
}

// Stats summarizes a network.
type Stats struct {
	Actors        int     `json:"actors"`
	Edges         int     `json:"edges"`
	MaxWeight     int     `json:"max_weight"`
	AverageDegree float64 `json:"average_degree"`
}
