package algorithms_test

import (
	"context"
	"fmt"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

func exampleGraph() *graph.Graph {
	b := graph.NewBuilder(graph.WithLogger(logging.NewNopLogger()))
	b.AddActor(1, "Kevin Bacon")
	b.AddActor(2, "Tom Hanks")
	b.AddActor(3, "Meg Ryan")
	b.AddActor(4, "Bill Paxton")
	_ = b.AddEdge(1, 2, 5)
	_ = b.AddEdge(2, 3, 1)
	_ = b.AddEdge(1, 3, 2)
	_ = b.AddEdge(3, 4, 10)
	return b.Build()
}

func ExampleFinder_Find() {
	finder := algorithms.NewFinder(algorithms.WithLogger(logging.NewNopLogger()))
	g := exampleGraph()

	for _, algo := range []string{algorithms.AlgorithmBFS, algorithms.AlgorithmDijkstra} {
		res, err := finder.Find(context.Background(), algo, g, 1, 4)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(algo, res.ActorNames, res.HopCount, res.TotalWeight)
	}
	// Output:
	// bfs [Kevin Bacon Meg Ryan Bill Paxton] 2 12
	// dijkstra [Kevin Bacon Meg Ryan Bill Paxton] 2 12
}

func ExampleNeighborhood() {
	res, err := algorithms.Neighborhood(context.Background(), exampleGraph(), 4, algorithms.DefaultNeighborhoodOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.ByHop[1], res.ByHop[2])
	// Output: [3] [2 1]
}
