package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/graph"
)

type pathNode struct {
	algorithms.PathResult
	g *graph.Graph
}

func newActorType(limits *LimitConfig) *graphql.Object {
	collaborationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Collaboration",
		Fields: graphql.Fields{
			"weight": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(collaboration).weight, nil
				},
			},
		},
	})

	actorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Actor",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(actorNode).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(actorNode).Name, nil
				},
			},
			"degree": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					a := p.Source.(actorNode)
					return a.g.Degree(a.ID), nil
				},
			},
		},
	})

	// Fields that refer back to Actor are added after both types exist.
	collaborationType.AddFieldConfig("actor", &graphql.Field{
		Type: graphql.NewNonNull(actorType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return p.Source.(collaboration).actor, nil
		},
	})
	actorType.AddFieldConfig("collaborators", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(collaborationType))),
		Args: graphql.FieldConfigArgument{
			"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: -1},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			a := p.Source.(actorNode)
			limit := applyLimit(p.Args["limit"].(int), limits)
			out := make([]collaboration, 0, min(limit, a.g.Degree(a.ID)))
			a.g.EachNeighbor(a.ID, func(e graph.Edge) bool {
				if len(out) >= limit {
					return false
				}
				target, _ := a.g.Actor(e.Target)
				out = append(out, collaboration{actor: actorNode{Actor: target, g: a.g}, weight: e.Weight})
				return true
			})
			return out, nil
		},
	})

	return actorType
}

func newStatsType() *graphql.Object {
	field := func(t graphql.Output, get func(graph.Stats) any) *graphql.Field {
		return &graphql.Field{
			Type: graphql.NewNonNull(t),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return get(p.Source.(graph.Stats)), nil
			},
		}
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Stats",
		Fields: graphql.Fields{
			"actors":        field(graphql.Int, func(s graph.Stats) any { return s.Actors }),
			"edges":         field(graphql.Int, func(s graph.Stats) any { return s.Edges }),
			"maxWeight":     field(graphql.Int, func(s graph.Stats) any { return s.MaxWeight }),
			"averageDegree": field(graphql.Float, func(s graph.Stats) any { return s.AverageDegree }),
		},
	})
}

func newPathResultType(actorType *graphql.Object) *graphql.Object {
	field := func(t graphql.Output, get func(algorithms.PathResult) any) *graphql.Field {
		return &graphql.Field{
			Type: graphql.NewNonNull(t),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return get(p.Source.(pathNode).PathResult), nil
			},
		}
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "PathResult",
		Fields: graphql.Fields{
			"path":            field(graphql.NewList(graphql.NewNonNull(graphql.Int)), func(r algorithms.PathResult) any { return r.Path }),
			"actorNames":      field(graphql.NewList(graphql.NewNonNull(graphql.String)), func(r algorithms.PathResult) any { return r.ActorNames }),
			"hopCount":        field(graphql.Int, func(r algorithms.PathResult) any { return r.HopCount }),
			"totalWeight":     field(graphql.Int, func(r algorithms.PathResult) any { return r.TotalWeight }),
			"executionTimeMs": field(graphql.Float, func(r algorithms.PathResult) any { return r.ExecutionTimeMs }),
			"pathExists":      field(graphql.Boolean, func(r algorithms.PathResult) any { return r.PathExists }),
			"outcome":         field(graphql.String, func(r algorithms.PathResult) any { return string(r.Outcome) }),
			"algorithm":       field(graphql.String, func(r algorithms.PathResult) any { return r.Algorithm }),
			"queryId":         field(graphql.String, func(r algorithms.PathResult) any { return r.QueryID }),
			"cost":            field(graphql.Float, func(r algorithms.PathResult) any { return r.Cost }),
			"nodesVisited":    field(graphql.Int, func(r algorithms.PathResult) any { return r.NodesVisited }),
			"actors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(actorType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					n := p.Source.(pathNode)
					out := make([]actorNode, 0, len(n.Path))
					for _, id := range n.Path {
						a, _ := n.g.Actor(id)
						out = append(out, actorNode{Actor: a, g: n.g})
					}
					return out, nil
				},
			},
		},
	})
}

type ringNode struct {
	hops   int
	actors []actorNode
}

func newRingType(actorType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "SeparationRing",
		Fields: graphql.Fields{
			"hops": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(ringNode).hops, nil
				},
			},
			"actors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(actorType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(ringNode).actors, nil
				},
			},
		},
	})
}
