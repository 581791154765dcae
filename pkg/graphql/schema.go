package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

// Provider supplies the snapshot a request runs against. *catalog.Store
// satisfies it. Each root field fetches the snapshot once, so nested
// fields of one result never mix generations.
type Provider interface {
	Graph() *graph.Graph
}

// StaticProvider serves a fixed snapshot
type StaticProvider struct {
	G *graph.Graph
}

// Graph implements Provider
func (p StaticProvider) Graph() *graph.Graph { return p.G }

// actorNode carries the snapshot alongside the actor so nested fields
// resolve against the same graph.
type actorNode struct {
	graph.Actor
	g *graph.Graph
}

type collaboration struct {
	actor  actorNode
	weight int
}

type schemaOptions struct {
	finder *algorithms.Finder
	limits LimitConfig
}

// SchemaOption configures NewSchema
type SchemaOption func(*schemaOptions)

// WithFinder sets the finder used by the path fields
func WithFinder(f *algorithms.Finder) SchemaOption {
	return func(o *schemaOptions) {
		if f != nil {
			o.finder = f
		}
	}
}

// WithLimits overrides the list size limits
func WithLimits(cfg LimitConfig) SchemaOption {
	return func(o *schemaOptions) { o.limits = cfg }
}

// NewSchema builds the actor graph query schema:
//
//	actor(id: Int!): Actor
//	actorByName(name: String!): Actor
//	searchActors(name: String!, limit: Int): [Actor!]!
//	stats: Stats!
//	shortestPath(from: Int!, to: Int!): PathResult!
//	strongestPath(from: Int!, to: Int!): PathResult!
//	neighborhood(id: Int!, maxHops: Int, minWeight: Int, limit: Int): [SeparationRing!]!
func NewSchema(provider Provider, opts ...SchemaOption) (graphql.Schema, error) {
	o := schemaOptions{limits: DefaultLimitConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidateLimitConfig(&o.limits); err != nil {
		return graphql.Schema{}, err
	}
	if o.finder == nil {
		o.finder = algorithms.NewFinder(algorithms.WithLogger(logging.DefaultLogger()))
	}

	actorType := newActorType(&o.limits)
	statsType := newStatsType()
	pathType := newPathResultType(actorType)
	ringType := newRingType(actorType)

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"actor": &graphql.Field{
				Type: actorType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g := provider.Graph()
					a, ok := g.Actor(p.Args["id"].(int))
					if !ok {
						return nil, nil
					}
					return actorNode{Actor: a, g: g}, nil
				},
			},
			"actorByName": &graphql.Field{
				Type: actorType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g := provider.Graph()
					a, ok := g.ActorByName(p.Args["name"].(string))
					if !ok {
						return nil, nil
					}
					return actorNode{Actor: a, g: g}, nil
				},
			},
			"searchActors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(actorType))),
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: -1},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					g := provider.Graph()
					matches := g.SearchActorsByName(p.Args["name"].(string))
					limit := applyLimit(p.Args["limit"].(int), &o.limits)
					if len(matches) > limit {
						matches = matches[:limit]
					}
					out := make([]actorNode, len(matches))
					for i, a := range matches {
						out[i] = actorNode{Actor: a, g: g}
					}
					return out, nil
				},
			},
			"stats": &graphql.Field{
				Type: graphql.NewNonNull(statsType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return provider.Graph().Stats(), nil
				},
			},
			"shortestPath":  pathField(pathType, provider, o.finder, algorithms.AlgorithmBFS),
			"strongestPath": pathField(pathType, provider, o.finder, algorithms.AlgorithmDijkstra),
			"neighborhood":  neighborhoodField(ringType, provider, &o.limits),
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

func pathField(pathType *graphql.Object, provider Provider, finder *algorithms.Finder, algorithm string) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(pathType),
		Args: graphql.FieldConfigArgument{
			"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			g := provider.Graph()
			res, err := finder.Find(p.Context, algorithm, g, p.Args["from"].(int), p.Args["to"].(int))
			if err != nil {
				return nil, err
			}
			return pathNode{PathResult: res, g: g}, nil
		},
	}
}

func neighborhoodField(ringType *graphql.Object, provider Provider, limits *LimitConfig) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(ringType))),
		Args: graphql.FieldConfigArgument{
			"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"maxHops":   &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 2},
			"minWeight": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
			"limit":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: -1},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			g := provider.Graph()
			res, err := algorithms.Neighborhood(p.Context, g, p.Args["id"].(int), algorithms.NeighborhoodOptions{
				MaxHops:    p.Args["maxHops"].(int),
				MinWeight:  p.Args["minWeight"].(int),
				MaxResults: applyLimit(p.Args["limit"].(int), limits),
			})
			if err != nil {
				return nil, err
			}

			rings := make([]ringNode, 0, len(res.ByHop))
			for hop := 1; hop <= len(res.ByHop); hop++ {
				ids := res.ByHop[hop]
				ring := ringNode{hops: hop, actors: make([]actorNode, 0, len(ids))}
				for _, id := range ids {
					a, _ := g.Actor(id)
					ring.actors = append(ring.actors, actorNode{Actor: a, g: g})
				}
				rings = append(rings, ring)
			}
			return rings, nil
		},
	}
}
