// This file declares the Edge and Graph types, construction options,
// and the package's sentinel errors.

package graph

import (
	"cmp"
	"errors"
)

// ErrVertexNotFound indicates an operation referenced a vertex that is
// not registered in the graph.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// DefaultWeight is the weight assigned by Link when no explicit weight
// is given, matching the classic "unweighted edge counts as 1"
// convention.
const DefaultWeight = 1

// Edge is a single weighted adjacency record From → To.
//
// On an undirected graph every non-loop edge exists as two mirrored
// records, one in each endpoint's sequence, sharing the same Weight.
type Edge[K cmp.Ordered] struct {
	// From is the vertex whose adjacency sequence holds this record.
	From K

	// To is the neighbor vertex.
	To K

	// Weight is the integer cost of traversing the edge.
	Weight int
}

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected fixes the graph's directedness at construction
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// Graph is an adjacency-list weighted multigraph over ordered keys K.
//
// The zero value is not usable; construct with New. A Graph is a
// transient, value-like structure: it holds no locks and is safe for
// any number of concurrent readers, but mutation requires a single
// owner.
type Graph[K cmp.Ordered] struct {
	directed bool

	// adj maps each vertex key to its outgoing adjacency sequence,
	// in insertion order.
	adj map[K][]Edge[K]
}

// New creates an empty Graph with the given options.
// Complexity: O(1).
func New[K cmp.Ordered](opts ...Option) *Graph[K] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		adj:      make(map[K][]Edge[K]),
	}
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph[K]) Directed() bool { return g.directed }
