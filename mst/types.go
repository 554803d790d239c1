// This file declares the method selector, configuration options and the
// Compute dispatcher.

package mst

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/antonkuklin/graphroute/graph"
)

// ErrUnknownMethod indicates that Compute was asked for a method name
// other than MethodPrim, MethodKruskal or MethodBoruvka.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodPrim selects Prim's algorithm (grow one tree via a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edge scan plus
// union-find).
const MethodKruskal = "kruskal"

// MethodBoruvka selects Boruvka's algorithm (cheapest-edge contraction
// rounds).
const MethodBoruvka = "boruvka"

// Options configures which MST algorithm Compute runs.
// Use DefaultOptions for the default setup (Kruskal).
type Options struct {
	// Method is one of MethodPrim, MethodKruskal or MethodBoruvka.
	Method string
}

// Option mutates an Options value.
type Option func(*Options)

// WithMethod returns an Option selecting the algorithm by name.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns Options selecting Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the MST algorithm selected by opts and returns the tree
// (or forest) edges with their total weight. Directed and empty graphs
// yield an empty edge list and zero weight, a defined "not applicable"
// success. The only error condition is an unknown method name.
func Compute[K cmp.Ordered](g *graph.Graph[K], opts ...Option) ([]graph.Edge[K], int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodPrim:
		edges, total := Prim(g)

		return edges, total, nil
	case MethodKruskal:
		edges, total := Kruskal(g)

		return edges, total, nil
	case MethodBoruvka:
		edges, total := Boruvka(g)

		return edges, total, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
