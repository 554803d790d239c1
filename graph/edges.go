// File: edges.go
// Role: edge mutation and adjacency queries.
//
// Invariants:
//   - AddEdge inserts missing endpoints as vertices.
//   - Undirected non-loop edges are stored as two mirrored records;
//     self-loops are stored once.
//   - RemoveEdge removes all parallel copies, not just one.

package graph

import (
	"fmt"
	"slices"
	"strings"
)

// AddEdge stores the edge (u, v, weight), inserting u and v as vertices
// if absent. On an undirected graph the mirror record (v, u, weight) is
// stored as well unless u == v. Parallel edges accumulate: no
// deduplication happens on insert.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K, weight int) {
	g.AddVertex(u)
	g.AddVertex(v)

	g.adj[u] = append(g.adj[u], Edge[K]{From: u, To: v, Weight: weight})

	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge[K]{From: v, To: u, Weight: weight})
	}
}

// Link stores the edge (u, v) with DefaultWeight. Shorthand for the
// common unit-weight case.
func (g *Graph[K]) Link(u, v K) {
	g.AddEdge(u, v, DefaultWeight)
}

// RemoveEdge removes every edge from u to v currently stored, and
// symmetrically every edge from v to u when the graph is undirected.
// Removing a non-existent edge or endpoint is a no-op.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph[K]) RemoveEdge(u, v K) {
	if edges, ok := g.adj[u]; ok {
		g.adj[u] = slices.DeleteFunc(edges, func(e Edge[K]) bool { return e.To == v })
	}

	if !g.directed && u != v {
		if edges, ok := g.adj[v]; ok {
			g.adj[v] = slices.DeleteFunc(edges, func(e Edge[K]) bool { return e.To == u })
		}
	}
}

// Neighbors returns a copy of v's adjacency sequence in insertion
// order. Returns ErrVertexNotFound when v is not registered.
// Complexity: O(deg(v)).
func (g *Graph[K]) Neighbors(v K) ([]Edge[K], error) {
	edges, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return slices.Clone(edges), nil
}

// EdgeCount returns the number of logical edges: mirrored records of an
// undirected edge count once, self-loops count once.
// Complexity: O(V).
func (g *Graph[K]) EdgeCount() int {
	var records, loops int
	for v, edges := range g.adj {
		records += len(edges)
		for _, e := range edges {
			if e.To == v {
				loops++
			}
		}
	}
	if g.directed {
		return records
	}

	// Undirected: every non-loop edge is stored twice, loops once.
	return (records + loops) / 2
}

// AdjacencyList returns a deep copy of the adjacency structure, keyed
// by vertex. Mutating the copy does not affect the graph.
// Complexity: O(V + E).
func (g *Graph[K]) AdjacencyList() map[K][]Edge[K] {
	out := make(map[K][]Edge[K], len(g.adj))
	for v, edges := range g.adj {
		out[v] = slices.Clone(edges)
	}

	return out
}

// String renders a diagnostic dump of the adjacency structure, one
// vertex per line in ascending key order:
//
//	1 -> (2, 5) (3, 7)
//
// Intended for debugging only; not part of the functional contract.
func (g *Graph[K]) String() string {
	var b strings.Builder
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "%v ->", v)
		for _, e := range g.adj[v] {
			fmt.Fprintf(&b, " (%v, %d)", e.To, e.Weight)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
