// File: vertices.go
// Role: vertex lifecycle and enumeration.
//
// Determinism: Vertices() returns keys in ascending order; every
// algorithm in this module relies on that enumeration for reproducible
// starting points and tie-breaking.

package graph

import "slices"

// AddVertex registers v as a vertex if absent (idempotent). The new
// vertex starts with an empty adjacency sequence, which is a valid
// isolated vertex.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(v K) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// RemoveVertex deletes v and strips every other vertex's adjacency
// sequence of edges targeting v. Both directions are cleaned regardless
// of directedness: a directed edge into v may originate from any
// vertex. Removing a missing vertex is a no-op.
// Complexity: O(V + E).
func (g *Graph[K]) RemoveVertex(v K) {
	if _, ok := g.adj[v]; !ok {
		return
	}
	delete(g.adj, v)
	for u, edges := range g.adj {
		g.adj[u] = slices.DeleteFunc(edges, func(e Edge[K]) bool { return e.To == v })
	}
}

// HasVertex reports whether v is a registered vertex.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(v K) bool {
	_, ok := g.adj[v]

	return ok
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int { return len(g.adj) }

// Vertices returns all vertex keys in ascending order.
// Complexity: O(V log V).
func (g *Graph[K]) Vertices() []K {
	keys := make([]K, 0, len(g.adj))
	for v := range g.adj {
		keys = append(keys, v)
	}
	slices.Sort(keys)

	return keys
}
