// Boruvka's algorithm: iterative component contraction along each
// component's cheapest outgoing edge.

package mst

import (
	"cmp"

	"github.com/antonkuklin/graphroute/dsu"
	"github.com/antonkuklin/graphroute/graph"
)

// Boruvka computes a minimum spanning tree (forest, when disconnected)
// of an undirected, weighted graph by repeated contraction rounds.
//
// Steps:
//  1. Directed or empty graph → empty edge list, zero weight (defined
//     "not applicable" result, not an error).
//  2. Build the mirror-deduplicated edge list and the dense vertex
//     index, and start with one union-find tree per vertex.
//  3. Each round, scan every edge whose endpoints are still in
//     different components and record it as the cheapest known outgoing
//     edge for both component representatives (strict comparison, so
//     equal-weight ties keep the earliest-discovered edge).
//  4. Merge every component along its recorded cheapest edge,
//     re-checking representatives immediately before committing — an
//     earlier merge this round may already have joined the pair.
//  5. Stop when one tree remains or a full round performs zero merges;
//     the latter indicates disconnection and the remaining components
//     are never joined.
//
// Converges in O(log V) rounds; O(E log V) time, O(V + E) space total.
func Boruvka[K cmp.Ordered](g *graph.Graph[K]) ([]graph.Edge[K], int) {
	mstEdges := []graph.Edge[K]{}
	if g == nil || g.Directed() || g.VertexCount() == 0 {
		return mstEdges, 0
	}

	vertices := g.Vertices()
	edges := collectEdges(g)
	index := denseIndex(vertices)
	sets := dsu.New(len(vertices))

	var total int
	trees := len(vertices)

	for trees > 1 {
		// cheapest[r] is the index into edges of the lightest edge
		// leaving the component represented by r; -1 means none seen.
		cheapest := make([]int, len(vertices))
		for i := range cheapest {
			cheapest[i] = -1
		}

		for i, c := range edges {
			ru := sets.Find(index[c.from])
			rv := sets.Find(index[c.to])
			if ru == rv {
				continue // already merged, edge no longer outgoing
			}
			if cheapest[ru] == -1 || edges[cheapest[ru]].weight > c.weight {
				cheapest[ru] = i
			}
			if cheapest[rv] == -1 || edges[cheapest[rv]].weight > c.weight {
				cheapest[rv] = i
			}
		}

		merged := false
		for _, ei := range cheapest {
			if ei == -1 {
				continue
			}
			c := edges[ei]
			// Union re-checks representatives; a merge earlier this
			// round may already have connected the pair.
			if sets.Union(index[c.from], index[c.to]) {
				total += c.weight
				mstEdges = append(mstEdges, graph.Edge[K]{From: c.from, To: c.to, Weight: c.weight})
				trees--
				merged = true
			}
		}

		if !merged {
			break // disconnected: no component found an outgoing edge
		}
	}

	return mstEdges, total
}
