// Kruskal's algorithm: sorted edge scan with union-find cycle
// rejection.

package mst

import (
	"cmp"
	"sort"

	"github.com/antonkuklin/graphroute/dsu"
	"github.com/antonkuklin/graphroute/graph"
)

// Kruskal computes a minimum spanning tree (forest, when disconnected)
// of an undirected, weighted graph.
//
// Steps:
//  1. Directed or empty graph → empty edge list, zero weight (defined
//     "not applicable" result, not an error).
//  2. Build the mirror-deduplicated edge list in discovery order and
//     sort it by ascending weight. The sort is stable so equal-weight
//     edges keep discovery order, making the result deterministic.
//  3. Assign every vertex a dense index in key order and initialize a
//     fresh union-find partition over that index space.
//  4. Scan sorted edges; admit each edge whose endpoints have different
//     representatives, merging their sets and accumulating the weight.
//
// The result has exactly V − C edges, C being the number of connected
// components.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Kruskal[K cmp.Ordered](g *graph.Graph[K]) ([]graph.Edge[K], int) {
	mstEdges := []graph.Edge[K]{}
	if g == nil || g.Directed() || g.VertexCount() == 0 {
		return mstEdges, 0
	}

	edges := collectEdges(g)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	vertices := g.Vertices()
	index := denseIndex(vertices)
	sets := dsu.New(len(vertices))

	var total int
	for _, c := range edges {
		// Union reports false for cycle-forming edges.
		if sets.Union(index[c.from], index[c.to]) {
			total += c.weight
			mstEdges = append(mstEdges, graph.Edge[K]{From: c.from, To: c.to, Weight: c.weight})

			if len(mstEdges) == len(vertices)-1 {
				break // spanning tree complete
			}
		}
	}

	return mstEdges, total
}
