// This file holds the working structures shared by the three
// algorithms: the candidate edge record, the mirror-deduplicated edge
// list, the dense vertex re-indexing, and Prim's candidate min-heap.

package mst

import (
	"cmp"

	"github.com/antonkuklin/graphroute/graph"
)

// candidate is an MST candidate edge, kept as plain values so the
// algorithms never touch the graph's own storage.
type candidate[K cmp.Ordered] struct {
	weight   int
	from, to K
}

type pair[K cmp.Ordered] struct{ u, v K }

// collectEdges builds the undirected candidate edge list in discovery
// order: vertices ascending by key, then each adjacency sequence in
// insertion order. Self-loops are skipped, and a record is skipped when
// its mirror (v, u) was already recorded, so each undirected edge
// appears once. Parallel edges between the same ordered pair all
// survive; the sorted scan later prefers the cheapest.
func collectEdges[K cmp.Ordered](g *graph.Graph[K]) []candidate[K] {
	var edges []candidate[K]
	seen := make(map[pair[K]]struct{})

	for _, u := range g.Vertices() {
		neighbors, _ := g.Neighbors(u)
		for _, e := range neighbors {
			if e.From == e.To {
				continue // self-loops cannot be part of a spanning tree
			}
			if _, ok := seen[pair[K]{e.To, e.From}]; ok {
				continue // mirror of an already recorded edge
			}
			edges = append(edges, candidate[K]{weight: e.Weight, from: e.From, to: e.To})
			seen[pair[K]{e.From, e.To}] = struct{}{}
		}
	}

	return edges
}

// denseIndex maps each vertex key to a contiguous index 0..V-1 in
// ascending key order. The mapping is rebuilt per invocation because
// the vertex set may change between calls.
func denseIndex[K cmp.Ordered](vertices []K) map[K]int {
	index := make(map[K]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	return index
}

// candidateHeap is a min-heap of candidate edges, ordered by weight,
// then by endpoint pair so equal-weight candidates pop in a stable,
// deterministic order.
type candidateHeap[K cmp.Ordered] []candidate[K]

func (h candidateHeap[K]) Len() int { return len(h) }

func (h candidateHeap[K]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	if h[i].from != h[j].from {
		return h[i].from < h[j].from
	}

	return h[i].to < h[j].to
}

func (h candidateHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a candidate; called by heap.Push.
func (h *candidateHeap[K]) Push(x interface{}) { *h = append(*h, x.(candidate[K])) }

// Pop removes and returns the last element after heap adjustments;
// called by heap.Pop.
func (h *candidateHeap[K]) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}
