// Prim's algorithm: grow a single tree from the first vertex in key
// order, using a lazy-deletion candidate min-heap.

package mst

import (
	"cmp"
	"container/heap"

	"github.com/antonkuklin/graphroute/graph"
)

// Prim computes a minimum spanning tree of an undirected, weighted
// graph by growing outwards from the first vertex in key order.
//
// Steps:
//  1. Directed or empty graph → empty edge list, zero weight (defined
//     "not applicable" result, not an error).
//  2. Mark the starting vertex in-tree; push its non-loop edges to
//     not-yet-included neighbors as candidates.
//  3. Repeatedly pop the minimum-weight candidate. If its destination
//     is already in the tree, discard it (lazy deletion — stale
//     duplicates are expected and skipped, never removed eagerly).
//     Otherwise admit the edge, mark the destination in-tree,
//     accumulate its weight, and push the new vertex's outgoing
//     candidates.
//  4. Terminate when the heap empties. On a disconnected graph the
//     result spans only the starting component.
//
// Complexity: O(E log V) time, O(V + E) space.
func Prim[K cmp.Ordered](g *graph.Graph[K]) ([]graph.Edge[K], int) {
	mstEdges := []graph.Edge[K]{}
	if g == nil || g.Directed() || g.VertexCount() == 0 {
		return mstEdges, 0
	}

	vertices := g.Vertices()
	start := vertices[0]

	inTree := make(map[K]bool, len(vertices))
	pq := &candidateHeap[K]{}
	heap.Init(pq)

	// Seed the heap with the starting vertex's candidates.
	inTree[start] = true
	pushCandidates(pq, g, start, inTree)

	var total int
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate[K])
		if inTree[c.to] {
			continue // stale entry, destination joined via a cheaper edge
		}

		inTree[c.to] = true
		total += c.weight
		mstEdges = append(mstEdges, graph.Edge[K]{From: c.from, To: c.to, Weight: c.weight})

		pushCandidates(pq, g, c.to, inTree)
	}

	return mstEdges, total
}

// pushCandidates pushes every edge from v to a not-yet-included
// neighbor onto the heap. Self-loops are filtered here as well: v is
// already in-tree, so they could never be admitted anyway.
func pushCandidates[K cmp.Ordered](pq *candidateHeap[K], g *graph.Graph[K], v K, inTree map[K]bool) {
	neighbors, _ := g.Neighbors(v)
	for _, e := range neighbors {
		if !inTree[e.To] {
			heap.Push(pq, candidate[K]{weight: e.Weight, from: v, to: e.To})
		}
	}
}
