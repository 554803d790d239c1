package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/antonkuklin/graphroute/graph"
)

// ShortestPath computes the minimum-cost path from source to target and
// its total cost. It operates on directed and undirected graphs;
// weights must be non-negative.
//
// Returns:
//
//   - path:  vertex sequence from source to target, inclusive. Empty
//     when target is unreachable; [source] when source == target.
//   - total: truncated integer sum of edge weights along the path, or
//     CostUnreachable (-1) when no path exists.
//   - err:   ErrNilGraph, or ErrVertexNotFound (wrapped with the
//     offending key) when source or target is unregistered.
//
// Steps:
//  1. Validate the graph and both endpoints.
//  2. Initialize every known vertex's distance to +Inf, the source to
//     0 with itself as parent, and seed the heap with the source.
//  3. Relaxation loop: pop the minimum entry; skip it when stale (its
//     recorded distance exceeds the vertex's current best — the lazy
//     decrease-key discard); otherwise relax every outgoing edge,
//     updating distance and parent and pushing improved entries.
//  4. If the target's distance is still +Inf, report unreachable.
//     Otherwise walk parent pointers backward from target to source and
//     reverse.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath[K cmp.Ordered](g *graph.Graph[K], source, target K) ([]K, int, error) {
	// 1. Validation: the reference behavior of querying unknown
	// vertices was undefined; here it is an explicit error.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, target)
	}

	// 2. Every known vertex starts unreachable; the source is its own
	// parent, which terminates the reconstruction walk.
	vertices := g.Vertices()
	dist := make(map[K]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	parent := make(map[K]K, len(vertices))
	dist[source] = 0
	parent[source] = source

	pq := &nodeHeap[K]{}
	heap.Init(pq)
	heap.Push(pq, nodeItem[K]{id: source, dist: 0})

	// 3. Relaxation loop.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem[K])
		u := item.id

		// Stale entry left behind by an earlier relaxation; discard.
		if item.dist > dist[u] {
			continue
		}

		neighbors, _ := g.Neighbors(u)
		for _, e := range neighbors {
			next := dist[u] + float64(e.Weight)
			if next < dist[e.To] {
				dist[e.To] = next
				parent[e.To] = u
				heap.Push(pq, nodeItem[K]{id: e.To, dist: next})
			}
		}
	}

	// 4. Unreachable target: empty path plus the sentinel cost.
	if math.IsInf(dist[target], 1) {
		return []K{}, CostUnreachable, nil
	}

	// Reconstruct by walking parents backward, then reverse.
	path := []K{}
	for v := target; v != source; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, source)
	slices.Reverse(path)

	return path, int(dist[target]), nil
}
