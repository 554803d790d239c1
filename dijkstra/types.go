// This file declares the sentinel errors, the unreachable-cost
// sentinel, and the lazy priority queue used by ShortestPath.

package dijkstra

import (
	"cmp"
	"errors"
)

// CostUnreachable is the sentinel total cost returned together with an
// empty path when no path exists between two registered vertices.
const CostUnreachable = -1

var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex is
	// not registered in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// nodeItem is a heap entry: a vertex and the distance it was pushed
// with. Under lazy decrease-key the same vertex may appear several
// times with decreasing distances; only the freshest entry survives the
// stale check at pop time.
type nodeItem[K cmp.Ordered] struct {
	id   K
	dist float64
}

// nodeHeap is a min-heap of nodeItem ordered by distance, with the
// vertex key as tie-break so equal-distance pops are deterministic.
type nodeHeap[K cmp.Ordered] []nodeItem[K]

func (h nodeHeap[K]) Len() int { return len(h) }

func (h nodeHeap[K]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id < h[j].id
}

func (h nodeHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry; called by heap.Push.
func (h *nodeHeap[K]) Push(x interface{}) { *h = append(*h, x.(nodeItem[K])) }

// Pop removes and returns the last element after heap adjustments;
// called by heap.Pop.
func (h *nodeHeap[K]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
