// Package dijkstra implements Dijkstra's single-pair shortest-path
// algorithm on weighted graphs.
//
// ShortestPath computes the minimum-cost path between two vertices of a
// graph.Graph with non-negative integer edge weights, on directed and
// undirected graphs alike. Negative weights are an algorithm
// correctness assumption, not runtime-checked; supplying them yields
// undefined results, as in classic Dijkstra.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V pops from the heap.
//   - Each edge relaxation may push a fresh entry: up to E pushes.
//   - Every heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the distance and parent maps.
//   - O(E) worst case for heap entries under lazy decrease-key.
//
// Implementation notes:
//
//   - Lazy decrease-key: improving a vertex's distance pushes a
//     duplicate heap entry instead of rewriting the old one; a popped
//     entry whose recorded distance exceeds the current best is stale
//     and discarded.
//   - Distances are tracked as float64 internally (+Inf marks
//     unreachable); the returned total is the truncated integer value.
//   - An unreachable target is not an error: the result is an empty
//     path with the sentinel cost CostUnreachable (-1).
//   - An unregistered source or target is an explicit
//     ErrVertexNotFound, never a silently inserted phantom vertex.
package dijkstra
