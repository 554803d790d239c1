// Package mst provides three independent algorithms for computing a
// minimum spanning tree (or forest) of an undirected, weighted
// graph.Graph: Prim, Kruskal and Boruvka.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), an MST is a subset
//     T ⊆ E that connects every vertex of its component without cycles
//     at minimum total weight. All three algorithms produce the same
//     total weight on the same graph; their edge discovery order
//     differs, which is why each is exposed separately.
//
// Algorithms
//
//   - Prim(g): grow a single tree from the first vertex in key order,
//     using a min-heap of candidate edges with lazy deletion — stale
//     entries stay in the heap and are discarded at pop time when their
//     destination is already in the tree.
//     Time O(E log V), space O(V + E).
//
//   - Kruskal(g): build a mirror-deduplicated edge list, sort it by
//     ascending weight with a stable sort (ties keep discovery order:
//     ascending source key, then adjacency insertion order), then scan
//     with a union-find structure admitting every edge whose endpoints
//     lie in different components.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Boruvka(g): start with one tree per vertex; each round records the
//     cheapest outgoing edge per component and merges along them,
//     re-checking representatives immediately before every merge. Stops
//     when one tree remains or a round performs no merge (disconnected
//     input). Converges in O(log V) rounds.
//
// Not-applicable inputs
//
// Requesting an MST of a directed or empty graph is a defined success
// returning an empty edge list and zero weight, not an error. On a
// disconnected graph all three return a minimum spanning forest with
// V − C edges (C = number of components). Self-loops never appear in
// any result.
//
// Determinism
//
// Vertex enumeration is sorted by key, edge discovery order is fixed,
// equal-weight candidates break ties by discovery order, and Prim's heap
// orders equal-weight candidates by endpoint pair. Outputs are therefore
// reproducible run to run.
//
// Compute dispatches to one of the three by name for callers that select
// the algorithm at runtime.
package mst
