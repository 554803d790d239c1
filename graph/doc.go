// Package graph provides a generic, adjacency-list weighted multigraph.
//
// A Graph[K] stores, for every vertex key, an ordered sequence of
// outgoing (neighbor, weight) records. The key type K may be any ordered
// type (cmp.Ordered); identity is by value. Directedness is fixed at
// construction via WithDirected and never changes afterwards.
//
// Semantics
//
//   - Multigraph: adding the same (u, v) pair twice stores two parallel
//     edges; nothing is deduplicated on insert.
//   - Mirror insertion: on an undirected graph, AddEdge(u, v, w) with
//     u != v also stores the mirror record (v, u, w). Self-loops are
//     stored once and never mirrored.
//   - RemoveEdge(u, v) removes every parallel edge from u to v, and
//     symmetrically every edge from v to u when the graph is undirected.
//   - RemoveVertex deletes the vertex and strips every other adjacency
//     list of records targeting it, regardless of directedness.
//   - A vertex with an empty neighbor sequence is a valid isolated
//     vertex; missing vertices on removal are a no-op.
//
// Determinism
//
// Vertices() returns keys in ascending order. This ordering is
// load-bearing: it fixes the default starting vertex and the
// tie-breaking iteration order of the MST algorithms, so outputs are
// reproducible run to run.
//
// The store is single-owner: no internal locking is performed, and
// concurrent mutation requires external synchronization.
package graph
