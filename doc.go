// Package graphroute is an in-memory toolkit for weighted graphs:
// build an adjacency-list graph over any ordered key type, compute
// minimum spanning trees three different ways, and find shortest paths.
//
// What is inside?
//
//	graph/    — generic adjacency-list multigraph (directed or undirected)
//	dsu/      — disjoint-set union (union-find) over dense integer indices
//	mst/      — minimum spanning trees: Prim, Kruskal, Boruvka
//	dijkstra/ — single-pair shortest path with lazy decrease-key
//	routing/  — points, routes, obstacles and vehicles on top of the core
//
// Why graphroute?
//
//   - Deterministic – vertex enumeration is sorted by key, ties break
//     predictably, outputs are reproducible run to run
//   - Generic – vertex keys are any cmp.Ordered type, no string coercion
//   - Pure Go core – the algorithm packages depend only on the standard
//     library
//
// Quick example:
//
//	g := graph.New[int]()
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(2, 3, 1)
//	g.AddEdge(1, 3, 3)
//	edges, total := mst.Kruskal(g) // total == 3
//
// The cmd/graphroute binary loads YAML scenarios and exposes the same
// operations from the command line.
package graphroute
