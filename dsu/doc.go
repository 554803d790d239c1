// Package dsu implements a disjoint-set union (union-find) structure
// over dense integer indices 0..n-1.
//
// The structure tracks a partition of n elements into disjoint sets,
// supporting near-constant "same set?" queries and merges through path
// compression and union by rank. Callers working with arbitrary vertex
// keys are expected to build a dense re-indexing (key → contiguous int)
// before constructing a DSU; both MST consumers in this module do so
// fresh per invocation.
//
// A DSU is not safe for concurrent use; its intended lifetime is a
// single algorithm run.
package dsu
