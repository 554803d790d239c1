package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonkuklin/graphroute/dijkstra"
	"github.com/antonkuklin/graphroute/graph"
)

// buildDirectedDiamond constructs the canonical directed fixture:
//
//	1→2 (2), 2→3 (3), 1→3 (10), 3→4 (1)
//
// The shortest path 1→4 is [1 2 3 4] with total cost 6.
func buildDirectedDiamond() *graph.Graph[int] {
	g := graph.New[int](graph.WithDirected(true))
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(1, 3, 10)
	g.AddEdge(3, 4, 1)

	return g
}

// TestShortestPath_DirectedDiamond checks the canonical directed
// scenario.
func TestShortestPath_DirectedDiamond(t *testing.T) {
	path, total, err := dijkstra.ShortestPath(buildDirectedDiamond(), 1, 4)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, path)
	assert.Equal(t, 6, total)
}

// TestShortestPath_CostMatchesEdgeSum verifies that the returned total
// equals the sum of consecutive edge weights along the returned path.
func TestShortestPath_CostMatchesEdgeSum(t *testing.T) {
	g := buildDirectedDiamond()

	path, total, err := dijkstra.ShortestPath(g, 1, 4)
	require.NoError(t, err)
	require.True(t, len(path) >= 2)

	var sum int
	for i := 1; i < len(path); i++ {
		edges, err := g.Neighbors(path[i-1])
		require.NoError(t, err)

		best := -1
		for _, e := range edges {
			if e.To == path[i] && (best == -1 || e.Weight < best) {
				best = e.Weight
			}
		}
		require.NotEqual(t, -1, best, "path hops must follow stored edges")
		sum += best
	}
	assert.Equal(t, total, sum)
}

// TestShortestPath_Unreachable: two registered vertices with no
// connecting path yield an empty path and the -1 sentinel, not an
// error.
func TestShortestPath_Unreachable(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	g.AddEdge(1, 2, 5)
	g.AddVertex(3)

	path, total, err := dijkstra.ShortestPath(g, 1, 3)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, dijkstra.CostUnreachable, total)
}

// TestShortestPath_DirectionMatters: a directed edge is not traversable
// backwards.
func TestShortestPath_DirectionMatters(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	g.AddEdge(1, 2, 5)

	path, total, err := dijkstra.ShortestPath(g, 2, 1)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, dijkstra.CostUnreachable, total)
}

// TestShortestPath_Undirected: mirror records make both directions
// traversable.
func TestShortestPath_Undirected(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("B", "C", 6)

	path, total, err := dijkstra.ShortestPath(g, "C", "A")

	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, path)
	assert.Equal(t, 10, total)
}

// TestShortestPath_SourceEqualsTarget: the trivial path is the single
// vertex with zero cost.
func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := graph.New[int]()
	g.AddEdge(1, 2, 3)

	path, total, err := dijkstra.ShortestPath(g, 1, 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)
	assert.Zero(t, total)
}

// TestShortestPath_UnknownVertex: unregistered endpoints are an
// explicit error, never a phantom vertex.
func TestShortestPath_UnknownVertex(t *testing.T) {
	g := graph.New[int]()
	g.AddEdge(1, 2, 3)

	_, _, err := dijkstra.ShortestPath(g, 99, 2)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, 1, 99)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestShortestPath_NilGraph verifies the nil-graph sentinel.
func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath[int](nil, 1, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestShortestPath_ParallelEdgesUseCheapest: the lighter of two
// parallel edges wins.
func TestShortestPath_ParallelEdgesUseCheapest(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	g.AddEdge(1, 2, 9)
	g.AddEdge(1, 2, 4)

	path, total, err := dijkstra.ShortestPath(g, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, path)
	assert.Equal(t, 4, total)
}

// TestShortestPath_AfterRemoveEdge: removing all parallel copies makes
// the route disappear from subsequent queries.
func TestShortestPath_AfterRemoveEdge(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	g.AddEdge(1, 2, 2)
	g.AddEdge(1, 2, 7)
	g.AddEdge(2, 3, 1)

	_, total, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	g.RemoveEdge(1, 2)

	path, total, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, dijkstra.CostUnreachable, total)
}

// TestShortestPath_PrefersCheaperDetour: a longer hop count with lower
// total cost beats the direct edge.
func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "D", 10)
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 2)

	path, total, err := dijkstra.ShortestPath(g, "A", "D")

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	assert.Equal(t, 6, total)
}
