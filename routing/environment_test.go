package routing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonkuklin/graphroute/dijkstra"
	"github.com/antonkuklin/graphroute/routing"
)

func point(name string) routing.Point {
	return routing.Point{Name: name}
}

// buildCoastalEnv builds a small three-point environment:
//
//	Harbor —10— Village —20— Hilltop, Harbor —45— Hilltop
func buildCoastalEnv() *routing.Environment {
	env := routing.NewEnvironment()
	env.AddRoute(routing.Route{Start: point("Harbor"), Destination: point("Village"), Distance: 10})
	env.AddRoute(routing.Route{Start: point("Village"), Destination: point("Hilltop"), Distance: 20})
	env.AddRoute(routing.Route{Start: point("Harbor"), Destination: point("Hilltop"), Distance: 45})

	return env
}

// TestEnvironment_GraphProjection verifies the graph built from routes.
func TestEnvironment_GraphProjection(t *testing.T) {
	g := buildCoastalEnv().Graph()

	assert.False(t, g.Directed())
	assert.Equal(t, []string{"Harbor", "Hilltop", "Village"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
}

// TestEnvironment_DirectedRoutes verifies the one-way option.
func TestEnvironment_DirectedRoutes(t *testing.T) {
	env := routing.NewEnvironment(routing.WithDirectedRoutes())
	env.AddRoute(routing.Route{Start: point("A"), Destination: point("B"), Distance: 5})

	g := env.Graph()
	require.True(t, g.Directed())

	back, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, back)
}

// TestFindOptimalRoute_PicksCheaperDetour: the two-hop route (30 km)
// beats the direct 45 km one.
func TestFindOptimalRoute_PicksCheaperDetour(t *testing.T) {
	car := routing.NewCar("sedan", 90, 4, "petrol", 50, 0.1)

	path, total, err := routing.FindOptimalRoute(buildCoastalEnv(), "Harbor", "Hilltop", car)

	require.NoError(t, err)
	assert.Equal(t, []string{"Harbor", "Village", "Hilltop"}, path)
	assert.Equal(t, 30, total)
}

// TestFindOptimalRoute_NilVehicle plans without a vehicle.
func TestFindOptimalRoute_NilVehicle(t *testing.T) {
	path, total, err := routing.FindOptimalRoute(buildCoastalEnv(), "Harbor", "Village", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Harbor", "Village"}, path)
	assert.Equal(t, 10, total)
}

// TestFindOptimalRoute_EmptyTank rejects a vehicle that cannot start.
func TestFindOptimalRoute_EmptyTank(t *testing.T) {
	car := routing.NewCar("sedan", 90, 4, "petrol", 50, 0.1)
	car.Refuel(0)

	_, _, err := routing.FindOptimalRoute(buildCoastalEnv(), "Harbor", "Hilltop", car)

	assert.ErrorIs(t, err, routing.ErrNoFuel)
}

// TestFindOptimalRoute_Unreachable propagates the core's sentinel
// result.
func TestFindOptimalRoute_Unreachable(t *testing.T) {
	env := buildCoastalEnv()
	env.AddRoute(routing.Route{Start: point("Island"), Destination: point("Reef"), Distance: 3})

	path, total, err := routing.FindOptimalRoute(env, "Harbor", "Reef", nil)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, dijkstra.CostUnreachable, total)
}

// TestFindOptimalRoute_UnknownPoint surfaces the core's vertex
// validation.
func TestFindOptimalRoute_UnknownPoint(t *testing.T) {
	_, _, err := routing.FindOptimalRoute(buildCoastalEnv(), "Harbor", "Atlantis", nil)

	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestMoveVehicle_WalksWholeRoute verifies hop-by-hop movement and fuel
// settlement along a computed path.
func TestMoveVehicle_WalksWholeRoute(t *testing.T) {
	env := buildCoastalEnv()
	car := routing.NewCar("sedan", 90, 4, "petrol", 50, 0.1)

	path, _, err := routing.FindOptimalRoute(env, "Harbor", "Hilltop", car)
	require.NoError(t, err)

	covered, err := routing.MoveVehicle(car, path, env.Graph())

	require.NoError(t, err)
	assert.Equal(t, 30.0, covered)
	assert.Equal(t, 30.0, car.Position())
	assert.InDelta(t, 47.0, car.Fuel(), 1e-9)
}

// TestMoveVehicle_StrandedMidRoute verifies the ErrNoFuel wrap when the
// tank empties between stops; the covered distance is still reported.
func TestMoveVehicle_StrandedMidRoute(t *testing.T) {
	env := buildCoastalEnv()
	car := routing.NewCar("sedan", 90, 4, "petrol", 1.5, 0.1) // 15 km of range

	covered, err := routing.MoveVehicle(car, []string{"Harbor", "Village", "Hilltop"}, env.Graph())

	assert.ErrorIs(t, err, routing.ErrNoFuel)
	assert.InDelta(t, 15.0, covered, 1e-9)
}

// TestMoveVehicle_BrokenRoute verifies ErrRouteBroken on a path with a
// missing hop.
func TestMoveVehicle_BrokenRoute(t *testing.T) {
	env := buildCoastalEnv()
	car := routing.NewCar("sedan", 90, 4, "petrol", 50, 0.1)

	_, err := routing.MoveVehicle(car, []string{"Village", "Harbor", "Atlantis"}, env.Graph())

	assert.ErrorIs(t, err, routing.ErrRouteBroken)
}

// TestEnvironment_Describe spot-checks the overview dump.
func TestEnvironment_Describe(t *testing.T) {
	env := buildCoastalEnv()
	env.AddObstacle(routing.Obstacle{Description: "Storm", X: 6, Y: 3})

	var b strings.Builder
	env.Describe(&b)

	out := b.String()
	assert.Contains(t, out, "Harbor to Village (10 km)")
	assert.Contains(t, out, "Storm at (6, 3)")
}
