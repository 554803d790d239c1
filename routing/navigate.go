// Navigation over the environment graph: both operations the routing
// layer is allowed to ask of the core — compute a path between two
// nodes, and walk a vehicle along a rendered node sequence.

package routing

import (
	"fmt"

	"github.com/antonkuklin/graphroute/dijkstra"
	"github.com/antonkuklin/graphroute/graph"
)

// FindOptimalRoute computes the cheapest route between two named points
// for the given vehicle. The vehicle is only consulted for fuel: a
// vehicle with an empty tank cannot start; pass nil to plan without
// one.
//
// Returns the point sequence and total distance in km; an unreachable
// destination yields an empty path and dijkstra.CostUnreachable, not an
// error.
func FindOptimalRoute(env *Environment, from, to string, v Vehicle) ([]string, int, error) {
	if v != nil && !v.HasFuel() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoFuel, v.Name())
	}

	return dijkstra.ShortestPath(env.Graph(), from, to)
}

// MoveVehicle walks the vehicle along the path hop by hop, consuming
// fuel for each hop's distance. Used to replay a path produced by
// FindOptimalRoute against the same environment graph.
//
// Returns the total distance actually covered. ErrRouteBroken when two
// consecutive stops have no connecting edge; ErrNoFuel when the tank
// empties mid-route (the covered distance so far is still returned).
func MoveVehicle(v Vehicle, path []string, g *graph.Graph[string]) (float64, error) {
	var covered float64
	for i := 1; i < len(path); i++ {
		hop, err := hopDistance(g, path[i-1], path[i])
		if err != nil {
			return covered, err
		}

		step, err := v.Move(hop)
		covered += step
		if err != nil {
			return covered, err
		}
		if step < hop {
			return covered, fmt.Errorf("%w: %s stranded after %g km", ErrNoFuel, v.Name(), covered)
		}
	}

	return covered, nil
}

// hopDistance returns the cheapest stored edge weight from u to v, in
// km.
func hopDistance(g *graph.Graph[string], u, v string) (float64, error) {
	edges, err := g.Neighbors(u)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrRouteBroken, u)
	}

	best := -1
	for _, e := range edges {
		if e.To == v && (best == -1 || e.Weight < best) {
			best = e.Weight
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("%w: %s -> %s", ErrRouteBroken, u, v)
	}

	return float64(best), nil
}
