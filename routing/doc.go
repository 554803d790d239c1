// Package routing models a spatial environment — named points, routes
// between them, obstacles — and the vehicles that travel it. It
// consumes the algorithm packages through exactly two operations:
// computing a path between two graph nodes and rendering a sequence of
// nodes.
//
// The types here are deliberately simple data holders and arithmetic
// state machines: an Environment aggregates Routes and Obstacles and
// can project itself onto a graph.Graph keyed by point name; Vehicles
// keep speed, position and fuel bookkeeping, truncating a move when the
// tank cannot cover the requested distance.
//
// Scenarios (points, routes, obstacles) load from YAML via
// LoadScenario, which rejects routes referencing undeclared points.
package routing
