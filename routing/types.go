// This file declares the map-object value types, the Environment
// aggregate, and the package's sentinel errors.

package routing

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/antonkuklin/graphroute/graph"
)

var (
	// ErrNoFuel indicates a vehicle cannot move because its tank is
	// empty.
	ErrNoFuel = errors.New("routing: out of fuel")

	// ErrRouteBroken indicates a path references consecutive stops with
	// no connecting edge in the environment graph.
	ErrRouteBroken = errors.New("routing: no edge between consecutive stops")

	// ErrUnknownPoint indicates a scenario route references a point
	// that was never declared.
	ErrUnknownPoint = errors.New("routing: unknown point")
)

// Point is a named location on the map.
type Point struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Info renders a one-line description.
func (p Point) Info() string { return "Point: " + p.Name }

// Obstacle marks an impediment (mountain, storm, traffic jam) at a map
// position. Obstacles are descriptive only; they do not affect route
// computation.
type Obstacle struct {
	Description string  `yaml:"description"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
}

// Info renders a one-line description.
func (o Obstacle) Info() string { return "Obstacle: " + o.Description }

// Route connects two points over a distance in kilometers.
type Route struct {
	Start       Point
	Destination Point
	Distance    float64
}

// Environment aggregates the routes and obstacles of a map. The zero
// value is an empty, usable environment with undirected routes; use
// NewEnvironment(WithDirectedRoutes()) for one-way routes.
type Environment struct {
	routes    []Route
	obstacles []Obstacle
	directed  bool
}

// EnvOption configures an Environment before creation.
type EnvOption func(*Environment)

// WithDirectedRoutes makes every route one-way (start → destination).
func WithDirectedRoutes() EnvOption {
	return func(e *Environment) { e.directed = true }
}

// NewEnvironment creates an empty Environment with the given options.
func NewEnvironment(opts ...EnvOption) *Environment {
	e := &Environment{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// AddRoute appends a route.
func (e *Environment) AddRoute(r Route) { e.routes = append(e.routes, r) }

// AddObstacle appends an obstacle.
func (e *Environment) AddObstacle(o Obstacle) { e.obstacles = append(e.obstacles, o) }

// Routes returns the registered routes in insertion order.
func (e *Environment) Routes() []Route { return e.routes }

// Obstacles returns the registered obstacles in insertion order.
func (e *Environment) Obstacles() []Obstacle { return e.obstacles }

// Graph projects the environment onto a weighted graph keyed by point
// name, one edge per route with the distance rounded to the nearest
// kilometer. The projection is rebuilt on every call, so it always
// reflects the current route set.
func (e *Environment) Graph() *graph.Graph[string] {
	g := graph.New[string](graph.WithDirected(e.directed))
	for _, r := range e.routes {
		g.AddEdge(r.Start.Name, r.Destination.Name, int(math.Round(r.Distance)))
	}

	return g
}

// Describe writes a human-readable overview of the environment.
// Diagnostic output only, not part of the functional contract.
func (e *Environment) Describe(w io.Writer) {
	fmt.Fprintln(w, "Environment overview")

	fmt.Fprintln(w, "\nRoutes:")
	for _, r := range e.routes {
		fmt.Fprintf(w, "- %s to %s (%g km)\n", r.Start.Name, r.Destination.Name, r.Distance)
	}

	fmt.Fprintln(w, "\nObstacles:")
	for _, o := range e.obstacles {
		fmt.Fprintf(w, "- %s at (%g, %g)\n", o.Description, o.X, o.Y)
	}
}
