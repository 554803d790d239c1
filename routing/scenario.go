// YAML scenario loading. A scenario declares points, the routes between
// them, and obstacles:
//
//	directed: false
//	points:
//	  - {name: Harbor, x: 0, y: 0}
//	  - {name: Hilltop, x: 12, y: 7}
//	routes:
//	  - {from: Harbor, to: Hilltop, distance: 14}
//	obstacles:
//	  - {description: Storm, x: 6, y: 3}

package routing

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk shape of an environment definition.
type Scenario struct {
	Directed  bool            `yaml:"directed"`
	Points    []Point         `yaml:"points"`
	Routes    []ScenarioRoute `yaml:"routes"`
	Obstacles []Obstacle      `yaml:"obstacles"`
}

// ScenarioRoute references points by name.
type ScenarioRoute struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// LoadScenario decodes a YAML scenario and builds the Environment it
// describes. Every route endpoint must name a declared point;
// violations return ErrUnknownPoint.
func LoadScenario(r io.Reader) (*Environment, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("routing: decode scenario: %w", err)
	}

	return sc.Environment()
}

// Environment materializes the scenario, resolving route endpoints
// against the declared points.
func (sc *Scenario) Environment() (*Environment, error) {
	points := make(map[string]Point, len(sc.Points))
	for _, p := range sc.Points {
		points[p.Name] = p
	}

	env := NewEnvironment()
	if sc.Directed {
		env = NewEnvironment(WithDirectedRoutes())
	}

	for _, r := range sc.Routes {
		start, ok := points[r.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, r.From)
		}
		dest, ok := points[r.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, r.To)
		}
		env.AddRoute(Route{Start: start, Destination: dest, Distance: r.Distance})
	}

	for _, o := range sc.Obstacles {
		env.AddObstacle(o)
	}

	return env, nil
}
