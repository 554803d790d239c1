// This file declares the Vehicle interface and the bookkeeping bases
// shared by every concrete vehicle: speed/position tracking and the
// fuel tank state machine.

package routing

import "fmt"

// Vehicle is anything that can travel the environment. Implementations
// keep their own speed, position and fuel arithmetic; Move returns the
// distance actually covered, which is less than requested when the tank
// runs short.
type Vehicle interface {
	// Name returns the vehicle's display name.
	Name() string

	// Speed returns the current speed in km/h.
	Speed() float64

	// Position returns the distance traveled so far in km.
	Position() float64

	// Accelerate raises the speed by delta km/h.
	Accelerate(delta float64)

	// Brake lowers the speed by delta km/h, clamping at zero.
	Brake(delta float64)

	// HasFuel reports whether the tank holds any fuel.
	HasFuel() bool

	// Fuel returns the current fuel level in liters.
	Fuel() float64

	// Refuel sets the fuel level, clamped to [0, capacity].
	Refuel(liters float64)

	// Move advances the vehicle by up to km kilometers, consuming fuel.
	// Returns the distance actually covered; ErrNoFuel when the tank is
	// already empty.
	Move(km float64) (float64, error)
}

// motion is the speed and position bookkeeping shared by all vehicles.
type motion struct {
	name     string
	speed    float64
	position float64
}

func (m *motion) Name() string      { return m.name }
func (m *motion) Speed() float64    { return m.speed }
func (m *motion) Position() float64 { return m.position }

func (m *motion) Accelerate(delta float64) { m.speed += delta }

func (m *motion) Brake(delta float64) {
	m.speed -= delta
	if m.speed < 0 {
		m.speed = 0
	}
}

// advance moves the position forward; callers settle fuel first.
func (m *motion) advance(km float64) { m.position += km }

// tank is the fuel state machine: a capacity, a level, and a
// consumption rate in liters per km. Vehicles start with a full tank.
type tank struct {
	capacity float64
	level    float64
	rate     float64
}

func newTank(capacity, rate float64) tank {
	return tank{capacity: capacity, level: capacity, rate: rate}
}

func (t *tank) HasFuel() bool { return t.level > 0 }
func (t *tank) Fuel() float64 { return t.level }

func (t *tank) Refuel(liters float64) {
	t.level = min(max(liters, 0), t.capacity)
}

// burn consumes fuel for a move of km kilometers, truncating the move
// to what the remaining fuel covers. Returns the feasible distance.
func (t *tank) burn(km float64) float64 {
	if t.rate <= 0 {
		return km
	}
	if need := km * t.rate; need > t.level {
		km = t.level / t.rate
	}
	t.level -= km * t.rate

	return km
}

// move is the shared Move implementation: reject an empty tank, then
// burn fuel and advance by the feasible distance.
func move(m *motion, t *tank, km float64) (float64, error) {
	if !t.HasFuel() {
		return 0, fmt.Errorf("%w: %s", ErrNoFuel, m.name)
	}
	covered := t.burn(km)
	m.advance(covered)

	return covered, nil
}
