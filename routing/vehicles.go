// Concrete vehicles: Car and Train on land, Yacht on water, Helicopter
// in the air. All are thin shells over the motion and tank bases plus a
// few descriptive fields.

package routing

// Car is a land vehicle with a wheel count and a named fuel type.
type Car struct {
	motion
	tank
	wheels   int
	fuelType string
}

// NewCar builds a Car with a full tank.
// rate is fuel consumption in liters per km.
func NewCar(name string, speed float64, wheels int, fuelType string, capacity, rate float64) *Car {
	return &Car{
		motion:   motion{name: name, speed: speed},
		tank:     newTank(capacity, rate),
		wheels:   wheels,
		fuelType: fuelType,
	}
}

// Wheels returns the wheel count.
func (c *Car) Wheels() int { return c.wheels }

// FuelType returns the fuel type name.
func (c *Car) FuelType() string { return c.fuelType }

// Move advances the car, consuming fuel; partial when the tank runs
// short.
func (c *Car) Move(km float64) (float64, error) { return move(&c.motion, &c.tank, km) }

// Train is a land vehicle pulling a number of carriages.
type Train struct {
	motion
	tank
	carriages int
}

// NewTrain builds a Train with a full tank.
func NewTrain(name string, speed float64, carriages int, capacity, rate float64) *Train {
	return &Train{
		motion:    motion{name: name, speed: speed},
		tank:      newTank(capacity, rate),
		carriages: carriages,
	}
}

// Carriages returns the carriage count.
func (t *Train) Carriages() int { return t.carriages }

// Move advances the train, consuming fuel; partial when the tank runs
// short.
func (t *Train) Move(km float64) (float64, error) { return move(&t.motion, &t.tank, km) }

// Yacht is a water vehicle with a propulsion type and cabins.
type Yacht struct {
	motion
	tank
	propulsion string
	cabins     int
}

// NewYacht builds a Yacht with a full tank.
func NewYacht(name string, speed float64, propulsion string, cabins int, capacity, rate float64) *Yacht {
	return &Yacht{
		motion:     motion{name: name, speed: speed},
		tank:       newTank(capacity, rate),
		propulsion: propulsion,
		cabins:     cabins,
	}
}

// Propulsion returns the propulsion type.
func (y *Yacht) Propulsion() string { return y.propulsion }

// Cabins returns the cabin count.
func (y *Yacht) Cabins() int { return y.cabins }

// Move advances the yacht, consuming fuel; partial when the tank runs
// short.
func (y *Yacht) Move(km float64) (float64, error) { return move(&y.motion, &y.tank, km) }

// Helicopter is an air vehicle with a cruising altitude and passenger
// capacity.
type Helicopter struct {
	motion
	tank
	altitude   float64
	passengers int
}

// NewHelicopter builds a Helicopter with a full tank.
func NewHelicopter(name string, speed, altitude float64, passengers int, capacity, rate float64) *Helicopter {
	return &Helicopter{
		motion:     motion{name: name, speed: speed},
		tank:       newTank(capacity, rate),
		altitude:   altitude,
		passengers: passengers,
	}
}

// Altitude returns the cruising altitude in meters.
func (h *Helicopter) Altitude() float64 { return h.altitude }

// Passengers returns the passenger capacity.
func (h *Helicopter) Passengers() int { return h.passengers }

// Move advances the helicopter, consuming fuel; partial when the tank
// runs short.
func (h *Helicopter) Move(km float64) (float64, error) { return move(&h.motion, &h.tank, km) }
