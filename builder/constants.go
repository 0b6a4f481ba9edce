// Package builder defines shared constants used by the vehicle builder,
// ensuring consistent defaults and validation across every construction step.
package builder

import "github.com/boushphong/go-design-patterns/vehicle"

//-----------------------------------------------------------------------------
// Step Name Constants
//   used to prefix errors with the step name for context.
//-----------------------------------------------------------------------------

const (
	// StepNew is the canonical name of the constructor step.
	StepNew = "New"
	// StepChassis is the canonical name of the chassis step.
	StepChassis = "Chassis"
	// StepEngine is the canonical name of the engine step.
	StepEngine = "Engine"
	// StepWheels is the canonical name of the wheels step.
	StepWheels = "Wheels"
	// StepSeats is the canonical name of the seats step.
	StepSeats = "Seats"
	// StepBuild is the canonical name of the terminal step.
	StepBuild = "Build"
)

//-----------------------------------------------------------------------------
// Engine Displacement Bounds
//-----------------------------------------------------------------------------

// MinEngineCC is the smallest accepted displacement (a 49cc moped engine).
const MinEngineCC = 49

// MaxEngineCC is the largest accepted displacement (heavy haul diesels).
const MaxEngineCC = 16_000

//-----------------------------------------------------------------------------
// Wheel Minimums
//-----------------------------------------------------------------------------

// MotorcycleWheels is the exact wheel count of a motorcycle.
const MotorcycleWheels = 2

// MinCarWheels is the minimum wheel count of a car.
const MinCarWheels = 4

// MinTruckWheels is the minimum wheel count of a truck (three axles).
const MinTruckWheels = 6

// MinBusWheels is the minimum wheel count of a bus.
const MinBusWheels = 4

//-----------------------------------------------------------------------------
// Seat Bounds and Defaults
//-----------------------------------------------------------------------------

// MinSeats is the smallest accepted seat count (a single rider).
const MinSeats = 1

// MaxSeats is the largest accepted seat count (an articulated bus).
const MaxSeats = 72

// DefaultColor is the paint applied when Paint is never called.
const DefaultColor = "factory white"

// defaultWheels maps each kind to its default wheel count.
func defaultWheels(k vehicle.Kind) int {
	switch k {
	case vehicle.KindMotorcycle:
		return MotorcycleWheels
	case vehicle.KindTruck:
		return MinTruckWheels
	default: // car, bus
		return MinCarWheels
	}
}

// defaultSeats maps each kind to its default seat count.
func defaultSeats(k vehicle.Kind) int {
	switch k {
	case vehicle.KindMotorcycle:
		return 1
	case vehicle.KindTruck:
		return 2
	case vehicle.KindBus:
		return 24
	default: // car
		return 5
	}
}
