// Package command — the Garage receiver the commands act on.
package command

import "errors"

// Receiver-level sentinel errors.
var (
	// ErrDoorClosed is returned by StartEngine while the door is down.
	ErrDoorClosed = errors.New("command: garage door is closed")

	// ErrEngineOff is returned when undoing a start that is not running.
	ErrEngineOff = errors.New("command: engine is not running")
)

// Garage is the receiver: the state every command reads and writes. The
// commands know the garage; the invoker knows neither.
type Garage struct {
	doorOpen bool
	running  map[string]bool
	fuelL    map[string]int
}

// NewGarage returns a garage with the door down, engines off, tanks as
// delivered (empty).
func NewGarage() *Garage {
	return &Garage{
		running: make(map[string]bool),
		fuelL:   make(map[string]int),
	}
}

// DoorOpen reports whether the door is up.
func (g *Garage) DoorOpen() bool { return g.doorOpen }

// EngineRunning reports whether the vehicle's engine is running.
func (g *Garage) EngineRunning(vin string) bool { return g.running[vin] }

// FuelL reports the vehicle's tank level in litres.
func (g *Garage) FuelL(vin string) int { return g.fuelL[vin] }
