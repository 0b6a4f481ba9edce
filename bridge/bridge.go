// Package bridge implements the Drivetrain implementor axis and the Ride
// abstraction axis.
package bridge

import (
	"errors"
	"fmt"
)

// ErrNilDrivetrain indicates a body was constructed without an implementor.
var ErrNilDrivetrain = errors.New("bridge: nil drivetrain")

// Drivetrain is the implementor: how the vehicle actually moves.
type Drivetrain interface {
	// Engage describes power delivery from standstill.
	Engage() string

	// PeakKW reports peak power in kilowatts.
	PeakKW() int
}

// Combustion is a piston drivetrain sized by displacement.
type Combustion struct {
	// CC is the displacement in cubic centimetres.
	CC int
}

// String names the drivetrain family.
func (c Combustion) String() string { return "combustion" }

// Engage describes a rev-and-clutch launch.
func (c Combustion) Engage() string { return "revs climbing through the gears" }

// PeakKW derives peak power from displacement (a teaching approximation:
// 55 kW per litre).
func (c Combustion) PeakKW() int { return c.CC * 55 / 1000 }

// Electric is a battery drivetrain sized by pack capacity.
type Electric struct {
	// KWh is the battery capacity in kilowatt-hours.
	KWh int
}

// String names the drivetrain family.
func (e Electric) String() string { return "electric" }

// Engage describes an instant-torque launch.
func (e Electric) Engage() string { return "silent torque from standstill" }

// PeakKW derives peak power from pack size (a teaching approximation:
// 2 kW per kWh, capped by cooling at 300).
func (e Electric) PeakKW() int {
	kw := e.KWh * 2
	if kw > 300 {
		kw = 300
	}

	return kw
}

// Ride is the base abstraction: a body style over some drivetrain. Refined
// abstractions embed it and contribute only their body name.
type Ride struct {
	body string
	dt   Drivetrain
}

// newRide guards the bridge field once for every refined abstraction.
func newRide(body string, dt Drivetrain) (Ride, error) {
	if dt == nil {
		return Ride{}, fmt.Errorf("%w: %s", ErrNilDrivetrain, body)
	}

	return Ride{body: body, dt: dt}, nil
}

// Describe names the body and the drivetrain behind the bridge.
func (r Ride) Describe() string {
	return fmt.Sprintf("%s with %v drivetrain (%d kW)", r.body, r.dt, r.dt.PeakKW())
}

// Launch narrates pulling away; the feel comes from the implementor.
func (r Ride) Launch() string {
	return fmt.Sprintf("%s: %s", r.body, r.dt.Engage())
}

// Sedan is a refined abstraction: the passenger body style.
type Sedan struct {
	Ride
}

// NewSedan pairs the sedan body with any drivetrain.
func NewSedan(dt Drivetrain) (*Sedan, error) {
	r, err := newRide("sedan", dt)
	if err != nil {
		return nil, err
	}

	return &Sedan{Ride: r}, nil
}

// Hauler is a refined abstraction: the freight body style.
type Hauler struct {
	Ride
}

// NewHauler pairs the hauler body with any drivetrain.
func NewHauler(dt Drivetrain) (*Hauler, error) {
	r, err := newRide("hauler", dt)
	if err != nil {
		return nil, err
	}

	return &Hauler{Ride: r}, nil
}
