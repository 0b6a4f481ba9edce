// Package state defines the Phase enumeration and the package sentinel
// errors.
package state

import "errors"

// ErrInvalidTransition indicates the current phase has no edge for the
// requested event. The wrapped message names the event and the phase.
var ErrInvalidTransition = errors.New("state: invalid transition")

// Phase is the observable condition of the vehicle.
type Phase int

const (
	// Parked: engine off, handbrake on. The machine starts here.
	Parked Phase = iota

	// Idle: engine running, not moving.
	Idle

	// Moving: under way.
	Moving

	// Towed: impounded after a breakdown; only Repair leaves this phase.
	Towed
)

// String renders the Phase as a stable lowercase word.
func (p Phase) String() string {
	switch p {
	case Parked:
		return "parked"
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Towed:
		return "towed"
	default:
		return "unknown"
	}
}
