// Package state implements the Machine and the four per-phase state objects.
package state

import "fmt"

// phase is the internal state-object interface: one method per event, each
// answering with the next state object or an error. The embedded noEvents
// default makes every event illegal; concrete phases override their edges.
type phase interface {
	id() Phase
	start() (phase, error)
	drive() (phase, error)
	stop() (phase, error)
	park() (phase, error)
	breakdown() (phase, error)
	repair() (phase, error)
}

// Machine is the context: it delegates every event to the current state
// object and records the phase trail. Not safe for concurrent use.
type Machine struct {
	cur   phase
	trail []Phase
}

// NewMachine returns a machine in the Parked phase.
func NewMachine() *Machine {
	m := &Machine{cur: parked{}}
	m.trail = append(m.trail, m.cur.id())

	return m
}

// Phase reports the current phase.
func (m *Machine) Phase() Phase { return m.cur.id() }

// History returns the phase trail from construction on, including the
// initial Parked entry. The returned slice is a copy.
func (m *Machine) History() []Phase {
	out := make([]Phase, len(m.trail))
	copy(out, m.trail)

	return out
}

// apply swaps in the next state object, or reports the illegal event with
// both the event name and the refusing phase.
func (m *Machine) apply(event string, next phase, err error) error {
	if err != nil {
		return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, event, m.cur.id())
	}
	m.cur = next
	m.trail = append(m.trail, next.id())

	return nil
}

// Start fires the ignition: Parked → Idle.
func (m *Machine) Start() error {
	next, err := m.cur.start()
	return m.apply("Start", next, err)
}

// Drive engages gear: Idle → Moving.
func (m *Machine) Drive() error {
	next, err := m.cur.drive()
	return m.apply("Drive", next, err)
}

// Stop brakes to a halt: Moving → Idle.
func (m *Machine) Stop() error {
	next, err := m.cur.stop()
	return m.apply("Stop", next, err)
}

// Park shuts down: Idle → Parked.
func (m *Machine) Park() error {
	next, err := m.cur.park()
	return m.apply("Park", next, err)
}

// Breakdown hauls the vehicle off: Parked, Idle or Moving → Towed.
func (m *Machine) Breakdown() error {
	next, err := m.cur.breakdown()
	return m.apply("Breakdown", next, err)
}

// Repair releases the vehicle from the impound: Towed → Parked.
func (m *Machine) Repair() error {
	next, err := m.cur.repair()
	return m.apply("Repair", next, err)
}

// errNoEdge marks an event the current phase has no answer for; the Machine
// rewrites it into the caller-facing ErrInvalidTransition with context.
var errNoEdge = fmt.Errorf("no edge")

// noEvents is the embeddable default: every event is illegal until a
// concrete phase overrides it.
type noEvents struct{}

func (noEvents) start() (phase, error)     { return nil, errNoEdge }
func (noEvents) drive() (phase, error)     { return nil, errNoEdge }
func (noEvents) stop() (phase, error)      { return nil, errNoEdge }
func (noEvents) park() (phase, error)      { return nil, errNoEdge }
func (noEvents) breakdown() (phase, error) { return nil, errNoEdge }
func (noEvents) repair() (phase, error)    { return nil, errNoEdge }

// parked answers Start and Breakdown.
type parked struct{ noEvents }

func (parked) id() Phase                 { return Parked }
func (parked) start() (phase, error)     { return idle{}, nil }
func (parked) breakdown() (phase, error) { return towed{}, nil }

// idle answers Drive, Park and Breakdown.
type idle struct{ noEvents }

func (idle) id() Phase                 { return Idle }
func (idle) drive() (phase, error)     { return moving{}, nil }
func (idle) park() (phase, error)      { return parked{}, nil }
func (idle) breakdown() (phase, error) { return towed{}, nil }

// moving answers Stop and Breakdown.
type moving struct{ noEvents }

func (moving) id() Phase                 { return Moving }
func (moving) stop() (phase, error)      { return idle{}, nil }
func (moving) breakdown() (phase, error) { return towed{}, nil }

// towed answers only Repair.
type towed struct{ noEvents }

func (towed) id() Phase              { return Towed }
func (towed) repair() (phase, error) { return parked{}, nil }
