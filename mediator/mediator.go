// Package mediator implements the Tower coordinator and its Radio
// colleagues.
package mediator

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for tower coordination.
var (
	// ErrDuplicateUnit is returned when a unit id joins twice.
	ErrDuplicateUnit = errors.New("mediator: unit already joined")

	// ErrUnknownUnit is returned when a radio that never joined transmits.
	ErrUnknownUnit = errors.New("mediator: unknown unit")

	// ErrNoBayHeld is returned when a unit releases a bay it does not hold.
	ErrNoBayHeld = errors.New("mediator: unit does not hold the bay")
)

// Tower is the mediator: the only party that knows who holds the bay and
// who waits for it. Safe for concurrent use.
type Tower struct {
	mu     sync.Mutex
	units  map[string]*Radio
	holder *Radio
	wait   []*Radio // FIFO
}

// NewTower returns a tower with a free bay and an empty frequency.
func NewTower() *Tower {
	return &Tower{units: make(map[string]*Radio)}
}

// Join registers a unit and returns its radio. Each id joins once.
//
// Complexity: O(1).
func (t *Tower) Join(id string) (*Radio, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, dup := t.units[id]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateUnit, id)
	}
	r := &Radio{id: id, tower: t}
	t.units[id] = r

	return r, nil
}

// Holder reports the id of the current bay holder, or "" when the bay is
// free.
func (t *Tower) Holder() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.holder == nil {
		return ""
	}

	return t.holder.id
}

// request handles a unit's bay request: grant now or queue FIFO.
func (t *Tower) request(r *Radio) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.known(r); err != nil {
		return err
	}
	if t.holder == nil {
		t.holder = r
		r.hear("bay granted")

		return nil
	}
	t.wait = append(t.wait, r)
	r.hear(fmt.Sprintf("queued behind %d", len(t.wait)-1))

	return nil
}

// release hands the bay to the longest-waiting unit, if any.
func (t *Tower) release(r *Radio) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.known(r); err != nil {
		return err
	}
	if t.holder != r {
		return fmt.Errorf("%w: %q", ErrNoBayHeld, r.id)
	}
	r.hear("bay released")

	t.holder = nil
	if len(t.wait) > 0 {
		next := t.wait[0]
		t.wait = t.wait[1:]
		t.holder = next
		next.hear("bay granted")
	}

	return nil
}

// known verifies the radio joined THIS tower (guards zero-value radios and
// radios from another tower). Caller holds the lock.
func (t *Tower) known(r *Radio) error {
	if r == nil || r.tower != t || t.units[r.id] != r {
		return ErrUnknownUnit
	}

	return nil
}

// Radio is a colleague: a vehicle's only line to the garage. It holds no
// reference to any other unit — everything goes through the tower.
type Radio struct {
	id    string
	tower *Tower
	log   []string
}

// ID reports the unit's call sign.
func (r *Radio) ID() string { return r.id }

// RequestBay asks the tower for the service bay.
func (r *Radio) RequestBay() error {
	if r == nil || r.tower == nil {
		return ErrUnknownUnit
	}

	return r.tower.request(r)
}

// ReleaseBay returns the bay to the tower.
func (r *Radio) ReleaseBay() error {
	if r == nil || r.tower == nil {
		return ErrUnknownUnit
	}

	return r.tower.release(r)
}

// hear appends a tower notification to the unit's trail. Caller (the tower)
// holds the tower lock, which also serializes log access.
func (r *Radio) hear(msg string) { r.log = append(r.log, msg) }

// Log returns a copy of everything the tower told this unit, in order.
func (r *Radio) Log() []string {
	if r == nil || r.tower == nil {
		return nil
	}

	r.tower.mu.Lock()
	defer r.tower.mu.Unlock()

	out := make([]string, len(r.log))
	copy(out, r.log)

	return out
}
