// Package memento implements the Tuning originator, the opaque Memento and
// the bounded History caretaker.
package memento

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for snapshot and restore operations.
var (
	// ErrForeignMemento is returned when a memento from another Tuning is
	// offered to Restore.
	ErrForeignMemento = errors.New("memento: memento belongs to another tuning")

	// ErrNoSnapshots is returned by Undo on an empty history.
	ErrNoSnapshots = errors.New("memento: no snapshots")

	// ErrNilTuning is returned by NewHistory without an originator.
	ErrNilTuning = errors.New("memento: nil tuning")
)

// MaxDepth is the caretaker's stack bound; pushing beyond it drops the
// oldest snapshot.
const MaxDepth = 32

// setup is the captured state. It lives unexported inside the Memento so
// caretakers can store snapshots but never read or forge them.
type setup struct {
	suspensionMM    int
	ecuProfile      string
	tirePressurePSI float64
}

// Memento is the opaque snapshot token. It is a value: copy it freely, the
// captured state inside never changes.
type Memento struct {
	id    string // snapshot identity, for logs and deduplication
	owner string // identity of the Tuning it came from
	state setup
}

// ID returns the generated snapshot identifier (the only exported fact).
func (m Memento) ID() string { return m.id }

// Tuning is the originator: a vehicle's adjustable setup. Zero value is not
// usable; construct with NewTuning so the identity exists.
type Tuning struct {
	id  string
	cur setup
}

// NewTuning returns a tuning with the given initial setup and a fresh
// identity.
func NewTuning(suspensionMM int, ecuProfile string, tirePressurePSI float64) *Tuning {
	return &Tuning{
		id: uuid.NewString(),
		cur: setup{
			suspensionMM:    suspensionMM,
			ecuProfile:      ecuProfile,
			tirePressurePSI: tirePressurePSI,
		},
	}
}

// SuspensionMM reports the current ride height in millimetres.
func (t *Tuning) SuspensionMM() int { return t.cur.suspensionMM }

// ECUProfile reports the current engine map name.
func (t *Tuning) ECUProfile() string { return t.cur.ecuProfile }

// TirePressurePSI reports the current tire pressure.
func (t *Tuning) TirePressurePSI() float64 { return t.cur.tirePressurePSI }

// SetSuspensionMM adjusts the ride height.
func (t *Tuning) SetSuspensionMM(mm int) { t.cur.suspensionMM = mm }

// SetECUProfile swaps the engine map.
func (t *Tuning) SetECUProfile(name string) { t.cur.ecuProfile = name }

// SetTirePressurePSI adjusts the tire pressure.
func (t *Tuning) SetTirePressurePSI(psi float64) { t.cur.tirePressurePSI = psi }

// String renders the setup as "120mm / street / 32.0psi".
func (t *Tuning) String() string {
	return fmt.Sprintf("%dmm / %s / %.1fpsi",
		t.cur.suspensionMM, t.cur.ecuProfile, t.cur.tirePressurePSI)
}

// Snapshot captures the current setup into an opaque memento bound to this
// tuning. Complexity: O(1).
func (t *Tuning) Snapshot() Memento {
	return Memento{id: uuid.NewString(), owner: t.id, state: t.cur}
}

// Restore rewinds the tuning to a snapshot it produced earlier. Mementos
// from another Tuning are refused with ErrForeignMemento.
//
// Complexity: O(1).
func (t *Tuning) Restore(m Memento) error {
	if m.owner != t.id {
		return fmt.Errorf("%w: snapshot %s", ErrForeignMemento, m.id)
	}
	t.cur = m.state

	return nil
}

// History is the caretaker: a bounded LIFO of snapshots for one tuning.
// Not safe for concurrent use.
type History struct {
	of    *Tuning
	stack []Memento
}

// NewHistory returns an empty history bound to the tuning it will undo.
func NewHistory(t *Tuning) (*History, error) {
	if t == nil {
		return nil, ErrNilTuning
	}

	return &History{of: t}, nil
}

// Save snapshots the tuning and pushes the memento. Beyond MaxDepth the
// oldest snapshot is dropped.
//
// Complexity: O(1) amortized.
func (h *History) Save() Memento {
	m := h.of.Snapshot()
	h.Push(m)

	return m
}

// Push stores an externally captured memento, applying the MaxDepth bound.
func (h *History) Push(m Memento) {
	h.stack = append(h.stack, m)
	if len(h.stack) > MaxDepth {
		h.stack = h.stack[1:]
	}
}

// Undo restores the latest snapshot into the tuning and pops it.
//
// Complexity: O(1).
func (h *History) Undo() error {
	if len(h.stack) == 0 {
		return ErrNoSnapshots
	}
	top := h.stack[len(h.stack)-1]
	if err := h.of.Restore(top); err != nil {
		return fmt.Errorf("memento: undo: %w", err)
	}
	h.stack = h.stack[:len(h.stack)-1]

	return nil
}

// Depth reports the number of stored snapshots.
func (h *History) Depth() int { return len(h.stack) }
