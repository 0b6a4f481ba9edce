// Package prototype implements the deep-cloning Design and the named
// prototype Catalog.
package prototype

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors for prototype registration and spawning.
var (
	// ErrNilDesign is returned when a nil design is registered or cloned.
	ErrNilDesign = errors.New("prototype: nil design")

	// ErrDuplicateProto is returned when a prototype name is registered twice.
	ErrDuplicateProto = errors.New("prototype: prototype already registered")

	// ErrUnknownProto is returned when Spawn finds no prototype by that name.
	ErrUnknownProto = errors.New("prototype: unknown prototype")
)

// Design is a configured vehicle design: the base record plus the mutable
// trimmings a workshop bolts on. Designs are cloned, never copied by
// assignment — plain assignment would alias Extras and Telemetry.
type Design struct {
	// Vehicle is the base record; its VIN is the design's identity.
	Vehicle vehicle.Vehicle

	// Extras lists installed optional equipment.
	Extras []string

	// Telemetry maps sensor names to their latest readings.
	Telemetry map[string]string
}

// Clone returns a deep, independent copy of the design.
//
// Deep-copy discipline:
//   - Extras: fresh backing array, same contents.
//   - Telemetry: fresh map, same entries.
//   - VIN: regenerated (a fresh UUID) — identity is never cloned.
//
// Complexity: O(len(Extras) + len(Telemetry)).
func (d *Design) Clone() (*Design, error) {
	if d == nil {
		return nil, ErrNilDesign
	}

	out := &Design{Vehicle: d.Vehicle}
	out.Vehicle.VIN = uuid.NewString()

	if d.Extras != nil {
		out.Extras = make([]string, len(d.Extras))
		copy(out.Extras, d.Extras)
	}
	if d.Telemetry != nil {
		out.Telemetry = make(map[string]string, len(d.Telemetry))
		for k, v := range d.Telemetry {
			out.Telemetry[k] = v
		}
	}

	return out, nil
}

// Catalog registers master designs by name and spawns independent clones.
// The masters themselves are never handed out.
type Catalog struct {
	mu     sync.RWMutex
	protos map[string]*Design
}

// NewCatalog returns an empty catalog, ready for Register.
func NewCatalog() *Catalog {
	return &Catalog{protos: make(map[string]*Design)}
}

// Register stores a master design under a name. To keep the master private,
// Register stores its own clone (with the master's VIN preserved), so later
// mutations of the caller's design do not leak into the catalog.
//
// Complexity: O(clone). Safe for concurrent use.
func (c *Catalog) Register(name string, d *Design) error {
	master, err := d.Clone()
	if err != nil {
		return fmt.Errorf("prototype: register %q: %w", name, err)
	}
	master.Vehicle.VIN = d.Vehicle.VIN // the master keeps its identity

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.protos[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateProto, name)
	}
	c.protos[name] = master

	return nil
}

// Spawn returns a fresh deep clone of the named prototype. Every call yields
// an independent design with its own VIN.
//
// Complexity: O(clone). Safe for concurrent use.
func (c *Catalog) Spawn(name string) (*Design, error) {
	c.mu.RLock()
	master, ok := c.protos[name]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProto, name)
	}

	return master.Clone()
}

// Len reports the registered prototype count.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.protos)
}
