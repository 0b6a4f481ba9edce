// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Fluent step-by-step construction of a Blueprint with recorded violations.
// Policy:
//   - Chainable steps never return errors; the FIRST violation is recorded and
//     every later step becomes a no-op.
//   - Build() is the single exit: it surfaces the recorded violation (wrapped
//     with its step name) or the finished product.
//   - The finished Blueprint is a value; share it freely, rebuild never.

package builder

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Blueprint is the product: a complete vehicle specification ready for the
// assembly line. It is a plain value; Build returns it by copy.
type Blueprint struct {
	// Kind classifies the vehicle under construction.
	Kind vehicle.Kind

	// Chassis names the load-bearing frame (required).
	Chassis string

	// EngineCC is the engine displacement in cubic centimetres.
	EngineCC int

	// Wheels is the wheel count (defaulted per kind).
	Wheels int

	// Seats is the seat count (defaulted per kind).
	Seats int

	// Color is the paint finish (default: DefaultColor).
	Color string

	// Extras lists optional equipment, first occurrence order, no duplicates.
	Extras []string
}

// String renders the blueprint as a one-line spec sheet.
func (bp Blueprint) String() string {
	return fmt.Sprintf("%s | %s | %dcc | %d wheels | %d seats | %s",
		bp.Kind, bp.Chassis, bp.EngineCC, bp.Wheels, bp.Seats, bp.Color)
}

// Builder accumulates construction steps for one Blueprint.
//
// The zero value is unusable (no kind); always start with New. A Builder is
// single-use and not safe for concurrent use.
type Builder struct {
	bp  Blueprint
	err error // first recorded violation, wrapped with its step name
}

// New opens a construction chain for the given kind, seeding the per-kind
// defaults (wheels, seats, paint). An unknown kind is recorded as ErrNoKind
// and surfaces at Build.
func New(kind vehicle.Kind) *Builder {
	b := &Builder{}
	if !kind.Known() {
		b.record(StepNew, fmt.Errorf("%w: got %q", ErrNoKind, kind))
		return b
	}
	b.bp = Blueprint{
		Kind:   kind,
		Wheels: defaultWheels(kind),
		Seats:  defaultSeats(kind),
		Color:  DefaultColor,
	}

	return b
}

// record stores the first violation; later violations are ignored so that
// Build reports the step where the chain actually went wrong.
func (b *Builder) record(step string, err error) {
	if b.err == nil {
		b.err = fmt.Errorf("builder: step %s: %w", step, err)
	}
}

// broken reports whether the chain has already failed (every step gates on it).
func (b *Builder) broken() bool { return b.err != nil || !b.bp.Kind.Known() }

// Chassis chooses the frame. Empty names are a violation.
func (b *Builder) Chassis(name string) *Builder {
	if b.broken() {
		return b
	}
	if name == "" {
		b.record(StepChassis, ErrEmptyChassis)
		return b
	}
	b.bp.Chassis = name

	return b
}

// Engine chooses the displacement, checked against [MinEngineCC, MaxEngineCC].
func (b *Builder) Engine(cc int) *Builder {
	if b.broken() {
		return b
	}
	if cc < MinEngineCC || cc > MaxEngineCC {
		b.record(StepEngine, fmt.Errorf("%w: %dcc", ErrEngineRange, cc))
		return b
	}
	b.bp.EngineCC = cc

	return b
}

// Wheels overrides the per-kind default wheel count. Motorcycles must have
// exactly MotorcycleWheels; every other kind has a per-kind minimum.
func (b *Builder) Wheels(n int) *Builder {
	if b.broken() {
		return b
	}
	if err := checkWheels(b.bp.Kind, n); err != nil {
		b.record(StepWheels, err)
		return b
	}
	b.bp.Wheels = n

	return b
}

// Seats overrides the per-kind default seat count, within [MinSeats, MaxSeats].
func (b *Builder) Seats(n int) *Builder {
	if b.broken() {
		return b
	}
	if n < MinSeats || n > MaxSeats {
		b.record(StepSeats, fmt.Errorf("%w: %d", ErrSeatCount, n))
		return b
	}
	b.bp.Seats = n

	return b
}

// Paint chooses the finish. Painting twice keeps the later coat.
func (b *Builder) Paint(color string) *Builder {
	if b.broken() {
		return b
	}
	if color != "" {
		b.bp.Color = color
	}

	return b
}

// Extra adds one piece of optional equipment. Duplicates are dropped; the
// first occurrence keeps its position.
func (b *Builder) Extra(name string) *Builder {
	if b.broken() || name == "" {
		return b
	}
	for _, have := range b.bp.Extras {
		if have == name {
			return b
		}
	}
	b.bp.Extras = append(b.bp.Extras, name)

	return b
}

// Build terminates the chain.
//
// Returns the finished Blueprint, or the zero Blueprint together with the
// first violation recorded during the chain (wrapped with its step name).
// Requirements enforced here: a kind (from New), a chassis, and an engine.
//
// Complexity: O(1).
func (b *Builder) Build() (Blueprint, error) {
	if b.err != nil {
		return Blueprint{}, b.err
	}
	if !b.bp.Kind.Known() {
		// zero-value Builder, New was never called
		return Blueprint{}, fmt.Errorf("builder: step %s: %w", StepBuild, ErrNoKind)
	}
	if b.bp.Chassis == "" {
		return Blueprint{}, fmt.Errorf("builder: step %s: %w", StepBuild, ErrEmptyChassis)
	}
	if b.bp.EngineCC == 0 {
		return Blueprint{}, fmt.Errorf("builder: step %s: %w: no engine chosen", StepBuild, ErrEngineRange)
	}

	return b.bp, nil
}

// checkWheels validates a wheel count against the kind's rule.
func checkWheels(k vehicle.Kind, n int) error {
	switch k {
	case vehicle.KindMotorcycle:
		if n != MotorcycleWheels {
			return fmt.Errorf("%w: motorcycle needs exactly %d, got %d", ErrWheelCount, MotorcycleWheels, n)
		}
	case vehicle.KindTruck:
		if n < MinTruckWheels {
			return fmt.Errorf("%w: truck needs at least %d, got %d", ErrWheelCount, MinTruckWheels, n)
		}
	case vehicle.KindBus:
		if n < MinBusWheels {
			return fmt.Errorf("%w: bus needs at least %d, got %d", ErrWheelCount, MinBusWheels, n)
		}
	default: // car
		if n < MinCarWheels {
			return fmt.Errorf("%w: car needs at least %d, got %d", ErrWheelCount, MinCarWheels, n)
		}
	}

	return nil
}
