// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public surface: constructor, validation, parsing, formatting.
// Policy:
//   - No hidden state; every function is a pure transformation of its inputs.
//   - Sentinel errors only; callers branch with errors.Is.
//   - Every exported function documents its contract and complexity.
// AI-HINT (file):
//   - Prefer New(...) over literal Vehicle{...}: New defaults Fuel and validates.
//   - Parse helpers are case-insensitive and trim surrounding space.

package vehicle

import (
	"fmt"
	"strings"
)

// New constructs a validated Vehicle.
//
// Implementation:
//   - Stage 1: Assemble the record from the required fields; default Fuel to FuelPetrol.
//   - Stage 2: Apply options left-to-right (options assign, they never validate).
//   - Stage 3: Run Validate and return the zero Vehicle on failure.
//
// Behavior highlights:
//   - Never returns a partially valid record: on error the Vehicle result is the zero value.
//   - Deterministic: same arguments and option order produce an identical record.
//
// Inputs:
//   - vin, maker, model: identifying strings (vin must be non-empty).
//   - year: model year, ≥ MinYear.
//   - kind: one of the Kind enumerators other than KindUnknown.
//   - opts: optional field assignments (WithFuel, WithMileage, WithPrice).
//
// Returns:
//   - Vehicle: the validated record.
//   - error: a vehicle sentinel describing the first violation found.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
//
// AI-Hints:
//   - Branch on the sentinels (errors.Is(err, vehicle.ErrBadYear)) rather than on text.
func New(vin, maker, model string, year int, kind Kind, opts ...Option) (Vehicle, error) {
	// Assemble the base record; Fuel defaults to petrol unless an option overrides it.
	v := Vehicle{
		VIN:   vin,
		Make:  maker,
		Model: model,
		Year:  year,
		Kind:  kind,
		Fuel:  FuelPetrol, // default energy source
	}
	// Apply options deterministically, left to right.
	for _, opt := range opts {
		opt(&v)
	}
	// Validate once, after all assignments; reject with the first violation.
	if err := v.Validate(); err != nil {
		return Vehicle{}, err
	}

	return v, nil
}

// Known reports whether k is one of the declared enumerators other than
// KindUnknown. Factories across the repository gate on this before
// manufacturing anything.
// Complexity: O(1).
func (k Kind) Known() bool { return k > KindUnknown && k <= KindBus }

// Known reports whether f is one of the declared enumerators other than
// FuelUnknown.
// Complexity: O(1).
func (f Fuel) Known() bool { return f > FuelUnknown && f <= FuelHybrid }

// Validate reports the first constraint violated by the record, or nil.
//
// Checks, in order: VIN non-empty, Kind known, Fuel known, Year ≥ MinYear,
// Mileage ≥ 0, Price ≥ 0.
//
// Complexity: Time O(1), Space O(1).
func (v Vehicle) Validate() error {
	if v.VIN == "" {
		return ErrEmptyVIN
	}
	if !v.Kind.Known() {
		return ErrUnknownKind
	}
	if !v.Fuel.Known() {
		return ErrUnknownFuel
	}
	if v.Year < MinYear {
		return fmt.Errorf("%w: %d", ErrBadYear, v.Year)
	}
	if v.Mileage < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMileage, v.Mileage)
	}
	if v.Price < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePrice, v.Price)
	}

	return nil
}

// String renders the record as "<year> <make> <model> [<kind>]".
// Complexity: O(1).
func (v Vehicle) String() string {
	return fmt.Sprintf("%d %s %s [%s]", v.Year, v.Make, v.Model, v.Kind)
}

// String renders the Kind as a stable lowercase word.
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	case KindMotorcycle:
		return "motorcycle"
	case KindBus:
		return "bus"
	default:
		return "unknown"
	}
}

// ParseKind converts text to a Kind, case-insensitively, trimming
// surrounding space. Unknown text yields KindUnknown and ErrUnknownKind
// wrapped with the offending input.
//
// Complexity: O(len(s)).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return KindCar, nil
	case "truck":
		return KindTruck, nil
	case "motorcycle":
		return KindMotorcycle, nil
	case "bus":
		return KindBus, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// String renders the Fuel as a stable lowercase word.
func (f Fuel) String() string {
	switch f {
	case FuelPetrol:
		return "petrol"
	case FuelDiesel:
		return "diesel"
	case FuelElectric:
		return "electric"
	case FuelHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// ParseFuel converts text to a Fuel, case-insensitively, trimming
// surrounding space. Unknown text yields FuelUnknown and ErrUnknownFuel
// wrapped with the offending input.
//
// Complexity: O(len(s)).
func ParseFuel(s string) (Fuel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "petrol":
		return FuelPetrol, nil
	case "diesel":
		return FuelDiesel, nil
	case "electric":
		return FuelElectric, nil
	case "hybrid":
		return FuelHybrid, nil
	default:
		return FuelUnknown, fmt.Errorf("%w: %q", ErrUnknownFuel, s)
	}
}
