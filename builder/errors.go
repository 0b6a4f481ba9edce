// SPDX-License-Identifier: MIT
// Package: go-design-patterns/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Steps attach context using `%w` with the step name as prefix.
//   • The builder never panics: violations are recorded in the chain and
//     surfaced by Build().

package builder

import "errors"

// ErrNoKind indicates New was given a kind outside the vehicle enumeration.
// Classification: construction error (the chain never had a valid product).
// Usage: if errors.Is(err, ErrNoKind) { /* pick a real vehicle.Kind */ }.
var ErrNoKind = errors.New("builder: vehicle kind is required")

// ErrEmptyChassis indicates the chassis step was skipped or given "".
// Usage: if errors.Is(err, ErrEmptyChassis) { /* call Chassis(name) */ }.
var ErrEmptyChassis = errors.New("builder: chassis is required")

// ErrEngineRange indicates a displacement outside [MinEngineCC, MaxEngineCC].
// Usage: if errors.Is(err, ErrEngineRange) { /* fix displacement */ }.
var ErrEngineRange = errors.New("builder: engine displacement out of range")

// ErrWheelCount indicates a wheel count below the kind minimum
// (motorcycles must have exactly MotorcycleWheels).
// Usage: if errors.Is(err, ErrWheelCount) { /* fix wheel count */ }.
var ErrWheelCount = errors.New("builder: invalid wheel count")

// ErrSeatCount indicates a seat count outside [MinSeats, MaxSeats].
// Usage: if errors.Is(err, ErrSeatCount) { /* fix seat count */ }.
var ErrSeatCount = errors.New("builder: invalid seat count")
