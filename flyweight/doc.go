// Package flyweight teaches the Flyweight pattern: sharing the heavy,
// immutable part of many similar objects so a large population costs little
// more than a small one.
//
// What
//
//   - Intrinsic state: Spec — make, model, trim, displacement, curb weight.
//     Identical for every car of the same trim; immutable once created.
//   - Flyweight factory: Factory.Spec(...) — the memoizing map behind a
//     mutex. The first request for a key builds the Spec; every later
//     request returns the SAME pointer.
//   - Extrinsic state: FleetCar — the few fields that actually differ per
//     car (VIN, mileage) plus a pointer to its shared Spec.
//
//	10_000 fleet cars, 3 trims:
//	  without sharing: 10_000 Spec values
//	  with sharing:        3 Spec values + 10_000 thin wrappers
//
// Why
//
//	The split is the whole pattern: intrinsic state must be immutable
//	(it is shared, mutation would be spooky action at a distance), and
//	extrinsic state must stay outside the flyweight. The factory is the
//	only place specs are born, which is what makes the sharing reliable.
//
// Usage
//
//	f := flyweight.NewFactory()
//	spec := f.Spec("VW", "Golf", "GTI", 1_984, 1_463)
//	car := flyweight.FleetCar{VIN: "A-1", Mileage: 42_000, Spec: spec}
//	// f.Spec with the same key returns the identical *Spec
//
// Concurrency: the factory is safe for concurrent use; Specs are immutable
// and safe to share without synchronization.
//
// See the benchmark for the allocation difference the sharing buys.
package flyweight
