// Package builder teaches the Builder pattern: constructing a complex
// product step by step, so the construction process can be reused and the
// intermediate states can be validated, instead of forcing the caller
// through a many-argument constructor.
//
// What
//
//   - Product: Blueprint — the full specification of a vehicle ready for
//     the assembly line (kind, chassis, engine, wheels, seats, color,
//     extras).
//   - Builder: a fluent, chainable type with one method per construction
//     step: Chassis, Engine, Wheels, Seats, Paint, Extra.
//   - Director: AssemblyLine — preset recipes (CityCar, HaulTruck,
//     CafeRacer) that drive the same builder steps to produce different
//     representations.
//   - Terminal step: Build() returns the finished Blueprint or the FIRST
//     violation recorded during the chain.
//
// Why
//
//   - A vehicle specification has required parts (chassis, engine),
//     defaulted parts (wheels, seats, paint) and open-ended parts
//     (extras). A positional constructor cannot express that honestly.
//   - Step methods give each constraint a natural place to live: the
//     engine range is checked when the engine is chosen, the wheel
//     minimum when the wheels are chosen.
//
// Error discipline
//
//	The chain never panics and never returns mid-chain. The first
//	violated constraint is recorded; every later step becomes a no-op;
//	Build() surfaces that first violation wrapped with the step name:
//
//	    bp, err := builder.New(vehicle.KindCar).
//	        Chassis("steel monocoque").
//	        Engine(50_000).            // out of range — recorded here
//	        Paint("crimson").          // no-op, chain already failed
//	        Build()                    // err wraps ErrEngineRange
//
// Defaults
//
//   - Wheels default per kind (car 4, truck 6, motorcycle 2, bus 4).
//   - Seats default per kind (car 5, truck 2, motorcycle 1, bus 24).
//   - Paint defaults to DefaultColor ("factory white").
//   - Extras default to none; duplicates are dropped, first occurrence wins.
//
// Errors
//
//   - ErrNoKind       — New was given an unknown vehicle kind.
//   - ErrEmptyChassis — Build without a chassis, or Chassis("").
//   - ErrEngineRange  — engine displacement outside [MinEngineCC, MaxEngineCC].
//   - ErrWheelCount   — wheels below the kind minimum (motorcycles: exactly 2).
//   - ErrSeatCount    — seats outside [MinSeats, MaxSeats].
//
// Complexity: every step is O(1) (Extra is O(extras) for the duplicate
// scan); Build is O(1). The builder is not safe for concurrent use; build
// on one goroutine, share the finished Blueprint freely (it is a value).
package builder
