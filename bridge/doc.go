// Package bridge teaches the Bridge pattern: splitting a type hierarchy
// into an ABSTRACTION axis and an IMPLEMENTATION axis connected by one
// field, so the two vary independently.
//
// What
//
//   - Implementor: Drivetrain (Engage, PeakKW) with concretes Combustion
//     and Electric.
//   - Abstraction: Ride — the body style the customer sees — refined as
//     Sedan and Hauler. Each holds a Drivetrain and delegates through it.
//
//	        abstraction axis          implementor axis
//	        Sedan   Hauler      ×     Combustion   Electric
//
//	four combinations, 2 + 2 types — not 2 × 2 subclasses.
//
// Why
//
//	Without the bridge, every new body style doubles the drivetrain
//	subclasses (ElectricSedan, CombustionSedan, ...). With it, a new body
//	style is one type, a new drivetrain is one type, and every pairing
//	works immediately.
//
// Usage
//
//	s, err := bridge.NewSedan(bridge.Electric{KWh: 77})
//	s.Describe()  // "sedan with electric drivetrain (150 kW)"
//	s.Launch()    // "sedan: silent torque from standstill"
//
// Errors
//
//   - ErrNilDrivetrain — a body constructed without an implementor.
//
// Complexity: all calls O(1); both axes are plain values.
package bridge
