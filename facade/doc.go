// Package facade teaches the Facade pattern: one narrow, convenient entry
// point over several subsystems, so the common workflow is one call instead
// of a choreography the caller must know by heart.
//
// What
//
//   - Subsystems (package-local, deliberately small): the inspection lane,
//     the wash bay and the fuel pump. Each has its own narrow method and
//     its own way to fail.
//   - Facade: Garage.FullService(v) — the fixed sequence inspect → wash →
//     fuel, collecting a stage line per success, early-returning on the
//     first failure with the stage name wrapped in.
//
//	FullService(v)
//	    ├─ 1. inspection lane   (worn-out vehicles fail here)
//	    ├─ 2. wash bay          (motorcycles do not fit the rollers)
//	    └─ 3. fuel pump         (no nozzle for electric vehicles)
//
// What a facade is NOT
//
//	It narrows the surface; it must not swallow the failures. Every
//	subsystem error comes back wrapped with its stage ("facade: wash:
//	..."), still matchable with errors.Is — convenience above,
//	truth intact underneath.
//
// Usage
//
//	g := facade.NewGarage()
//	rep, err := g.FullService(v)
//	if errors.Is(err, facade.ErrWashRefused) { ... }
//	rep.Stages // completed stage lines, in order
//
// Errors
//
//   - ErrInspectionFailed — mileage beyond MaxServiceableKm.
//   - ErrWashRefused      — the wash bay cannot take the vehicle kind.
//   - ErrWrongFuel        — the pump has no nozzle for the vehicle's fuel.
//
// Complexity: O(1) per service; the subsystems are stateless.
package facade
