// Package prototype teaches the Prototype pattern: creating new objects by
// CLONING a configured exemplar instead of constructing from scratch, with
// deep copies so clones never share mutable state.
//
// What
//
//   - Prototype: Design — a configured vehicle design (the base record plus
//     an extras list and a telemetry map, both mutable).
//   - Clone() — a DEEP copy: the slice and the map are duplicated, and the
//     clone receives a fresh VIN, because identity must never be cloned.
//   - Catalog — a registry of named prototypes: Register a master design
//     once, Spawn independent copies on demand.
//
//	Register("ambulance", master)
//	    a := Spawn("ambulance")   // deep copy, fresh VIN
//	    b := Spawn("ambulance")   // another deep copy, another VIN
//	    a, b and master are fully independent
//
// Why deep?
//
//	A shallow copy of Design would share the Extras backing array and the
//	Telemetry map; mutating a clone would silently edit the master and
//	every sibling. The clone discipline here is: copy every reference
//	field, regenerate every identity field (the VIN comes from a fresh
//	UUID).
//
// Errors
//
//   - ErrNilDesign      — Register/Clone of a nil design.
//   - ErrDuplicateProto — Register under a name already taken.
//   - ErrUnknownProto   — Spawn of a name nobody registered.
//
// Complexity: Clone is O(extras + telemetry entries); Catalog operations are
// O(1) plus the clone cost. The Catalog is safe for concurrent use.
package prototype
