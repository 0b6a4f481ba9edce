// Package adapter teaches the Adapter pattern: making an existing type with
// the WRONG interface usable where a DIFFERENT interface is expected,
// without touching either side.
//
// What
//
//   - Target: Telemetry — what the fleet dashboard consumes (DistanceKm).
//   - Adaptee: MileOdometer — a legacy imperial instrument exposing Miles.
//     Its shape is fixed; pretend it ships in a vendor package.
//   - Object adapter: Adapt(odometer) wraps the instrument and converts
//     units on every read.
//   - Function adapter: TelemetryFunc — any func() float64 becomes a
//     Telemetry, the http.HandlerFunc idiom in miniature.
//
//	dashboard ──DistanceKm()──► adapter ──Miles()──► MileOdometer
//	                               │
//	                        × KmPerMile (1.609344)
//
// Why
//
//	Neither side can change: the dashboard's interface is published, the
//	instrument is vendored. The adapter is the one small type that knows
//	both shapes and the exact conversion constant, so the mismatch lives
//	in exactly one place.
//
// Errors
//
//   - ErrNilOdometer — Adapt with a nil instrument.
//
// Complexity: every read is O(1); the adapter holds no state of its own.
package adapter
