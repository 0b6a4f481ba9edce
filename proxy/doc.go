// Package proxy teaches the Proxy pattern: standing a same-interface
// surrogate in front of an expensive or sensitive object, so access policy
// lives outside both the subject and its callers.
//
// What
//
//   - Subject: Diagnostics — ReadFault(vin) against the engine control unit.
//   - Real subject: ECULink — the expensive thing. Dialing the ECU costs; a
//     Dials counter makes the cost observable in tests.
//   - Virtual proxy: Lazy — defers the dial until the first read, dials AT
//     MOST ONCE, and memoizes per-VIN answers (Hits counts cache service).
//   - Protection proxy: Guarded — bound to a credential at construction;
//     wrong credential means ErrAccessDenied and the real subject is never
//     touched.
//
//	caller ──ReadFault──► Lazy ──(first read only)──► dial ──► ECULink
//	                        │
//	                        └── cached answers, zero extra dials
//
// Why
//
//	The caller writes `diag.ReadFault(vin)` either way. Whether that is a
//	live link, a lazily opened one, or a permission wall is wiring — the
//	same-interface rule means policies stack (Guarded over Lazy) without
//	any call-site change.
//
// Errors
//
//   - ErrUnknownVIN   — the ECU has no record of the VIN.
//   - ErrAccessDenied — Guarded with the wrong credential.
//   - ErrNilSubject   — a proxy constructed over nothing.
//   - dial failures   — surfaced by Lazy as "proxy: dial: ...".
//
// Complexity: cached reads are O(1); the one dial is whatever the link
// costs. Lazy is safe for concurrent use.
package proxy
