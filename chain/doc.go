// Package chain teaches the Chain of Responsibility pattern: passing a
// request along a line of handlers until one of them is capable, so the
// sender never knows (or cares) who resolved it.
//
// What
//
//   - Request: Issue — a vehicle problem with a Severity (minor, major,
//     recall).
//   - Handler: Handle(Issue) (resolution, error). A handler that cannot
//     help answers ErrBeyondCapability, which is the "pass it on" signal.
//   - Concretes: Mechanic (minor only), Workshop (up to major),
//     Manufacturer (everything, recalls included).
//   - Chain(handlers...) links the list: first capable handler wins; if the
//     issue falls off the end, ErrUnhandled.
//
//	issue ─► mechanic ─pass─► workshop ─pass─► manufacturer
//	             │resolve          │resolve          │resolve
//	             ▼                 ▼                 ▼
//	          answer            answer            answer
//
// Why
//
//	The service desk routing rule ("who fixes what") changes more often
//	than the fix itself. As a chain, the rule IS the handler order — an
//	escalation policy is data, rebuilt in one line, while the sender
//	keeps calling the same Handle.
//
// Usage
//
//	desk := chain.Chain(chain.Mechanic{}, chain.Workshop{}, chain.Manufacturer{})
//	res, err := desk.Handle(chain.Issue{VIN: "X", Severity: chain.Major, Note: "gearbox"})
//
// Errors
//
//   - ErrBeyondCapability — a single handler refusing one issue (the inner
//     pass-along signal; chains absorb it).
//   - ErrUnhandled        — no handler in the chain was capable.
//   - ErrUnknownSeverity  — an issue outside the Severity enumeration.
//
// Complexity: a chain of n handlers resolves in O(n) worst case.
package chain
