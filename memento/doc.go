// Package memento teaches the Memento pattern: capturing an object's state
// in an OPAQUE token so it can be restored later, without ever exposing the
// internals to the code that stores the token.
//
// What
//
//   - Originator: Tuning — a vehicle's adjustable setup (suspension height,
//     ECU profile, tire pressure). Only Tuning can read or write its state.
//   - Memento: the opaque snapshot. Its fields are unexported; the caretaker
//     can hold it, stack it, drop it — never open it. Each memento carries a
//     generated snapshot ID and remembers which Tuning it came from.
//   - Caretaker: History — a bounded undo stack (MaxDepth snapshots; the
//     oldest falls off). Save captures, Undo restores the latest and pops.
//
//	Tuning ──Snapshot()──► Memento ──Push──► History (stack, ≤ MaxDepth)
//	   ▲                                        │
//	   └────────────── Undo() ◄─────────────────┘
//
// Why opacity matters
//
//	If the caretaker could see inside the memento, every internal field of
//	Tuning would become public API. Keeping the fields unexported means
//	the snapshot can only flow back into Restore — the type system
//	enforces the pattern's whole point.
//
// Usage
//
//	tun := memento.NewTuning(120, "street", 32.0)
//	h := memento.NewHistory(tun)
//	h.Save()                      // checkpoint
//	tun.SetECUProfile("track")
//	_ = h.Undo()                  // back to "street"
//
// Errors
//
//   - ErrForeignMemento — Restore with a memento from another Tuning.
//   - ErrNoSnapshots    — Undo on an empty history.
//   - ErrNilTuning      — NewHistory without an originator.
//
// Complexity: Snapshot/Restore/Undo are O(1); History holds at most
// MaxDepth mementos.
package memento
