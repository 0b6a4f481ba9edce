// Package mediator teaches the Mediator pattern: concentrating the
// communication between many colleagues in ONE coordinator, so colleagues
// never reference each other.
//
// What
//
//   - Mediator: Tower — allocates the garage's single service bay.
//   - Colleagues: Radio units, one per vehicle, created by Tower.Join.
//     A radio talks only to the tower; it has no pointer to any peer.
//   - Protocol: RequestBay either grants immediately or queues the unit
//     (FIFO); ReleaseBay hands the bay to the longest-waiting unit. Every
//     decision is delivered back through the mediator into the unit's log.
//
//	unit-A ──request──►┐
//	unit-B ──request──►│  Tower ──grant/queue──► unit logs
//	unit-C ──release──►┘
//	       (no unit ever talks to another unit)
//
// Why
//
//	With n colleagues talking directly, every unit needs to know every
//	other unit's state — n² acquaintances and distributed bookkeeping.
//	The tower owns ALL the bookkeeping (holder, waitlist); a unit only
//	knows how to ask.
//
// Usage
//
//	tw := mediator.NewTower()
//	a, _ := tw.Join("unit-A")
//	b, _ := tw.Join("unit-B")
//	_ = a.RequestBay()   // granted
//	_ = b.RequestBay()   // queued behind A
//	_ = a.ReleaseBay()   // B granted, through the tower
//
// Errors
//
//   - ErrDuplicateUnit — Join with an id already on the frequency.
//   - ErrUnknownUnit   — a radio that never joined (zero value) transmits.
//   - ErrNoBayHeld     — ReleaseBay by a unit that does not hold the bay.
//
// Invariants: at most one holder at any time; waiters are served strictly
// in arrival order. Safe for concurrent use (one mutex in the tower).
package mediator
