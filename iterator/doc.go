// Package iterator teaches the Iterator pattern: giving clients sequential
// access to a collection's elements without exposing how the collection
// stores them — and, here, without letting later mutations bleed into a
// traversal already under way.
//
// What
//
//   - Collection: Fleet — an ordered vehicle list (Add, Len).
//   - Iterator: Cursor — Next() advances, Vehicle() reads the current
//     element. The Next-then-read shape is bufio.Scanner's, chosen so the
//     loop reads like any Go scanning loop.
//   - Filtered traversal: FilterKind(k) — a cursor over just the matching
//     vehicles, same protocol.
//
//	cur := fleet.Iterator()
//	for cur.Next() {
//	    v := cur.Vehicle()
//	    ...
//	}
//
// Snapshot isolation
//
//	Iterator() copies the backing slice. A cursor obtained before an Add
//	never sees the new vehicle; the collection is free to grow while
//	reports run. This is the cheap, deterministic answer to the classic
//	"concurrent modification" question — the iterator owns its world.
//
// Invariants: insertion order; an exhausted cursor stays exhausted (Next
// keeps answering false, Vehicle keeps returning the zero record before the
// first Next and after exhaustion).
//
// Complexity: Iterator()/FilterKind() are O(n) (the snapshot copy); Next
// and Vehicle are O(1).
package iterator
