// Package iterator implements the Fleet collection and its snapshot
// Cursor.
package iterator

import "github.com/boushphong/go-design-patterns/vehicle"

// Fleet is an ordered vehicle collection. The zero value is ready to use.
// Not safe for concurrent use.
type Fleet struct {
	vs []vehicle.Vehicle
}

// Add appends a vehicle, keeping insertion order.
func (f *Fleet) Add(v vehicle.Vehicle) { f.vs = append(f.vs, v) }

// Len reports the current element count.
func (f *Fleet) Len() int { return len(f.vs) }

// Iterator returns a cursor over a snapshot of the current elements.
// Mutations after this call are invisible to the cursor.
//
// Complexity: O(n) for the snapshot.
func (f *Fleet) Iterator() *Cursor {
	snap := make([]vehicle.Vehicle, len(f.vs))
	copy(snap, f.vs)

	return &Cursor{vs: snap}
}

// FilterKind returns a cursor over a snapshot of just the vehicles of the
// given kind, in insertion order.
//
// Complexity: O(n).
func (f *Fleet) FilterKind(k vehicle.Kind) *Cursor {
	var snap []vehicle.Vehicle
	for _, v := range f.vs {
		if v.Kind == k {
			snap = append(snap, v)
		}
	}

	return &Cursor{vs: snap}
}

// Cursor walks a snapshot: Next advances, Vehicle reads. Before the first
// Next and after exhaustion, Vehicle returns the zero record.
type Cursor struct {
	vs  []vehicle.Vehicle
	i   int
	cur vehicle.Vehicle
	ok  bool
}

// Next advances to the following element, reporting false once the
// snapshot is exhausted — and forever after.
func (c *Cursor) Next() bool {
	if c.i >= len(c.vs) {
		c.cur = vehicle.Vehicle{}
		c.ok = false

		return false
	}
	c.cur = c.vs[c.i]
	c.i++
	c.ok = true

	return true
}

// Vehicle returns the element the last successful Next landed on.
func (c *Cursor) Vehicle() vehicle.Vehicle {
	if !c.ok {
		return vehicle.Vehicle{}
	}

	return c.cur
}
