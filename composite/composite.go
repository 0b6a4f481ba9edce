// Package composite implements the Asset component, the Unit leaf and the
// Fleet composite.
package composite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors for tree building.
var (
	// ErrNilAsset is returned by Add(nil).
	ErrNilAsset = errors.New("composite: nil asset")

	// ErrSelfAdd is returned when a fleet is added to itself.
	ErrSelfAdd = errors.New("composite: fleet cannot contain itself")
)

// Asset is the component interface: one vehicle and a whole fleet answer
// the same three questions.
type Asset interface {
	// Units counts the vehicles beneath this asset.
	Units() int

	// Value sums the list prices beneath this asset.
	Value() int64

	// Label names the asset for rendering.
	Label() string
}

// Unit is the leaf: exactly one vehicle.
type Unit struct {
	v vehicle.Vehicle
}

// NewUnit wraps a vehicle as a tree leaf.
func NewUnit(v vehicle.Vehicle) *Unit { return &Unit{v: v} }

// Units is always 1 for a leaf.
func (u *Unit) Units() int { return 1 }

// Value is the vehicle's list price.
func (u *Unit) Value() int64 { return u.v.Price }

// Label is the vehicle's one-line description.
func (u *Unit) Label() string { return u.v.String() }

// Fleet is the composite: a named, ordered group of assets.
type Fleet struct {
	name     string
	children []Asset
}

// NewFleet returns an empty named fleet.
func NewFleet(name string) *Fleet { return &Fleet{name: name} }

// Add appends a child — a Unit or another Fleet — keeping insertion order.
//
// Complexity: O(1).
func (f *Fleet) Add(a Asset) error {
	if a == nil {
		return fmt.Errorf("%w: fleet %q", ErrNilAsset, f.name)
	}
	if a == Asset(f) {
		return fmt.Errorf("%w: %q", ErrSelfAdd, f.name)
	}
	f.children = append(f.children, a)

	return nil
}

// Units counts vehicles through the whole subtree.
//
// Complexity: O(nodes).
func (f *Fleet) Units() int {
	var n int
	for _, c := range f.children {
		n += c.Units()
	}

	return n
}

// Value sums list prices through the whole subtree.
//
// Complexity: O(nodes).
func (f *Fleet) Value() int64 {
	var sum int64
	for _, c := range f.children {
		sum += c.Value()
	}

	return sum
}

// Label is the fleet's name.
func (f *Fleet) Label() string { return f.name }

// Render draws the subtree as an indented sketch, children in insertion
// order.
//
// Complexity: O(nodes).
func (f *Fleet) Render() string {
	var b strings.Builder
	b.WriteString(f.name)
	b.WriteByte('\n')
	f.render(&b, "")

	return b.String()
}

func (f *Fleet) render(b *strings.Builder, prefix string) {
	for i, c := range f.children {
		last := i == len(f.children)-1
		branch, cont := "├─ ", "│  "
		if last {
			branch, cont = "└─ ", "   "
		}
		b.WriteString(prefix + branch + c.Label() + "\n")
		if sub, ok := c.(*Fleet); ok {
			sub.render(b, prefix+cont)
		}
	}
}
