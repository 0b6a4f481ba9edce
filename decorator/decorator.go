// Package decorator implements the Quote component, three option-pack
// decorators and the Wrap composer.
package decorator

import (
	"errors"
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// ErrNilQuote indicates a decorator was asked to wrap a nil component.
var ErrNilQuote = errors.New("decorator: nil quote")

// Surcharges of the three option packs, in whole currency units.
const (
	SportPackCost = 4_500
	TowPackCost   = 2_300
	WarrantyCost  = 1_200
)

// Quote is the component interface: anything that can price itself.
type Quote interface {
	// Cost is the total in whole currency units.
	Cost() int64

	// Description names everything the cost covers.
	Description() string
}

// baseQuote is the concrete component: the vehicle's list price.
type baseQuote struct {
	v vehicle.Vehicle
}

func (b baseQuote) Cost() int64         { return b.v.Price }
func (b baseQuote) Description() string { return b.v.String() }

// Base returns the undecorated quote for a vehicle: its list price under
// its one-line description.
func Base(v vehicle.Vehicle) Quote { return baseQuote{v: v} }

// Decorator wraps a Quote in one more layer. All decorators in this package
// refuse nil components with ErrNilQuote.
type Decorator func(Quote) (Quote, error)

// addon is the one wrapper type behind every concrete decorator.
type addon struct {
	inner Quote
	name  string
	cost  int64
}

func (a addon) Cost() int64         { return a.inner.Cost() + a.cost }
func (a addon) Description() string { return a.inner.Description() + " + " + a.name }

// decorate builds a Decorator for one named surcharge.
func decorate(name string, cost int64) Decorator {
	return func(q Quote) (Quote, error) {
		if q == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilQuote, name)
		}

		return addon{inner: q, name: name, cost: cost}, nil
	}
}

// The three stock option packs.
var (
	// SportPack adds the sport suspension and trim package.
	SportPack = decorate("sport pack", SportPackCost)

	// TowPack adds the tow bar and wiring package.
	TowPack = decorate("tow pack", TowPackCost)

	// Warranty adds the extended warranty.
	Warranty = decorate("warranty", WarrantyCost)
)

// Wrap applies decorators to a base quote left to right, so the first
// decorator is the innermost layer and the description reads in call order.
//
// Complexity: O(len(ds)).
func Wrap(q Quote, ds ...Decorator) (Quote, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: base", ErrNilQuote)
	}

	var err error
	for _, d := range ds {
		if q, err = d(q); err != nil {
			return nil, err
		}
	}

	return q, nil
}
