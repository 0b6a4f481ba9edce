// Package visitor implements the element hierarchy, the Visitor interface
// and two concrete visitors.
package visitor

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Element is anything a visitor can call on.
type Element interface {
	// Accept performs the second dispatch into the visitor.
	Accept(v Visitor)
}

// Visitor declares one method per element type in the fixed hierarchy.
type Visitor interface {
	VisitCar(c *Car)
	VisitTruck(t *Truck)
	VisitBus(b *Bus)
}

// Car is a passenger-car element.
type Car struct {
	// Vehicle is the underlying record.
	Vehicle vehicle.Vehicle
}

// Accept dispatches to VisitCar.
func (c *Car) Accept(v Visitor) { v.VisitCar(c) }

// Truck is a freight element; its axle count drives the toll surcharge.
type Truck struct {
	// Vehicle is the underlying record.
	Vehicle vehicle.Vehicle

	// Axles is the axle count (tractor plus trailer).
	Axles int
}

// Accept dispatches to VisitTruck.
func (t *Truck) Accept(v Visitor) { v.VisitTruck(t) }

// Bus is a passenger-transport element.
type Bus struct {
	// Vehicle is the underlying record.
	Vehicle vehicle.Vehicle

	// Seats is the passenger capacity.
	Seats int
}

// Accept dispatches to VisitBus.
func (b *Bus) Accept(v Visitor) { v.VisitBus(b) }

// Walk drives every element through one visitor, in order.
//
// Complexity: O(len(elems)).
func Walk(elems []Element, v Visitor) {
	for _, e := range elems {
		e.Accept(v)
	}
}

// Toll tariffs in whole currency units.
const (
	CarToll         = 4
	TruckBaseToll   = 11
	TruckAxleCharge = 3 // per axle beyond the second
	BusToll         = 7
)

// TollCalc totals road tolls: flat tariffs per kind, plus an axle surcharge
// for heavy trucks.
type TollCalc struct {
	// Total is the accumulated toll.
	Total int64
}

// VisitCar charges the flat car tariff.
func (t *TollCalc) VisitCar(*Car) { t.Total += CarToll }

// VisitTruck charges the truck tariff plus the per-axle surcharge.
func (t *TollCalc) VisitTruck(tr *Truck) {
	t.Total += TruckBaseToll
	if tr.Axles > 2 {
		t.Total += int64(tr.Axles-2) * TruckAxleCharge
	}
}

// VisitBus charges the flat bus tariff.
func (t *TollCalc) VisitBus(*Bus) { t.Total += BusToll }

// EmissionsAudit classifies each element into a g/km class and records one
// audit line per element, in visit order.
type EmissionsAudit struct {
	// Lines holds "VIN: class" entries.
	Lines []string
}

// classOf maps fuel to a coarse emissions class.
func classOf(f vehicle.Fuel, heavy bool) string {
	switch {
	case f == vehicle.FuelElectric:
		return "0 g/km"
	case f == vehicle.FuelHybrid:
		return "under 100 g/km"
	case heavy:
		return "over 500 g/km"
	default:
		return "under 200 g/km"
	}
}

// VisitCar audits a car as a light vehicle.
func (a *EmissionsAudit) VisitCar(c *Car) {
	a.Lines = append(a.Lines, fmt.Sprintf("%s: %s", c.Vehicle.VIN, classOf(c.Vehicle.Fuel, false)))
}

// VisitTruck audits a truck as a heavy vehicle.
func (a *EmissionsAudit) VisitTruck(t *Truck) {
	a.Lines = append(a.Lines, fmt.Sprintf("%s: %s", t.Vehicle.VIN, classOf(t.Vehicle.Fuel, true)))
}

// VisitBus audits a bus as a heavy vehicle.
func (a *EmissionsAudit) VisitBus(b *Bus) {
	a.Lines = append(a.Lines, fmt.Sprintf("%s: %s", b.Vehicle.VIN, classOf(b.Vehicle.Fuel, true)))
}
