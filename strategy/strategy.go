// Package strategy implements the Estimator strategies and the Planner
// context.
package strategy

import (
	"errors"
	"fmt"
)

// Sentinel errors for trip planning.
var (
	// ErrNoStrategy is returned by Plan when no estimator is set.
	ErrNoStrategy = errors.New("strategy: no estimator set")

	// ErrBadDistance is returned for a negative leg distance.
	ErrBadDistance = errors.New("strategy: negative distance")
)

// Cruise speeds (km/h) and consumptions (L/100km) of the stock policies.
const (
	MotorwaySpeedKmh = 110.0
	MotorwayLPer100  = 8.5

	EcoSpeedKmh = 70.0
	EcoLPer100  = 5.0

	ScenicSpeedKmh = 50.0
	ScenicLPer100  = 6.5
)

// Leg is one estimated stretch of road.
type Leg struct {
	// Hours is the estimated driving time.
	Hours float64

	// FuelL is the estimated fuel burn in litres.
	FuelL float64
}

// Trip is the sum of its legs.
type Trip struct {
	// Legs holds the per-stretch estimates, in input order.
	Legs []Leg

	// Hours is the total driving time.
	Hours float64

	// FuelL is the total fuel burn in litres.
	FuelL float64
}

// Estimator is the strategy interface: one policy for turning distance into
// time and fuel.
type Estimator interface {
	// Estimate prices one leg of the given distance in kilometres.
	Estimate(distKm float64) Leg
}

// EstimatorFunc adapts a plain function to the Estimator interface.
type EstimatorFunc func(distKm float64) Leg

// Estimate calls the underlying function.
func (f EstimatorFunc) Estimate(distKm float64) Leg { return f(distKm) }

// cruise is the shared arithmetic of the stock policies.
func cruise(distKm, speedKmh, lPer100 float64) Leg {
	return Leg{
		Hours: distKm / speedKmh,
		FuelL: distKm * lPer100 / 100,
	}
}

// Motorway favors time over fuel.
type Motorway struct{}

// Estimate prices the leg at motorway speed and consumption.
func (Motorway) Estimate(distKm float64) Leg {
	return cruise(distKm, MotorwaySpeedKmh, MotorwayLPer100)
}

// Eco favors fuel over time.
type Eco struct{}

// Estimate prices the leg at economy speed and consumption.
func (Eco) Estimate(distKm float64) Leg {
	return cruise(distKm, EcoSpeedKmh, EcoLPer100)
}

// Scenic takes the winding road: slow, and the curves cost fuel too.
type Scenic struct{}

// Estimate prices the leg at scenic speed and consumption.
func (Scenic) Estimate(distKm float64) Leg {
	return cruise(distKm, ScenicSpeedKmh, ScenicLPer100)
}

// Planner is the context: it owns trip arithmetic and delegates estimation
// policy to whatever strategy it currently holds.
type Planner struct {
	est Estimator
}

// NewPlanner returns a planner using the given policy (nil is allowed; Plan
// will refuse until SetStrategy provides one).
func NewPlanner(est Estimator) *Planner { return &Planner{est: est} }

// SetStrategy swaps the estimation policy for all later Plan calls.
func (p *Planner) SetStrategy(est Estimator) { p.est = est }

// Plan estimates every leg with the current policy and totals the trip.
//
// Complexity: O(len(stops)).
func (p *Planner) Plan(stops ...float64) (Trip, error) {
	if p.est == nil {
		return Trip{}, ErrNoStrategy
	}

	var trip Trip
	for i, distKm := range stops {
		if distKm < 0 {
			return Trip{}, fmt.Errorf("%w: leg %d (%.1f km)", ErrBadDistance, i, distKm)
		}
		leg := p.est.Estimate(distKm)
		trip.Legs = append(trip.Legs, leg)
		trip.Hours += leg.Hours
		trip.FuelL += leg.FuelL
	}

	return trip, nil
}
