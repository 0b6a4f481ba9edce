// Package adapter implements the km-telemetry target, the legacy mile
// odometer adaptee, and the two adapter shapes.
package adapter

import "errors"

// ErrNilOdometer indicates Adapt was given a nil instrument.
var ErrNilOdometer = errors.New("adapter: nil odometer")

// KmPerMile is the exact international-mile conversion factor.
const KmPerMile = 1.609344

// Telemetry is the target interface: what the fleet dashboard consumes.
type Telemetry interface {
	// DistanceKm reports the travelled distance in kilometres.
	DistanceKm() float64
}

// MileOdometer is the adaptee: a legacy instrument counting international
// miles. Its interface is fixed — treat it as vendored third-party code.
type MileOdometer struct {
	miles float64
}

// NewMileOdometer returns an instrument pre-set to the given reading.
func NewMileOdometer(miles float64) *MileOdometer {
	return &MileOdometer{miles: miles}
}

// Advance adds miles to the reading.
func (o *MileOdometer) Advance(miles float64) { o.miles += miles }

// Miles reports the reading in international miles.
func (o *MileOdometer) Miles() float64 { return o.miles }

// kmAdapter is the object adapter: it holds the adaptee and converts on
// every read, so the instrument stays the single source of truth.
type kmAdapter struct {
	odo *MileOdometer
}

// DistanceKm converts the instrument's miles to kilometres.
func (a kmAdapter) DistanceKm() float64 { return a.odo.Miles() * KmPerMile }

// Adapt wraps a mile odometer so it satisfies Telemetry. The adapter reads
// through to the live instrument; it never caches.
//
// Complexity: O(1) per read.
func Adapt(o *MileOdometer) (Telemetry, error) {
	if o == nil {
		return nil, ErrNilOdometer
	}

	return kmAdapter{odo: o}, nil
}

// TelemetryFunc adapts a plain function to the Telemetry interface, the way
// http.HandlerFunc adapts a function to http.Handler.
type TelemetryFunc func() float64

// DistanceKm calls the underlying function.
func (f TelemetryFunc) DistanceKm() float64 { return f() }
