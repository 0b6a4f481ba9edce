// Package templatemethod — two concrete routines demonstrating partial
// override of the BaseRoutine defaults.
package templatemethod

import (
	"errors"
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// ErrTooWorn indicates the full-service inspection rejected the vehicle.
var ErrTooWorn = errors.New("templatemethod: mileage beyond serviceable wear")

// MaxServiceMileage is the odometer ceiling the full-service inspection
// accepts, in kilometres.
const MaxServiceMileage = 400_000

// FullService is the thorough routine: it overrides every step — a real
// inspection with a veto, the full work list, and a dated certificate.
type FullService struct {
	BaseRoutine
}

// Inspect vetoes vehicles worn beyond MaxServiceMileage.
func (FullService) Inspect(v vehicle.Vehicle) error {
	if v.Mileage > MaxServiceMileage {
		return fmt.Errorf("%w: %d km", ErrTooWorn, v.Mileage)
	}

	return nil
}

// Perform runs the full work list.
func (FullService) Perform(v vehicle.Vehicle) (string, error) {
	return fmt.Sprintf("serviced %s: oil, brakes, fluids", v.VIN), nil
}

// Certify issues the full-service certificate.
func (FullService) Certify(v vehicle.Vehicle) string {
	return fmt.Sprintf("full-service certificate for %s (%d)", v.VIN, v.Year)
}

// QuickWash is the minimal routine: it overrides only Perform and inherits
// the no-op inspection and the generic certificate from BaseRoutine.
type QuickWash struct {
	BaseRoutine
}

// Perform runs the vehicle through the wash lane.
func (QuickWash) Perform(v vehicle.Vehicle) (string, error) {
	return "washed " + v.VIN, nil
}
