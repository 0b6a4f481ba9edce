// Package vehicle defines the Vehicle record, the Kind and Fuel
// enumerations, constructor options, and the package sentinel errors.
package vehicle

import "errors"

// MinYear is the earliest model year accepted by Validate.
// (The Benz Patent-Motorwagen, 1886, is the customary year zero of the car.)
const MinYear = 1886

// Sentinel errors for vehicle construction and validation.
var (
	// ErrEmptyVIN indicates the vehicle identification number is empty.
	ErrEmptyVIN = errors.New("vehicle: VIN is empty")

	// ErrUnknownKind indicates a kind outside the declared enumeration.
	ErrUnknownKind = errors.New("vehicle: unknown vehicle kind")

	// ErrUnknownFuel indicates a fuel outside the declared enumeration.
	ErrUnknownFuel = errors.New("vehicle: unknown fuel")

	// ErrBadYear indicates a model year before MinYear.
	ErrBadYear = errors.New("vehicle: model year predates the automobile")

	// ErrNegativeMileage indicates a mileage below zero.
	ErrNegativeMileage = errors.New("vehicle: negative mileage")

	// ErrNegativePrice indicates a price below zero.
	ErrNegativePrice = errors.New("vehicle: negative price")
)

// Kind classifies a vehicle. The zero value is KindUnknown and never
// passes Validate; the constructor requires an explicit kind.
type Kind int

const (
	// KindUnknown is the zero value; it is rejected by Validate.
	KindUnknown Kind = iota

	// KindCar is a passenger car.
	KindCar

	// KindTruck is a freight truck.
	KindTruck

	// KindMotorcycle is a two-wheeler.
	KindMotorcycle

	// KindBus is a passenger bus.
	KindBus
)

// Fuel classifies the energy source of a vehicle.
type Fuel int

const (
	// FuelUnknown is the zero value; New defaults to FuelPetrol instead.
	FuelUnknown Fuel = iota

	// FuelPetrol burns gasoline.
	FuelPetrol

	// FuelDiesel burns diesel.
	FuelDiesel

	// FuelElectric runs on a battery.
	FuelElectric

	// FuelHybrid combines combustion and battery drive.
	FuelHybrid
)

// Vehicle is the plain value record every pattern package builds its
// examples on. It holds no behavior beyond formatting and validation;
// copying a Vehicle copies everything.
type Vehicle struct {
	// VIN uniquely identifies the vehicle.
	VIN string

	// Make is the manufacturer name.
	Make string

	// Model is the model name.
	Model string

	// Year is the model year (≥ MinYear).
	Year int

	// Kind classifies the vehicle (car, truck, …).
	Kind Kind

	// Fuel names the energy source.
	Fuel Fuel

	// Mileage is the odometer reading in kilometres.
	Mileage int64

	// Price is the list price in whole currency units.
	Price int64
}

// Option configures a Vehicle during New. Options only assign fields;
// New runs Validate afterwards, so out-of-range values surface as the
// usual sentinel errors rather than being silently clamped.
type Option func(*Vehicle)

// WithFuel sets the energy source (default: FuelPetrol).
func WithFuel(f Fuel) Option {
	return func(v *Vehicle) { v.Fuel = f }
}

// WithMileage sets the odometer reading in kilometres.
func WithMileage(km int64) Option {
	return func(v *Vehicle) { v.Mileage = km }
}

// WithPrice sets the list price in whole currency units.
func WithPrice(price int64) Option {
	return func(v *Vehicle) { v.Price = price }
}
