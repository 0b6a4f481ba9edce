// Package abstractfactory defines the part interfaces, the abstract Factory,
// the Terrain enumeration and the package sentinel errors.
package abstractfactory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTerrain indicates a terrain outside the declared enumeration.
var ErrUnknownTerrain = errors.New("abstractfactory: unknown terrain")

// Terrain selects a part family. The zero value is TerrainUnknown and is
// rejected by ForTerrain.
type Terrain int

const (
	// TerrainUnknown is the zero value; it is rejected by ForTerrain.
	TerrainUnknown Terrain = iota

	// TerrainCity selects the street family.
	TerrainCity

	// TerrainOffroad selects the trail family.
	TerrainOffroad
)

// String renders the Terrain as a stable lowercase word.
func (t Terrain) String() string {
	switch t {
	case TerrainCity:
		return "city"
	case TerrainOffroad:
		return "offroad"
	default:
		return "unknown"
	}
}

// ParseTerrain converts text to a Terrain, case-insensitively, trimming
// surrounding space.
func ParseTerrain(s string) (Terrain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "city":
		return TerrainCity, nil
	case "offroad":
		return TerrainOffroad, nil
	default:
		return TerrainUnknown, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
	}
}

// Engine is the powertrain role of a part family.
type Engine interface {
	// Spec renders the part description, prefixed with the family tag.
	Spec() string

	// KW reports peak power in kilowatts.
	KW() int
}

// Chassis is the frame role of a part family.
type Chassis interface {
	// Spec renders the part description, prefixed with the family tag.
	Spec() string
}

// Tires is the contact-patch role of a part family.
type Tires interface {
	// Spec renders the part description, prefixed with the family tag.
	Spec() string

	// Grip reports the friction coefficient on the family's home surface.
	Grip() float64
}

// Factory manufactures one coherent family of parts. Every part obtained
// from the same Factory carries the same family tag in its Spec.
type Factory interface {
	Engine() Engine
	Chassis() Chassis
	Tires() Tires
}
