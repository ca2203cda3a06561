package material

import (
	"fmt"

	"github.com/ewpratten/glasscast/pkg/core"
)

// Material describes one piece of glass: how strongly it absorbs each color
// channel per unit path length, its refractive index, and how much of the
// incident light each interface reflects. Immutable once constructed.
type Material struct {
	Absorption      core.Color // per-channel absorption coefficient, >= 0
	RefractiveIndex float64    // >= 1.0 (1.0 behaves like the ambient medium)
	Reflectivity    float64    // in [0,1]; fraction reflected at each interface
}

// New creates a material, rejecting parameters outside their valid ranges.
func New(absorption core.Color, refractiveIndex, reflectivity float64) (*Material, error) {
	if absorption.R < 0 || absorption.G < 0 || absorption.B < 0 {
		return nil, fmt.Errorf("material: absorption must be non-negative, got %+v", absorption)
	}
	if refractiveIndex < 1.0 {
		return nil, fmt.Errorf("material: refractive index must be >= 1.0, got %g", refractiveIndex)
	}
	if reflectivity < 0 || reflectivity > 1 {
		return nil, fmt.Errorf("material: reflectivity must be in [0,1], got %g", reflectivity)
	}
	return &Material{
		Absorption:      absorption,
		RefractiveIndex: refractiveIndex,
		Reflectivity:    reflectivity,
	}, nil
}

// Clear returns a non-absorbing, non-reflecting material with the given
// refractive index. Useful for tests and demo scenes.
func Clear(refractiveIndex float64) *Material {
	return &Material{RefractiveIndex: refractiveIndex}
}
