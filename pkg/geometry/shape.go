package geometry

import (
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/material"
)

// CrossingKind says whether a ray is entering or leaving a shape's interior
// at a boundary crossing.
type CrossingKind int

const (
	Entry CrossingKind = iota
	Exit
)

func (k CrossingKind) String() string {
	if k == Entry {
		return "entry"
	}
	return "exit"
}

// Crossing is a single boundary-crossing event along a ray.
type Crossing struct {
	T        float64            // distance along the ray
	Kind     CrossingKind       // entering or leaving the shape
	Point    vec.Vec2           // position of the crossing
	Normal   vec.Vec2           // outward unit normal of the boundary
	Shape    int                // index of the shape within the scene
	Material *material.Material // material of the crossed shape
}

// Shape is the atomic intersectable unit: a closed boundary with one
// material attached.
type Shape interface {
	// Crossings returns every boundary crossing along the ray with
	// tMin < t < tMax, ordered by t ascending. Tangent grazes within
	// numeric tolerance are dropped rather than reported twice. The
	// Shape index field is left zero; the intersector stamps it.
	Crossings(ray core.Ray, tMin, tMax float64) []Crossing

	// Contains reports whether the point lies inside the shape.
	Contains(p vec.Vec2) bool

	// Material returns the glass material attached to the shape.
	Material() *material.Material

	// Validate reports a structural problem with the boundary, such as a
	// self-intersecting polygon where inside and outside are ambiguous.
	Validate() error
}

// tangentTol is the tolerance below which two crossings of the same shape
// are considered coincident (a vertex passage or a tangent graze).
const tangentTol = 1e-9

// cross returns the 2D cross product (z component of the 3D cross product)
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
