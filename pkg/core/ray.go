package core

import "seehuhn.de/go/geom/vec"

// Ray is a ray with an origin, a unit direction, the color it currently
// carries, and its remaining bounce budget. Rays are values: every
// refraction or reflection event produces a fresh Ray rather than mutating
// the parent, so recursive branches never share state.
type Ray struct {
	Origin vec.Vec2
	Dir    vec.Vec2
	Color  Color
	Depth  int
}

// NewRay creates a ray carrying full intensity. The direction is normalized.
func NewRay(origin, dir vec.Vec2, depth int) Ray {
	return Ray{Origin: origin, Dir: Unit(dir), Color: White(), Depth: depth}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) vec.Vec2 {
	return r.Origin.Add(r.Dir.Mul(t))
}
