package core

import "seehuhn.de/go/geom/vec"

// Scalar helpers over the geometry capability's vec.Vec2. The capability
// provides the vector type and its arithmetic; these cover the handful of
// operations it does not export.

// Dot returns the dot product of two vectors
func Dot(a, b vec.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Unit returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func Unit(v vec.Vec2) vec.Vec2 {
	length := v.Length()
	if length == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / length)
}

// Perp returns the vector rotated 90° counter-clockwise
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
