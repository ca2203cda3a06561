package geometry

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/material"
)

// Circle is an analytic disc boundary with a glass material.
type Circle struct {
	center vec.Vec2
	radius float64
	mat    *material.Material
}

// NewCircle creates a circle shape.
func NewCircle(center vec.Vec2, radius float64, mat *material.Material) *Circle {
	return &Circle{center: center, radius: radius, mat: mat}
}

// Validate checks the circle encloses a real interior.
func (c *Circle) Validate() error {
	if c.radius <= 0 {
		return fmt.Errorf("circle: radius must be positive, got %g", c.radius)
	}
	return nil
}

// Crossings implements the Shape interface for circles. A tangent ray
// (discriminant within tolerance of zero) yields no crossings.
func (c *Circle) Crossings(ray core.Ray, tMin, tMax float64) []Crossing {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Sub(c.center)
	a := core.Dot(ray.Dir, ray.Dir)
	halfB := core.Dot(oc, ray.Dir)
	cc := core.Dot(oc, oc) - c.radius*c.radius

	discriminant := halfB*halfB - a*cc
	if discriminant < tangentTol {
		return nil // miss, or a tangent graze
	}
	sqrtD := math.Sqrt(discriminant)

	var out []Crossing
	for _, t := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		normal := core.Unit(point.Sub(c.center))
		kind := Entry
		if core.Dot(ray.Dir, normal) > 0 {
			kind = Exit
		}
		out = append(out, Crossing{
			T:        t,
			Kind:     kind,
			Point:    point,
			Normal:   normal,
			Material: c.mat,
		})
	}
	return out
}

// Material returns the circle's glass material.
func (c *Circle) Material() *material.Material {
	return c.mat
}

// Contains reports whether the point is inside the circle.
func (c *Circle) Contains(p vec.Vec2) bool {
	return p.Sub(c.center).Length() < c.radius
}
