package tracer

import (
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
	"github.com/ewpratten/glasscast/pkg/material"
)

// Scene is the read-only view of a scene the tracer needs. Declared here
// to avoid importing the scene package.
type Scene interface {
	Shapes() []geometry.Shape
	Background() core.Color
}

// activeEntry records one material the ray is currently inside of,
// together with the shape it belongs to. Entries are ordered by entry
// time, most recent last.
type activeEntry struct {
	shape int
	mat   *material.Material
}

// PathTracer walks a ray through the scene's glass, folding span
// absorptions into a transmittance filter and branching into reflected
// children at interfaces. It holds no mutable state, so one instance can
// serve any number of goroutines.
type PathTracer struct {
	shapes     []geometry.Shape
	background core.Color
}

// NewPathTracer creates a path tracer for the given scene.
func NewPathTracer(s Scene) *PathTracer {
	return &PathTracer{shapes: s.Shapes(), background: s.Background()}
}

// Trace returns the color the ray delivers: the background light filtered
// by every material span along the ray's transmitted and reflected paths,
// scaled by the ray's carried color. A ray that meets no glass returns the
// ray's carried color times the background, exactly.
func (pt *PathTracer) Trace(ray core.Ray) core.Color {
	return ray.Color.Mul(pt.trace(ray.Origin, ray.Dir, pt.activeAt(ray.Origin), ray.Depth))
}

// trace evaluates one straight leg of the path: attenuate over the span up
// to the first interface, apply refraction/reflection there, and recurse.
// Both the transmitted and the reflected continuation carry depth-1, so
// the recursion is bounded by the ray's bounce budget.
func (pt *PathTracer) trace(origin, dir vec.Vec2, active []activeEntry, depth int) core.Color {
	if depth <= 0 {
		return pt.background
	}

	ray := core.NewRay(origin, dir, depth)
	dir = ray.Dir
	crossings := Crossings(pt.shapes, ray, SelfHitEpsilon, FarLimit)
	if len(crossings) == 0 {
		// The ray leaves the scene; the background light arrives
		// unmodified on this leg.
		return pt.background
	}

	// Coincident boundaries (touching or identical shapes) form one
	// interface group and are processed in order at the same point.
	group := crossings[:1]
	for len(group) < len(crossings) && crossings[len(group)].T-crossings[0].T < coincidentTol {
		group = crossings[:len(group)+1]
	}

	acc := NewAccumulator()
	acc.Span(materials(active), crossings[0].T)
	point := ray.At(crossings[0].T)

	result := core.Black()
	weight := 1.0
	cur := append([]activeEntry(nil), active...)

	for _, c := range group {
		// Orient the surface normal against the incident direction.
		normal := c.Normal
		if core.Dot(dir, normal) > 0 {
			normal = normal.Mul(-1)
		}

		n1 := refractiveIndex(cur)
		incidentSide := cur
		if c.Kind == geometry.Entry {
			cur = append(append([]activeEntry(nil), cur...), activeEntry{shape: c.Shape, mat: c.Material})
		} else {
			cur = remove(cur, c.Shape)
		}
		n2 := refractiveIndex(cur)

		refracted, canRefract := material.Refract(dir, normal, n1/n2)

		reflectivity := c.Material.Reflectivity
		if !canRefract {
			// Total internal reflection: only the reflected ray
			// continues.
			reflectivity = 1.0
		}

		if reflectivity > 0 {
			reflected := material.Reflect(dir, normal)
			color := pt.trace(point, reflected, incidentSide, depth-1)
			result = result.Add(color.Scale(weight * reflectivity))
		}
		if reflectivity >= 1 {
			weight = 0
			break
		}
		weight *= 1 - reflectivity
		dir = refracted
	}

	if weight > 0 {
		transmitted := pt.trace(point, dir, cur, depth-1)
		result = result.Add(transmitted.Scale(weight))
	}
	return acc.Resolve(result)
}

// activeAt returns the materials containing the point, in shape insertion
// order. This seeds the active set for rays that originate inside glass.
func (pt *PathTracer) activeAt(p vec.Vec2) []activeEntry {
	var active []activeEntry
	for i, sh := range pt.shapes {
		if sh.Contains(p) {
			active = append(active, activeEntry{shape: i, mat: sh.Material()})
		}
	}
	return active
}

// refractiveIndex returns the index of the medium the ray is currently in:
// the most recently entered still-active material, or 1.0 outside all glass.
func refractiveIndex(active []activeEntry) float64 {
	if len(active) == 0 {
		return 1.0
	}
	return active[len(active)-1].mat.RefractiveIndex
}

// remove drops the most recent entry for the given shape, returning a new
// slice. Removing a shape that is not active is a no-op; that only happens
// for degenerate exit events.
func remove(active []activeEntry, shape int) []activeEntry {
	for i := len(active) - 1; i >= 0; i-- {
		if active[i].shape == shape {
			out := make([]activeEntry, 0, len(active)-1)
			out = append(out, active[:i]...)
			return append(out, active[i+1:]...)
		}
	}
	return active
}

func materials(active []activeEntry) []*material.Material {
	out := make([]*material.Material, len(active))
	for i, e := range active {
		out[i] = e.mat
	}
	return out
}
