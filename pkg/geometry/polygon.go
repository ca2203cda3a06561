package geometry

import (
	"fmt"
	"math"
	"sort"

	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/material"
)

// Polygon is a closed, possibly concave polygon with a glass material.
// Vertices are stored counter-clockwise regardless of input winding, so
// edge normals always point outward.
type Polygon struct {
	vertices []vec.Vec2
	mat      *material.Material
}

// NewPolygon creates a polygon from its boundary vertices (no closing
// repeat of the first vertex). Input winding may be either direction.
func NewPolygon(vertices []vec.Vec2, mat *material.Material) *Polygon {
	vs := make([]vec.Vec2, len(vertices))
	copy(vs, vertices)

	// Normalize winding to counter-clockwise (positive signed area).
	if signedArea(vs) < 0 {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}

	return &Polygon{vertices: vs, mat: mat}
}

// Vertices returns the polygon boundary in counter-clockwise order.
func (p *Polygon) Vertices() []vec.Vec2 {
	return p.vertices
}

// Material returns the polygon's glass material.
func (p *Polygon) Material() *material.Material {
	return p.mat
}

// Validate checks that the boundary encloses an unambiguous interior.
func (p *Polygon) Validate() error {
	n := len(p.vertices)
	if n < 3 {
		return fmt.Errorf("polygon: need at least 3 vertices, got %d", n)
	}
	if math.Abs(signedArea(p.vertices)) < tangentTol {
		return fmt.Errorf("polygon: degenerate boundary with zero area")
	}
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if b.Sub(a).Length() < tangentTol {
			return fmt.Errorf("polygon: zero-length edge at vertex %d", i)
		}
	}
	// Non-adjacent edge pairs must not intersect, otherwise inside and
	// outside are ambiguous.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue // adjacent edges share a vertex
			}
			a1, a2 := p.vertices[i], p.vertices[(i+1)%n]
			b1, b2 := p.vertices[j], p.vertices[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return fmt.Errorf("polygon: self-intersecting boundary (edges %d and %d)", i, j)
			}
		}
	}
	return nil
}

// Crossings implements the Shape interface for polygons. Each edge is
// tested with the ray/segment intersection primitive; hits at a shared
// vertex are collapsed so a passage through a vertex is reported once and
// a tangent graze at a vertex is not reported at all.
func (p *Polygon) Crossings(ray core.Ray, tMin, tMax float64) []Crossing {
	n := len(p.vertices)
	var hits []Crossing

	for i := 0; i < n; i++ {
		a := p.vertices[i]
		e := p.vertices[(i+1)%n].Sub(a)

		denom := cross(ray.Dir, e)
		if math.Abs(denom) < tangentTol {
			continue // parallel or collinear edge
		}

		ao := a.Sub(ray.Origin)
		t := cross(ao, e) / denom
		u := cross(ao, ray.Dir) / denom
		if t <= tMin || t >= tMax || u < 0 || u > 1 {
			continue
		}

		// Outward normal: interior is to the left of a CCW edge.
		normal := core.Unit(vec.Vec2{X: e.Y, Y: -e.X})
		kind := Entry
		if core.Dot(ray.Dir, normal) > 0 {
			kind = Exit
		}
		hits = append(hits, Crossing{
			T:        t,
			Kind:     kind,
			Point:    ray.At(t),
			Normal:   normal,
			Material: p.mat,
		})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return collapseCoincident(hits)
}

// Contains reports whether the point is inside the polygon (even-odd rule).
func (p *Polygon) Contains(pt vec.Vec2) bool {
	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// collapseCoincident merges crossings of one shape that fall within
// tolerance of each other. A pair of equal kinds is a vertex passage and
// keeps one crossing; an entry/exit pair is a tangent graze and drops both.
func collapseCoincident(hits []Crossing) []Crossing {
	out := hits[:0]
	for i := 0; i < len(hits); {
		j := i + 1
		for j < len(hits) && hits[j].T-hits[i].T < tangentTol {
			j++
		}
		group := hits[i:j]
		if len(group) == 1 {
			out = append(out, group[0])
		} else {
			entries, exits := 0, 0
			for _, c := range group {
				if c.Kind == Entry {
					entries++
				} else {
					exits++
				}
			}
			// Keep one crossing only when the group agrees on a
			// direction; a mixed group is a graze.
			if entries > 0 && exits == 0 || exits > 0 && entries == 0 {
				out = append(out, group[0])
			}
		}
		i = j
	}
	return out
}

// signedArea returns the signed area of the polygon (positive for CCW).
func signedArea(vs []vec.Vec2) float64 {
	var sum float64
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		sum += cross(a, b)
	}
	return sum / 2
}

// segmentsIntersect reports a proper or touching intersection between
// segments a1-a2 and b1-b2.
func segmentsIntersect(a1, a2, b1, b2 vec.Vec2) bool {
	d1 := cross(b2.Sub(b1), a1.Sub(b1))
	d2 := cross(b2.Sub(b1), a2.Sub(b1))
	d3 := cross(a2.Sub(a1), b1.Sub(a1))
	d4 := cross(a2.Sub(a1), b2.Sub(a1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	// Touching cases: an endpoint lying on the other segment.
	return d1 == 0 && onSegment(b1, b2, a1) ||
		d2 == 0 && onSegment(b1, b2, a2) ||
		d3 == 0 && onSegment(a1, a2, b1) ||
		d4 == 0 && onSegment(a1, a2, b2)
}

// onSegment reports whether p lies within the bounding box of segment a-b
// (callers have already established collinearity).
func onSegment(a, b, p vec.Vec2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
