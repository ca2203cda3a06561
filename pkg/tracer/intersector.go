package tracer

import (
	"sort"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
)

const (
	// SelfHitEpsilon excludes crossings at the surface a child ray
	// originates on.
	SelfHitEpsilon = 1e-7

	// FarLimit bounds the crossing search along any ray.
	FarLimit = 1e4

	// coincidentTol groups crossings from different shapes that sit at
	// the same distance along a ray (touching boundaries).
	coincidentTol = 1e-9
)

// Crossings enumerates every boundary crossing along the ray with
// tMin < t < tMax across all shapes, sorted by t ascending. Coincident t
// values break ties by shape insertion order, so the sequence is
// deterministic across runs. A zero-length direction yields no crossings.
func Crossings(shapes []geometry.Shape, ray core.Ray, tMin, tMax float64) []geometry.Crossing {
	if ray.Dir.Length() == 0 {
		return nil
	}

	var out []geometry.Crossing
	for i, sh := range shapes {
		cs := sh.Crossings(ray, tMin, tMax)
		for k := range cs {
			cs[k].Shape = i
		}
		out = append(out, cs...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].T != out[j].T {
			return out[i].T < out[j].T
		}
		return out[i].Shape < out[j].Shape
	})
	return out
}
