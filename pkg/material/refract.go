package material

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
)

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n vec.Vec2) vec.Vec2 {
	// r = v - 2*dot(v,n)*n
	return v.Sub(n.Mul(2 * core.Dot(v, n)))
}

// Refract calculates the refraction of a unit vector through an interface
// with normal n using Snell's law. etaiOverEtat is the ratio of the
// refractive index on the incident side to the index on the far side.
// Reports false when the angle exceeds the critical angle (total internal
// reflection), in which case there is no transmitted direction.
func Refract(uv, n vec.Vec2, etaiOverEtat float64) (vec.Vec2, bool) {
	cosTheta := math.Min(-core.Dot(uv, n), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	if etaiOverEtat*sinTheta > 1.0 {
		return vec.Vec2{}, false
	}

	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	parallelLen := math.Sqrt(math.Abs(1.0 - core.Dot(rOutPerp, rOutPerp)))
	rOutParallel := n.Mul(-parallelLen)
	return rOutPerp.Add(rOutParallel), true
}
