package tracer

import (
	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/material"
)

// Accumulator folds the material spans a ray traverses into a per-channel
// transmittance filter. Glass subtracts light, so the filter only ever
// darkens: it starts at full transmission and is multiplied down span by
// span.
type Accumulator struct {
	filter core.Color
}

// NewAccumulator starts with full transmission on every channel.
func NewAccumulator() *Accumulator {
	return &Accumulator{filter: core.White()}
}

// Span attenuates the filter by one traversed span of length dt with the
// given set of active materials.
func (a *Accumulator) Span(active []*material.Material, dt float64) {
	a.filter = a.filter.Mul(SpanTransmittance(active, dt))
}

// Resolve applies the accumulated filter to the light arriving from beyond
// the folded spans.
func (a *Accumulator) Resolve(light core.Color) core.Color {
	return light.Mul(a.filter)
}

// SpanTransmittance returns the per-channel transmittance of one span of
// length dt with the given materials active. The optical-depth law
// exp(-Σaᵢ·dt) makes overlapping glass compose like stacked filters: two
// materials with absorptions a and b over the same span behave exactly
// like one material with absorption a+b.
func SpanTransmittance(active []*material.Material, dt float64) core.Color {
	var depth core.Color
	for _, m := range active {
		depth = depth.Add(m.Absorption)
	}
	return depth.Scale(-dt).Exp()
}
