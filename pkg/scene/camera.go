package scene

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
)

// Camera maps pixel coordinates onto the scene plane. The viewport is a
// rectangular window in the plane; each pixel corresponds to one point in
// the window, and the primary ray runs from the viewpoint through that
// point. With the viewpoint placed at the light source this renders the
// colored light pattern the glass casts across the window.
type Camera struct {
	viewpoint vec.Vec2
	window    rect.Rect
}

// NewCamera creates a camera from the viewpoint and the viewport window.
func NewCamera(viewpoint vec.Vec2, window rect.Rect) (*Camera, error) {
	if window.URx <= window.LLx || window.URy <= window.LLy {
		return nil, fmt.Errorf("camera: degenerate viewport window %+v", window)
	}
	return &Camera{viewpoint: viewpoint, window: window}, nil
}

// Viewpoint returns the ray origin shared by all primary rays.
func (c *Camera) Viewpoint() vec.Vec2 { return c.viewpoint }

// Window returns the viewport rectangle in scene coordinates.
func (c *Camera) Window() rect.Rect { return c.window }

// GetRay generates the primary ray for viewport coordinates (s, t) with
// 0 <= s,t <= 1, carrying full intensity and the given bounce budget.
// A pixel that coincides with the viewpoint yields a zero direction; the
// tracer resolves that degeneracy to the background color.
func (c *Camera) GetRay(s, t float64, depth int) core.Ray {
	point := vec.Vec2{
		X: c.window.LLx + s*(c.window.URx-c.window.LLx),
		Y: c.window.LLy + t*(c.window.URy-c.window.LLy),
	}
	return core.NewRay(c.viewpoint, point.Sub(c.viewpoint), depth)
}
