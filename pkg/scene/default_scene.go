package scene

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
	"github.com/ewpratten/glasscast/pkg/material"
)

// NewDefaultScene builds a small demo scene: a triangle, a circle and a
// thin pane of glass lit from below the viewport window.
func NewDefaultScene() *Scene {
	// Absorbs green and blue, so light through it turns red.
	red := &material.Material{
		Absorption:      core.NewColor(0.02, 0.35, 0.35),
		RefractiveIndex: 1.5,
		Reflectivity:    0.05,
	}
	// Absorbs red and green, so light through it turns blue.
	blue := &material.Material{
		Absorption:      core.NewColor(0.30, 0.18, 0.01),
		RefractiveIndex: 1.3,
		Reflectivity:    0.02,
	}
	// Nearly clear pane with a touch of green.
	pane := &material.Material{
		Absorption:      core.NewColor(0.06, 0.01, 0.06),
		RefractiveIndex: 1.5,
	}

	shapes := []geometry.Shape{
		geometry.NewPolygon([]vec.Vec2{
			{X: 20, Y: 25}, {X: 45, Y: 30}, {X: 30, Y: 60},
		}, red),
		geometry.NewCircle(vec.Vec2{X: 62, Y: 48}, 16, blue),
		geometry.NewPolygon([]vec.Vec2{
			{X: 10, Y: 72}, {X: 90, Y: 72}, {X: 90, Y: 78}, {X: 10, Y: 78},
		}, pane),
	}

	camera, err := NewCamera(
		vec.Vec2{X: 50, Y: -60},
		rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100},
	)
	if err != nil {
		panic(err)
	}

	sc, err := New(shapes, core.NewColor(1.0, 0.97, 0.92), camera)
	if err != nil {
		panic(err)
	}
	return sc
}

// NewOverlapScene builds two overlapping glass circles. The overlap region
// shows the layered-filter behavior: both absorptions apply at once.
func NewOverlapScene() *Scene {
	left := &material.Material{
		Absorption:      core.NewColor(0.00, 0.12, 0.12),
		RefractiveIndex: 1.0,
	}
	right := &material.Material{
		Absorption:      core.NewColor(0.12, 0.12, 0.00),
		RefractiveIndex: 1.0,
	}

	shapes := []geometry.Shape{
		geometry.NewCircle(vec.Vec2{X: 40, Y: 50}, 22, left),
		geometry.NewCircle(vec.Vec2{X: 60, Y: 50}, 22, right),
	}

	camera, err := NewCamera(
		vec.Vec2{X: 50, Y: -200},
		rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100},
	)
	if err != nil {
		panic(err)
	}

	sc, err := New(shapes, core.White(), camera)
	if err != nil {
		panic(err)
	}
	return sc
}
