// Package loaders reads and writes glasscast world files: the JSON scene
// description the original tool accepted (walls plus a light), extended
// with per-wall materials, a viewport window and render settings.
package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
	"github.com/ewpratten/glasscast/pkg/material"
	"github.com/ewpratten/glasscast/pkg/scene"
)

// World is the on-disk scene description.
type World struct {
	Light    Light    `json:"light"`
	Viewport Rect     `json:"viewport"`
	Walls    []Wall   `json:"walls"`
	Settings Settings `json:"settings,omitempty"`
}

// Light is the ray source: all primary rays start at its position, and its
// color is the light arriving from behind the scene.
type Light struct {
	Position Point `json:"position"`
	Color    Color `json:"color"`
}

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Color is a linear RGB triple.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Rect is an axis-aligned rectangle given by its lower-left corner and size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WallKind enumerates the supported wall geometries.
type WallKind string

const (
	WallPolygon WallKind = "polygon"
	WallCircle  WallKind = "circle"
	WallSegment WallKind = "wall" // thick segment, the original's wall type
)

// Wall is one glass object.
type Wall struct {
	ID   string   `json:"id"`
	Kind WallKind `json:"kind"`

	Points []Point `json:"points,omitempty"` // polygon vertices

	Center *Point  `json:"center,omitempty"` // circle
	Radius float64 `json:"radius,omitempty"`

	From      *Point  `json:"from,omitempty"` // thick segment endpoints
	To        *Point  `json:"to,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`

	Material Material `json:"material"`
}

// Material is the per-wall glass description.
type Material struct {
	Absorption   Color   `json:"absorption"`
	IOR          float64 `json:"ior"`          // defaults to 1.0
	Reflectivity float64 `json:"reflectivity"` // defaults to 0
}

// Settings defines render parameters a world file may pin.
type Settings struct {
	Width    int `json:"width,omitempty"`
	Height   int `json:"height,omitempty"`
	MaxDepth int `json:"max_depth,omitempty"`
}

// Load reads a world file and builds a validated scene from it.
func Load(path string) (*scene.Scene, Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Settings{}, fmt.Errorf("open world: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a world description and builds a validated scene.
func Read(r io.Reader) (*scene.Scene, Settings, error) {
	var w World
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, Settings{}, fmt.Errorf("decode world: %w", err)
	}
	sc, err := Build(&w)
	if err != nil {
		return nil, Settings{}, err
	}
	return sc, w.Settings, nil
}

// Save writes a world description to a JSON file.
func Save(path string, w *World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create world: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	return nil
}

// Build converts a decoded world into a validated, immutable scene.
// Structural problems (duplicate wall ids, malformed geometry, material
// parameters out of range) are rejected here, before any rendering.
func Build(w *World) (*scene.Scene, error) {
	if w.Viewport.Width <= 0 || w.Viewport.Height <= 0 {
		return nil, fmt.Errorf("world: viewport must have positive size, got %gx%g",
			w.Viewport.Width, w.Viewport.Height)
	}

	camera, err := scene.NewCamera(
		vec.Vec2{X: w.Light.Position.X, Y: w.Light.Position.Y},
		rect.Rect{
			LLx: w.Viewport.X,
			LLy: w.Viewport.Y,
			URx: w.Viewport.X + w.Viewport.Width,
			URy: w.Viewport.Y + w.Viewport.Height,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	background := core.NewColor(w.Light.Color.R, w.Light.Color.G, w.Light.Color.B)
	if background == core.Black() {
		background = core.White() // unspecified light defaults to white
	}

	shapes := make([]geometry.Shape, 0, len(w.Walls))
	seen := make(map[string]bool, len(w.Walls))
	for i, wall := range w.Walls {
		if wall.ID != "" {
			if seen[wall.ID] {
				return nil, fmt.Errorf("world: duplicate wall id %q", wall.ID)
			}
			seen[wall.ID] = true
		}

		shape, err := buildWall(&wall)
		if err != nil {
			return nil, fmt.Errorf("world: wall %d (%s): %w", i, wall.ID, err)
		}
		shapes = append(shapes, shape)
	}

	return scene.New(shapes, background, camera)
}

func buildWall(wall *Wall) (geometry.Shape, error) {
	mat, err := buildMaterial(wall.Material)
	if err != nil {
		return nil, err
	}

	switch wall.Kind {
	case WallPolygon:
		if len(wall.Points) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(wall.Points))
		}
		vs := make([]vec.Vec2, len(wall.Points))
		for i, p := range wall.Points {
			vs[i] = vec.Vec2{X: p.X, Y: p.Y}
		}
		return geometry.NewPolygon(vs, mat), nil

	case WallCircle:
		if wall.Center == nil {
			return nil, fmt.Errorf("circle needs a center")
		}
		return geometry.NewCircle(vec.Vec2{X: wall.Center.X, Y: wall.Center.Y}, wall.Radius, mat), nil

	case WallSegment:
		if wall.From == nil || wall.To == nil {
			return nil, fmt.Errorf("wall needs from and to points")
		}
		return buildSegmentWall(wall, mat)

	default:
		return nil, fmt.Errorf("unknown wall kind %q", wall.Kind)
	}
}

// buildSegmentWall expands a thick segment into its quad outline.
func buildSegmentWall(wall *Wall, mat *material.Material) (geometry.Shape, error) {
	from := vec.Vec2{X: wall.From.X, Y: wall.From.Y}
	to := vec.Vec2{X: wall.To.X, Y: wall.To.Y}

	thickness := wall.Thickness
	if thickness <= 0 {
		thickness = 1.0
	}
	axis := to.Sub(from)
	if axis.Length() == 0 {
		return nil, fmt.Errorf("wall has zero length")
	}
	half := core.Perp(core.Unit(axis)).Mul(thickness / 2)

	return geometry.NewPolygon([]vec.Vec2{
		from.Add(half),
		from.Sub(half),
		to.Sub(half),
		to.Add(half),
	}, mat), nil
}

func buildMaterial(m Material) (*material.Material, error) {
	ior := m.IOR
	if ior == 0 {
		ior = 1.0
	}
	return material.New(
		core.NewColor(m.Absorption.R, m.Absorption.G, m.Absorption.B),
		ior,
		m.Reflectivity,
	)
}
