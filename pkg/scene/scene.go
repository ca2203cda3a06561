package scene

import (
	"fmt"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
)

// StructuralError reports a shape whose boundary is degenerate or
// self-intersecting, making inside/outside ambiguous. It is raised at scene
// construction time only; tracing assumes a validated scene.
type StructuralError struct {
	Shape int // insertion index of the offending shape
	Err   error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("scene: shape %d: %v", e.Shape, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Scene is an ordered collection of glass shapes plus the background light
// color and the camera. It is immutable after construction and safe to read
// from any number of goroutines during a render pass. Shape order is
// insertion order and is used only as a tie-break for coincident crossings.
type Scene struct {
	shapes     []geometry.Shape
	background core.Color
	camera     *Camera
}

// New validates every shape and builds an immutable scene. A shape with an
// ambiguous boundary is rejected wholesale with a StructuralError before
// any rendering can begin.
func New(shapes []geometry.Shape, background core.Color, camera *Camera) (*Scene, error) {
	if camera == nil {
		return nil, fmt.Errorf("scene: camera is required")
	}
	if background.R < 0 || background.G < 0 || background.B < 0 {
		return nil, fmt.Errorf("scene: background light must be non-negative, got %+v", background)
	}
	owned := make([]geometry.Shape, len(shapes))
	copy(owned, shapes)
	for i, sh := range owned {
		if err := sh.Validate(); err != nil {
			return nil, &StructuralError{Shape: i, Err: err}
		}
	}
	return &Scene{shapes: owned, background: background, camera: camera}, nil
}

// Shapes returns the shapes in insertion order. Callers must not modify
// the returned slice.
func (s *Scene) Shapes() []geometry.Shape { return s.shapes }

// Background returns the background light color.
func (s *Scene) Background() core.Color { return s.background }

// Camera returns the scene's viewpoint and viewport.
func (s *Scene) Camera() *Camera { return s.camera }
