package geometry

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/material"
)

func TestCircle_Crossings_Miss(t *testing.T) {
	circle := NewCircle(vec.Vec2{X: 0, Y: 0}, 1, material.Clear(1.5))
	ray := core.NewRay(vec.Vec2{X: -5, Y: 3}, vec.Vec2{X: 1, Y: 0}, 1)

	if cs := circle.Crossings(ray, 1e-9, 1000); len(cs) != 0 {
		t.Errorf("Expected miss, got %d crossings", len(cs))
	}
}

func TestCircle_Crossings_EntryExit(t *testing.T) {
	circle := NewCircle(vec.Vec2{X: 0, Y: 0}, 1, material.Clear(1.5))
	ray := core.NewRay(vec.Vec2{X: -5, Y: 0}, vec.Vec2{X: 1, Y: 0}, 1)

	cs := circle.Crossings(ray, 1e-9, 1000)
	if len(cs) != 2 {
		t.Fatalf("Expected 2 crossings, got %d", len(cs))
	}

	entry, exit := cs[0], cs[1]
	if entry.Kind != Entry || exit.Kind != Exit {
		t.Errorf("Expected entry then exit, got %v then %v", entry.Kind, exit.Kind)
	}
	if math.Abs(entry.T-4) > 1e-9 || math.Abs(exit.T-6) > 1e-9 {
		t.Errorf("Expected t=4 and t=6, got %f and %f", entry.T, exit.T)
	}
	if math.Abs(entry.Normal.X+1) > 1e-9 {
		t.Errorf("Expected outward entry normal (-1, 0), got %v", entry.Normal)
	}
	if math.Abs(exit.Normal.X-1) > 1e-9 {
		t.Errorf("Expected outward exit normal (1, 0), got %v", exit.Normal)
	}
}

func TestCircle_Crossings_FromInside(t *testing.T) {
	circle := NewCircle(vec.Vec2{X: 0, Y: 0}, 1, material.Clear(1.5))
	ray := core.NewRay(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, 1)

	cs := circle.Crossings(ray, 1e-9, 1000)
	if len(cs) != 1 {
		t.Fatalf("Expected 1 crossing from inside, got %d", len(cs))
	}
	if cs[0].Kind != Exit || math.Abs(cs[0].T-1) > 1e-9 {
		t.Errorf("Expected exit at t=1, got %v at t=%f", cs[0].Kind, cs[0].T)
	}
}

func TestCircle_Crossings_TangentDropped(t *testing.T) {
	circle := NewCircle(vec.Vec2{X: 0, Y: 0}, 1, material.Clear(1.5))
	ray := core.NewRay(vec.Vec2{X: -5, Y: 1}, vec.Vec2{X: 1, Y: 0}, 1)

	if cs := circle.Crossings(ray, 1e-9, 1000); len(cs) != 0 {
		t.Errorf("Expected tangent ray to be dropped, got %d crossings", len(cs))
	}
}

func TestCircle_Contains(t *testing.T) {
	circle := NewCircle(vec.Vec2{X: 2, Y: 2}, 1, material.Clear(1.5))

	if !circle.Contains(vec.Vec2{X: 2, Y: 2.5}) {
		t.Error("Expected interior point to be inside")
	}
	if circle.Contains(vec.Vec2{X: 4, Y: 2}) {
		t.Error("Expected exterior point to be outside")
	}
}

func TestCircle_Validate(t *testing.T) {
	if err := NewCircle(vec.Vec2{}, 1, material.Clear(1.5)).Validate(); err != nil {
		t.Errorf("Expected valid circle, got %v", err)
	}
	if err := NewCircle(vec.Vec2{}, 0, material.Clear(1.5)).Validate(); err == nil {
		t.Error("Expected error for zero radius")
	}
	if err := NewCircle(vec.Vec2{}, -1, material.Clear(1.5)).Validate(); err == nil {
		t.Error("Expected error for negative radius")
	}
}
