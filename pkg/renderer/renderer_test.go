package renderer

import (
	"bytes"
	"image"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/scene"
)

func emptyScene(t *testing.T, bg core.Color) *scene.Scene {
	t.Helper()
	camera, err := scene.NewCamera(vec.Vec2{X: 50, Y: -50}, rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100})
	if err != nil {
		t.Fatalf("NewCamera() error = %v", err)
	}
	sc, err := scene.New(nil, bg, camera)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sc
}

func TestRender_EmptySceneIsBackground(t *testing.T) {
	bg := core.NewColor(0.25, 0.5, 0.75)
	r := New(emptyScene(t, bg), DefaultConfig(), nil)

	fb, stats, err := r.RenderPass(16, 8)
	if err != nil {
		t.Fatalf("RenderPass() error = %v", err)
	}
	if stats.PrimaryRays != 16*8 {
		t.Errorf("Expected %d primary rays, got %d", 16*8, stats.PrimaryRays)
	}

	want := toRGBA(bg)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if got := fb.RGBAAt(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, got, want)
			}
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	// The same scene must produce byte-identical output regardless of
	// worker count or band size.
	render := func(workers, bandRows int) *image.RGBA {
		config := Config{MaxDepth: 8, Workers: workers, BandRows: bandRows}
		r := New(scene.NewDefaultScene(), config, nil)
		fb, _, err := r.RenderPass(64, 48)
		if err != nil {
			t.Fatalf("RenderPass() error = %v", err)
		}
		return fb
	}

	serial := render(1, 48)
	for _, tt := range []struct {
		name     string
		workers  int
		bandRows int
	}{
		{"parallel", 4, 16},
		{"narrow bands", 4, 1},
		{"one band per worker", 2, 24},
	} {
		t.Run(tt.name, func(t *testing.T) {
			parallel := render(tt.workers, tt.bandRows)
			if !bytes.Equal(serial.Pix, parallel.Pix) {
				t.Error("Parallel render differs from serial render")
			}
		})
	}
}

func TestRender_EmptyFramebuffer(t *testing.T) {
	r := New(emptyScene(t, core.White()), DefaultConfig(), nil)
	if _, err := r.Render(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("Expected error for empty framebuffer")
	}
}

func TestRender_OffsetFramebuffer(t *testing.T) {
	// Framebuffers whose bounds do not start at the origin must still be
	// filled completely.
	bg := core.NewColor(0.1, 0.2, 0.3)
	r := New(emptyScene(t, bg), DefaultConfig(), nil)

	fb := image.NewRGBA(image.Rect(10, 20, 18, 24))
	if _, err := r.Render(fb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := toRGBA(bg)
	for y := 20; y < 24; y++ {
		for x := 10; x < 18; x++ {
			if got := fb.RGBAAt(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, got, want)
			}
		}
	}
}

func TestRenderStats(t *testing.T) {
	r := New(scene.NewDefaultScene(), Config{MaxDepth: 4, Workers: 2, BandRows: 8}, nil)
	_, stats, err := r.RenderPass(32, 20)
	if err != nil {
		t.Fatalf("RenderPass() error = %v", err)
	}
	if stats.Width != 32 || stats.Height != 20 {
		t.Errorf("Expected 32x20, got %dx%d", stats.Width, stats.Height)
	}
	if stats.PrimaryRays != 32*20 {
		t.Errorf("Expected %d rays, got %d", 32*20, stats.PrimaryRays)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Color
		expected [3]uint8
	}{
		{"black", core.Black(), [3]uint8{0, 0, 0}},
		{"white", core.White(), [3]uint8{255, 255, 255}},
		{"quarter gamma", core.NewColor(0.25, 0.25, 0.25), [3]uint8{127, 127, 127}},
		{"overbright clamps", core.NewColor(4, 4, 4), [3]uint8{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toRGBA(tt.in)
			if got.R != tt.expected[0] || got.G != tt.expected[1] || got.B != tt.expected[2] {
				t.Errorf("Expected %v, got (%d,%d,%d)", tt.expected, got.R, got.G, got.B)
			}
			if got.A != 255 {
				t.Errorf("Expected opaque alpha, got %d", got.A)
			}
		})
	}
}
