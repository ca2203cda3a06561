package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/ewpratten/glasscast/pkg/core"
	"github.com/ewpratten/glasscast/pkg/geometry"
	"github.com/ewpratten/glasscast/pkg/scene"
	"github.com/ewpratten/glasscast/pkg/tracer"
)

// Scene interface to avoid depending on the concrete scene type
type Scene interface {
	Camera() *scene.Camera
	Background() core.Color
	Shapes() []geometry.Shape
}

// Config contains rendering configuration
type Config struct {
	MaxDepth int // maximum ray bounce depth, applied uniformly
	Workers  int // parallel workers; <= 0 means one per CPU
	BandRows int // rows per work unit
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 12,
		Workers:  0,
		BandRows: 16,
	}
}

// RenderStats summarizes one completed render pass.
type RenderStats struct {
	Width, Height int
	PrimaryRays   int
	Workers       int
	Elapsed       time.Duration
}

// Renderer casts one primary ray per pixel of a caller-provided framebuffer
// and writes the resulting colors. Pixel evaluations share only the
// immutable scene, so they run on parallel workers without locking.
type Renderer struct {
	scene  Scene
	tracer *tracer.PathTracer
	config Config
	logger core.Logger
}

// New creates a renderer for the scene. logger may be nil.
func New(s Scene, config Config, logger core.Logger) *Renderer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultConfig().MaxDepth
	}
	if config.BandRows <= 0 {
		config.BandRows = DefaultConfig().BandRows
	}
	return &Renderer{
		scene:  s,
		tracer: tracer.NewPathTracer(s),
		config: config,
		logger: logger,
	}
}

// Render fills the caller-provided framebuffer, one primary ray per pixel.
// The scene is read-only for the duration of the pass; every pixel receives
// a color.
func (r *Renderer) Render(fb *image.RGBA) (RenderStats, error) {
	bounds := fb.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return RenderStats{}, fmt.Errorf("renderer: empty framebuffer %v", bounds)
	}

	start := time.Now()
	maxTasks := (height + r.config.BandRows - 1) / r.config.BandRows
	pool := newWorkerPool(r.config.Workers, maxTasks, func(task bandTask) bandResult {
		return r.renderBand(fb, width, height, task)
	})
	pool.start()

	tasks := 0
	for y0 := 0; y0 < height; y0 += r.config.BandRows {
		y1 := min(y0+r.config.BandRows, height)
		pool.submit(bandTask{id: tasks, y0: y0, y1: y1})
		tasks++
	}
	pool.stop()

	stats := RenderStats{Width: width, Height: height, Workers: pool.numWorkers}
	for i := 0; i < tasks; i++ {
		result, ok := pool.result()
		if !ok {
			break
		}
		stats.PrimaryRays += result.rays
	}
	stats.Elapsed = time.Since(start)

	if r.logger != nil {
		r.logger.Printf("render: %dx%d, %d rays, %d workers, %v",
			width, height, stats.PrimaryRays, stats.Workers, stats.Elapsed)
	}
	return stats, nil
}

// RenderPass allocates a framebuffer of the given size and renders into it.
func (r *Renderer) RenderPass(width, height int) (*image.RGBA, RenderStats, error) {
	fb := image.NewRGBA(image.Rect(0, 0, width, height))
	stats, err := r.Render(fb)
	return fb, stats, err
}

// renderBand renders the rows [y0, y1). Bands are disjoint, so writing to
// the shared framebuffer needs no locking.
func (r *Renderer) renderBand(fb *image.RGBA, width, height int, task bandTask) bandResult {
	camera := r.scene.Camera()
	origin := fb.Bounds().Min
	rays := 0

	for y := task.y0; y < task.y1; y++ {
		for x := 0; x < width; x++ {
			s := (float64(x) + 0.5) / float64(width)
			// Image rows grow downward; the viewport's y axis grows
			// upward.
			t := (float64(height-1-y) + 0.5) / float64(height)

			ray := camera.GetRay(s, t, r.config.MaxDepth)
			pixel := r.tracer.Trace(ray)
			rays++

			fb.SetRGBA(origin.X+x, origin.Y+y, toRGBA(pixel))
		}
	}
	return bandResult{id: task.id, rays: rays}
}

// toRGBA converts a linear color to RGBA with gamma correction and clamping
func toRGBA(c core.Color) color.RGBA {
	c = c.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}
