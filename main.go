package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/ewpratten/glasscast/pkg/loaders"
	"github.com/ewpratten/glasscast/pkg/renderer"
	"github.com/ewpratten/glasscast/pkg/scene"
	"github.com/ewpratten/glasscast/pkg/viewer"
)

func main() {
	worldPath := flag.String("world", "", "Path to a world JSON file")
	sceneType := flag.String("scene", "default", "Built-in scene when no world file is given: 'default' or 'overlap'")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	depth := flag.Int("depth", 12, "Maximum ray bounce depth")
	supersample := flag.Int("supersample", 1, "Render at N times the size and downscale")
	workers := flag.Int("workers", 0, "Parallel render workers (0 = one per CPU)")
	preview := flag.Bool("preview", false, "Show the render in a window")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("glasscast - subtractive glass raycaster")
		fmt.Println("Usage: glasscast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Built-in scenes:")
		fmt.Println("  default - triangle, circle and a glass pane")
		fmt.Println("  overlap - two overlapping circles showing layered absorption")
		return
	}

	name := *sceneType
	var sc *scene.Scene
	if *worldPath != "" {
		loaded, settings, err := loaders.Load(*worldPath)
		if err != nil {
			log.Fatalf("load world: %v", err)
		}
		sc = loaded
		name = trimExt(filepath.Base(*worldPath))
		if settings.Width > 0 {
			*width = settings.Width
		}
		if settings.Height > 0 {
			*height = settings.Height
		}
		if settings.MaxDepth > 0 {
			*depth = settings.MaxDepth
		}
	} else {
		switch *sceneType {
		case "overlap":
			sc = scene.NewOverlapScene()
		case "default":
			sc = scene.NewDefaultScene()
		default:
			log.Printf("unknown scene type %q, using default", *sceneType)
			sc = scene.NewDefaultScene()
			name = "default"
		}
	}

	if *supersample < 1 {
		*supersample = 1
	}

	config := renderer.Config{MaxDepth: *depth, Workers: *workers}
	r := renderer.New(sc, config, log.Default())

	img, _, err := r.RenderPass(*width**supersample, *height**supersample)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	final := downscale(img, *width, *height)

	outPath := *output
	if outPath == "" {
		outDir := filepath.Join("output", name)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			log.Fatalf("create output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join(outDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := writePNG(outPath, final); err != nil {
		log.Fatalf("save png: %v", err)
	}
	log.Printf("render saved as %s", outPath)

	if *preview {
		viewer.Show("glasscast - "+name, final)
	}
}

// downscale resamples a supersampled render to the target size. When no
// supersampling was requested the image already has the target size.
func downscale(img *image.RGBA, width, height int) *image.RGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
