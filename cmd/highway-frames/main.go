package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/viewport"
)

type options struct {
	Config  *config.Config
	Width   float64
	Height  float64
	Scale   float64
	Frames  int
	Step    time.Duration
	Pointer float64 // horizontal pointer position, 0 left to 1 right; <0 leaves it untouched
	OutDir  string
}

// renderFrames steps a scene with a fixed clock and writes one PNG per frame
func renderFrames(opts options) ([]string, error) {
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	vp := viewport.New(opts.Config.MaxPixelRatio)
	vp.Resize(opts.Width, opts.Height, opts.Scale)

	s := scene.New(opts.Config, vp, rand.New(rand.NewSource(opts.Config.Seed)))
	if opts.Pointer >= 0 {
		s.PointerMove(opts.Pointer*vp.Width, vp.Height/2)
	}

	bw, bh := vp.BackingSize()
	r := canvas.NewRaster(bw, bh, vp.Scale)

	clock := scene.NewManualClock(time.Unix(0, 0))
	frames := scene.NewFrameClock(clock)
	frames.Next()

	written := make([]string, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		clock.Advance(opts.Step)
		s.Frame(r, frames.Next())

		filename := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%04d.png", i))
		if err := savePNG(r.Image(), filename); err != nil {
			return written, err
		}
		written = append(written, filename)
	}
	return written, nil
}

func savePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	seed := flag.Int64("seed", 1, "random seed for traffic")
	width := flag.Float64("width", 1280, "logical frame width")
	height := flag.Float64("height", 720, "logical frame height")
	scale := flag.Float64("scale", 1, "device pixel ratio to render at")
	count := flag.Int("frames", 60, "number of frames to render")
	dt := flag.Duration("dt", time.Second/60, "time step between frames")
	pointer := flag.Float64("pointer", -1, "pointer x as a fraction of the width (negative: no pointer)")
	out := flag.String("out", "frames", "output directory")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Seed = *seed

	files, err := renderFrames(options{
		Config:  cfg,
		Width:   *width,
		Height:  *height,
		Scale:   *scale,
		Frames:  *count,
		Step:    *dt,
		Pointer: *pointer,
		OutDir:  *out,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Rendered %d frames to %s", len(files), *out)
}
