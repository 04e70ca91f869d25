package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/game"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/viewport"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "random seed for traffic (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "start with the debug overlay visible (toggle with F3)")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Printf("Starting highway: %d lanes, speed %v, seed %d", cfg.LaneCount, cfg.Speed, cfg.Seed)

	// the real device scale arrives with the first layout
	vp := viewport.New(cfg.MaxPixelRatio)
	vp.Resize(float64(*width), float64(*height), 1)

	s := scene.New(cfg, vp, rand.New(rand.NewSource(cfg.Seed)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("Signal received, stopping")
		s.Stop()
	}()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Highway")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewGame(s, *debug)); err != nil {
		log.Fatal(err)
	}
	log.Println("Highway stopped")
}
