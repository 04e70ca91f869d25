package game

import (
	"log"

	"github.com/golangdaddy/highway/pkg/canvas/ebitencanvas"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/scene"
	"github.com/golangdaddy/highway/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements the ebiten.Game interface around a highway scene.
// The scene is rendered at backing-store resolution; LayoutF reports the
// logical window size times the device scale factor.
type Game struct {
	scene   *scene.Scene
	clock   *scene.FrameClock
	poller  *input.Poller
	canvas  *ebitencanvas.Screen
	overlay *ui.Overlay

	debug bool
}

// NewGame creates a game driving s off the wall clock and the mouse cursor
func NewGame(s *scene.Scene, debug bool) *Game {
	return &Game{
		scene:   s,
		clock:   scene.NewFrameClock(scene.SystemClock{}),
		poller:  input.NewPoller(ebiten.CursorPosition),
		overlay: ui.NewOverlay(),
		debug:   debug,
	}
}

// Update handles input and advances the scene one frame
func (g *Game) Update() error {
	if g.scene.Stopped() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Println("Escape pressed, stopping")
		g.scene.Stop()
		return ebiten.Termination
	}

	st := g.scene.State
	g.poller.Poll(st.Pointer, st.Viewport, st.Config.LeanGain)
	g.scene.Tick(g.clock.Next())
	return nil
}

// Draw renders the scene, plus the debug overlay when enabled
func (g *Game) Draw(screen *ebiten.Image) {
	scale := g.scene.State.Viewport.Scale
	if g.canvas == nil {
		g.canvas = ebitencanvas.NewScreen(screen, scale)
	} else {
		g.canvas.Reset(screen, scale)
	}
	g.scene.Draw(g.canvas)

	if g.debug {
		g.overlay.Draw(screen, g.scene.State, ebiten.ActualTPS(), scale)
	}
}

// Layout is required by ebiten.Game; ebiten prefers LayoutF when present
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF resizes the scene to the window and returns the backing-store size
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (screenWidth, screenHeight float64) {
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	if g.scene.Resize(outsideWidth, outsideHeight, dpr) {
		vp := g.scene.State.Viewport
		log.Printf("Resized to %vx%v at scale %v", vp.Width, vp.Height, vp.Scale)
	}
	w, h := g.scene.State.Viewport.BackingSize()
	return float64(w), float64(h)
}
