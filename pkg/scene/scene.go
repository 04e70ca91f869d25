package scene

import (
	"math/rand"
	"sync/atomic"

	"github.com/golangdaddy/highway/pkg/background"
	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/models"
	"github.com/golangdaddy/highway/pkg/road"
	"github.com/golangdaddy/highway/pkg/traffic"
	"github.com/golangdaddy/highway/pkg/vehicle"
	"github.com/golangdaddy/highway/pkg/viewport"
)

// Scene is the highway animation: state plus the renderers that paint it.
// Tick and Draw can be driven by ebiten, a test, or a fixed-step loop.
type Scene struct {
	State *models.SceneState

	backdrop *background.Backdrop
	road     *road.Renderer
	cars     *vehicle.Renderer

	stopped atomic.Bool
}

// New builds a scene for a viewport that has already been sized.
// The pool is seeded immediately, so the viewport width decides where the
// first cars sit.
func New(cfg *config.Config, vp *viewport.Viewport, rng *rand.Rand) *Scene {
	return &Scene{
		State: &models.SceneState{
			Config:    cfg,
			Viewport:  vp,
			Pointer:   input.NewPointer(),
			Animation: models.NewAnimationState(cfg),
			Traffic:   traffic.NewPool(cfg, vp, rng),
		},
		backdrop: background.NewBackdrop(),
		road:     road.NewRenderer(),
		cars:     vehicle.NewRenderer(),
	}
}

// Resize forwards a resize notification to the viewport
func (s *Scene) Resize(width, height, dpr float64) bool {
	return s.State.Viewport.Resize(width, height, dpr)
}

// PointerMove forwards a pointer-move event in logical coordinates
func (s *Scene) PointerMove(x, y float64) {
	s.State.Pointer.Move(x, y, s.State.Viewport, s.State.Config.LeanGain)
}

// Tick advances the animation by dt seconds (clamped to traffic.MaxStep).
// The dash scroll and the lean easing step once per call whatever dt is.
// Lean is eased here, before Draw, so the road and the cars both use this
// frame's lean rather than the road lagging one frame behind.
func (s *Scene) Tick(dt float64) {
	if s.Stopped() {
		return
	}
	st := s.State
	dt = traffic.ClampStep(dt)

	anim := st.Animation
	anim.Time += dt
	anim.Ticks++
	anim.LaneOffset = road.AdvanceScroll(anim.LaneOffset, st.Config.Speed)
	anim.StepLean(st.Pointer.TargetLean)

	st.Traffic.Advance(dt)
	st.Traffic.Reap()
}

// Draw paints the current state: backdrop, road, then cars
func (s *Scene) Draw(c canvas.Canvas) {
	st := s.State
	vp := st.Viewport
	anim := st.Animation

	c.Clear()
	s.backdrop.Draw(c, vp)

	geom := road.NewGeometry(vp.Width, st.Config.LaneCount)
	s.road.Draw(c, vp, geom, anim.Lean, anim.LaneOffset)
	s.cars.Draw(c, st.Traffic.Cars(), s.CarOffset())
}

// Frame runs one Tick followed by one Draw
func (s *Scene) Frame(c canvas.Canvas, dt float64) {
	s.Tick(dt)
	s.Draw(c)
}

// CarOffset is the horizontal shift applied to every car this frame:
// the road skew plus the pointer drift.
func (s *Scene) CarOffset() float64 {
	return road.Skew(s.State.Animation.Lean) + s.State.Pointer.Drift()
}

// Stop freezes the scene; hosts use Stopped to tear their loop down.
// It is safe to call from any goroutine.
func (s *Scene) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called
func (s *Scene) Stopped() bool {
	return s.stopped.Load()
}
