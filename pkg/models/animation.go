package models

import (
	"github.com/charmbracelet/harmonica"

	"github.com/golangdaddy/highway/pkg/config"
)

// Spring tuning for the optional spring lean
const (
	springFPS       = 60
	springFrequency = 4.0
	springDamping   = 1.0 // critically damped, never overshoots
)

// AnimationState is the per-frame animation clock and smoothed lean
type AnimationState struct {
	Time       float64 // Accumulated seconds of (clamped) frame time
	Ticks      uint64
	LaneOffset float64 // Dash scroll offset in [0, road.DashPeriod)
	Lean       float64 // Smoothed lean, eased toward the pointer's target

	smoother LeanSmoother
}

// NewAnimationState creates a resting animation using the configured lean mode
func NewAnimationState(cfg *config.Config) *AnimationState {
	return &AnimationState{smoother: NewLeanSmoother(cfg)}
}

// StepLean moves Lean one tick toward target
func (a *AnimationState) StepLean(target float64) {
	if a.smoother == nil {
		a.smoother = &EaseSmoother{Factor: config.Default().LeanEase}
	}
	a.Lean = a.smoother.Step(a.Lean, target)
}

// LeanSmoother moves a lean value one tick toward a target
type LeanSmoother interface {
	Step(current, target float64) float64
}

// NewLeanSmoother picks the smoother named by cfg.LeanMode
func NewLeanSmoother(cfg *config.Config) LeanSmoother {
	if cfg.LeanMode == config.LeanModeSpring {
		return NewSpringSmoother()
	}
	return &EaseSmoother{Factor: cfg.LeanEase}
}

// EaseSmoother is exponential easing: current += (target-current)*Factor.
// It runs once per tick regardless of frame time.
type EaseSmoother struct {
	Factor float64
}

func (e *EaseSmoother) Step(current, target float64) float64 {
	return current + (target-current)*e.Factor
}

// SpringSmoother follows the target with a critically damped spring
type SpringSmoother struct {
	spring   harmonica.Spring
	velocity float64
}

// NewSpringSmoother creates a spring stepped at 60 ticks per second
func NewSpringSmoother() *SpringSmoother {
	return &SpringSmoother{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
	}
}

func (s *SpringSmoother) Step(current, target float64) float64 {
	pos, vel := s.spring.Update(current, s.velocity, target)
	s.velocity = vel
	return pos
}
