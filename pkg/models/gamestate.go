package models

import (
	"fmt"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/input"
	"github.com/golangdaddy/highway/pkg/traffic"
	"github.com/golangdaddy/highway/pkg/viewport"
)

// SceneState is everything one highway scene reads and writes per frame.
// Each field group has a single writer: the viewport is written on resize,
// the pointer on pointer moves, animation and traffic by the frame tick.
type SceneState struct {
	Config    *config.Config
	Viewport  *viewport.Viewport
	Pointer   *input.Pointer
	Animation *AnimationState
	Traffic   *traffic.Pool
}

// Summary is a one-line readout of the scene for the debug overlay and logs
func (s *SceneState) Summary() string {
	return fmt.Sprintf("cars %d  lean %+.3f  target %+.3f  dash %.1f  %dx%d@%.2g",
		s.Traffic.Len(), s.Animation.Lean, s.Pointer.TargetLean, s.Animation.LaneOffset,
		int(s.Viewport.Width), int(s.Viewport.Height), s.Viewport.Scale)
}
