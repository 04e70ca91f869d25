package input

import (
	"math"

	"github.com/golangdaddy/highway/pkg/viewport"
)

// Pointer is the latest pointer position, normalized against the viewport
type Pointer struct {
	X          float64 // 0..1 across the viewport, may overshoot briefly
	Y          float64
	TargetLean float64 // steering signal the lean eases toward
}

// NewPointer returns a pointer resting at the centre of the viewport
func NewPointer() *Pointer {
	return &Pointer{X: 0.5, Y: 0.5}
}

// Move records a pointer-move event at logical position (x, y).
// Values are divided by the viewport size without clamping; only the offset
// from the centre matters downstream.
func (p *Pointer) Move(x, y float64, vp *viewport.Viewport, leanGain float64) {
	p.X = x / math.Max(1, vp.Width)
	p.Y = y / math.Max(1, vp.Height)
	p.TargetLean = (p.X - 0.5) * leanGain
}

// Drift is the small horizontal parallax offset applied to cars
func (p *Pointer) Drift() float64 {
	return (p.X - 0.5) * 18
}
