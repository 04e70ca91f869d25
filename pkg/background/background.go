package background

import (
	"image/color"

	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/golangdaddy/highway/pkg/viewport"
)

// Backdrop paints the vertical night-sky gradient behind the road
type Backdrop struct {
	Top    color.Color
	Bottom color.Color
}

// NewBackdrop creates the default backdrop: transparent at the top fading to
// a dark translucent navy at the bottom, so the host page shows through.
func NewBackdrop() *Backdrop {
	return &Backdrop{
		Top:    canvas.RGBA(10, 14, 26, 0),
		Bottom: canvas.RGBA(10, 14, 26, 0.55),
	}
}

// Draw fills the whole viewport with the gradient
func (b *Backdrop) Draw(c canvas.Canvas, vp *viewport.Viewport) {
	c.FillVerticalGradient(0, 0, vp.Width, vp.Height, b.Top, b.Bottom)
}
