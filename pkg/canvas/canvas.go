// Package canvas is the 2D drawing surface the renderers paint on.
// Every method takes logical coordinates; backends apply the device pixel
// ratio themselves.
package canvas

import (
	"image/color"
	"math"
)

// Canvas is a minimal immediate-mode 2D surface
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillRoundRect(x, y, w, h, r float64, c color.Color)
	FillVerticalGradient(x, y, w, h float64, top, bottom color.Color)
}

// RoundRadius clamps a corner radius to half the smaller side so tiny
// rectangles still produce a valid outline.
func RoundRadius(w, h, r float64) float64 {
	r = math.Min(r, math.Min(w/2, h/2))
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// RGBA builds a non-premultiplied colour from 8-bit channels and a 0..1 alpha,
// the way CSS rgba() is written.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}
