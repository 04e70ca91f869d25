package road

import (
	"math"

	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/golangdaddy/highway/pkg/viewport"
)

// Dash pattern of the lane dividers, in logical pixels
const (
	DashLength = 18.0
	DashGap    = 18.0
	DashPeriod = DashLength + DashGap

	// scrollStep is the fixed per-tick time the dashes advance by. It does
	// not follow the real frame time, so the dash speed follows the tick rate.
	scrollStep = 0.016

	// SkewFactor converts the smoothed lean into a horizontal shift
	SkewFactor = 70.0
)

var (
	surfaceColor = canvas.RGBA(255, 255, 255, 0.04)
	edgeColor    = canvas.RGBA(255, 255, 255, 0.12)
	dividerColor = canvas.RGBA(255, 255, 255, 0.14)
)

// AdvanceScroll moves the dash offset one tick forward at the given speed,
// wrapping within one dash period.
func AdvanceScroll(offset, speed float64) float64 {
	next := math.Mod(offset+speed*scrollStep, DashPeriod)
	if next < 0 || math.IsNaN(next) {
		return 0
	}
	return next
}

// Skew is the horizontal shift shared by the road and the cars
func Skew(lean float64) float64 {
	return lean * SkewFactor
}

// Renderer draws the road surface, its edges and the dashed lane dividers
type Renderer struct{}

// NewRenderer creates a road renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the road for the current viewport.
// lean shifts the whole road sideways, offset scrolls the dashes down.
func (r *Renderer) Draw(c canvas.Canvas, vp *viewport.Viewport, geom Geometry, lean, offset float64) {
	h := vp.Height
	if h <= 0 {
		return
	}
	skew := Skew(lean)
	roadX := geom.RoadX + skew

	// Road surface
	c.FillRect(roadX, 0, geom.RoadWidth, h, surfaceColor)

	// Road edges
	c.StrokeRect(roadX+0.5, 0.5, geom.RoadWidth-1, h-1, 1, edgeColor)

	// Lane dividers, one per interior lane boundary
	for i := 1; i < geom.LaneCount; i++ {
		x := geom.DividerX(i) + skew
		for y := -40.0; y < h+80; y += DashPeriod {
			c.StrokeLine(x, y+offset, x, y+DashLength+offset, 2, dividerColor)
		}
	}
}
