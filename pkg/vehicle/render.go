package vehicle

import (
	"github.com/golangdaddy/highway/pkg/canvas"
)

var (
	bodyColor       = canvas.RGBA(255, 255, 255, 0.10)
	windshieldColor = canvas.RGBA(157, 255, 207, 0.10)
	tailLightColor  = canvas.RGBA(255, 120, 120, 0.18)
)

// Renderer draws cars as soft glowing rounded rectangles
type Renderer struct{}

// NewRenderer creates a car renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders every car back to front, last car in the slice first,
// shifted right by offsetX. offsetX is the road skew plus the pointer drift.
func (r *Renderer) Draw(c canvas.Canvas, cars []Car, offsetX float64) {
	for i := len(cars) - 1; i >= 0; i-- {
		r.DrawCar(c, &cars[i], offsetX)
	}
}

// DrawCar renders one car: glow, body, windshield and two tail lights
func (r *Renderer) DrawCar(c canvas.Canvas, car *Car, offsetX float64) {
	x := car.X + offsetX
	y := car.Y
	w, h := car.Width, car.Height

	// Glow
	c.FillRoundRect(x-6, y-6, w+12, h+12, 10, canvas.RGBA(122, 167, 255, car.Glow))

	// Body
	c.FillRoundRect(x, y, w, h, 10, bodyColor)

	// Windshield
	c.FillRoundRect(x+w*0.12, y+h*0.18, w*0.76, h*0.36, 8, windshieldColor)

	// Tail lights
	c.FillRect(x+6, y+h-8, 10, 4, tailLightColor)
	c.FillRect(x+w-16, y+h-8, 10, 4, tailLightColor)
}
