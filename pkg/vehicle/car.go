package vehicle

// Car is one streaming car on the highway.
// X is fixed at spawn; Y grows as the car moves down the screen.
type Car struct {
	Lane     int     // Lane index (0-based, left to right)
	X        float64 // Left edge in logical pixels
	Y        float64 // Top edge in logical pixels, negative while above the viewport
	Width    float64
	Height   float64
	SpeedMul float64 // Multiplier of the lane flow speed
	Glow     float64 // Alpha of the soft glow around the body
}

// Advance moves the car down by speed*SpeedMul*dt
func (c *Car) Advance(speed, dt float64) {
	c.Y += speed * c.SpeedMul * dt
}

// Gone reports whether the car has left the bottom of a viewport of the
// given height, with a margin so the glow is fully out of view.
func (c *Car) Gone(viewportHeight float64) bool {
	return c.Y > viewportHeight+ExitMargin
}

// ExitMargin is how far below the viewport a car travels before it is recycled
const ExitMargin = 120.0
