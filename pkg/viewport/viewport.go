package viewport

import "math"

// Viewport tracks the logical window size and the pixel density used for
// the backing surface. All drawing happens in logical units; Scale maps them
// onto backing pixels.
type Viewport struct {
	Width    float64 // Logical (CSS-like) width
	Height   float64 // Logical height
	Scale    float64 // Device pixel ratio after clamping
	MaxScale float64 // Upper bound for Scale
}

// New creates a viewport capped at maxScale
func New(maxScale float64) *Viewport {
	if !finite(maxScale) || maxScale < 1 {
		maxScale = 1
	}
	return &Viewport{Scale: 1, MaxScale: maxScale}
}

// Resize recomputes the logical size and pixel ratio.
// It reports whether anything changed, so callers can log only real resizes.
func (v *Viewport) Resize(width, height, dpr float64) bool {
	w := math.Floor(sanitize(width))
	h := math.Floor(sanitize(height))

	if !finite(dpr) || dpr <= 0 {
		dpr = 1
	}
	if v.MaxScale >= 1 && dpr > v.MaxScale {
		dpr = v.MaxScale
	}

	changed := w != v.Width || h != v.Height || dpr != v.Scale
	v.Width, v.Height, v.Scale = w, h, dpr
	return changed
}

// BackingSize returns the backing surface size in device pixels, at least 1x1
func (v *Viewport) BackingSize() (int, int) {
	bw := int(math.Floor(v.Width * v.Scale))
	bh := int(math.Floor(v.Height * v.Scale))
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}
	return bw, bh
}

// ToLogical converts a backing-pixel position to logical units
func (v *Viewport) ToLogical(px, py float64) (float64, float64) {
	s := v.Scale
	if s <= 0 {
		s = 1
	}
	return px / s, py / s
}

func sanitize(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
