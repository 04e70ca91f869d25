package canvas

import "image/color"

// Op names a recorded drawing call
type Op string

const (
	OpClear     Op = "clear"
	OpFillRect  Op = "fillRect"
	OpStroke    Op = "strokeRect"
	OpLine      Op = "line"
	OpRoundRect Op = "roundRect"
	OpGradient  Op = "gradient"
)

// Call is one recorded drawing call
type Call struct {
	Op         Op
	X, Y, W, H float64 // rect ops; lines use X,Y -> W,H as the end point
	Width      float64 // stroke width
	Radius     float64 // clamped corner radius
	Color      color.Color
	Bottom     color.Color // gradient only
}

// Recorder is a Canvas that keeps every call instead of drawing.
// It lets renderers be checked without a GPU.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStroke, X: x, Y: y, W: w, H: h, Width: width, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X: x0, Y: y0, W: x1, H: y1, Width: width, Color: c})
}

func (r *Recorder) FillRoundRect(x, y, w, h, radius float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpRoundRect, X: x, Y: y, W: w, H: h, Radius: RoundRadius(w, h, radius), Color: c})
}

func (r *Recorder) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpGradient, X: x, Y: y, W: w, H: h, Color: top, Bottom: bottom})
}

// Count returns how many calls of the given kind were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of the given kind, in order
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
