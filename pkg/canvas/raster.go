package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so a quarter circle is closely matched
const kappa = 0.5522847498

// Raster is a software Canvas over an image.RGBA, used by the headless
// frame renderer and by tests that inspect pixels.
type Raster struct {
	img   *image.RGBA
	scale float32
	z     *vector.Rasterizer
}

// NewRaster allocates a backing image of the given device-pixel size
func NewRaster(width, height int, scale float64) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if scale <= 0 {
		scale = 1
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		scale: float32(scale),
		z:     vector.NewRasterizer(width, height),
	}
}

// Image exposes the backing pixels
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.begin()
	r.rect(float32(x), float32(y), float32(x+w), float32(y+h))
	r.paint(c)
}

func (r *Raster) StrokeRect(x, y, w, h, width float64, c color.Color) {
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	hw := float32(width / 2)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	r.begin()
	r.rect(x0-hw, y0-hw, x1+hw, y0+hw) // top
	r.rect(x0-hw, y1-hw, x1+hw, y1+hw) // bottom
	r.rect(x0-hw, y0+hw, x0+hw, y1-hw) // left
	r.rect(x1-hw, y0+hw, x1+hw, y1-hw) // right
	r.paint(c)
}

func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// unit normal scaled to half the stroke width
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	r.begin()
	r.moveTo(float32(x0+nx), float32(y0+ny))
	r.lineTo(float32(x1+nx), float32(y1+ny))
	r.lineTo(float32(x1-nx), float32(y1-ny))
	r.lineTo(float32(x0-nx), float32(y0-ny))
	r.z.ClosePath()
	r.paint(c)
}

func (r *Raster) FillRoundRect(x, y, w, h, radius float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rr := float32(RoundRadius(w, h, radius))
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	k := rr * kappa

	r.begin()
	r.moveTo(x0+rr, y0)
	r.lineTo(x1-rr, y0)
	r.cubeTo(x1-rr+k, y0, x1, y0+rr-k, x1, y0+rr)
	r.lineTo(x1, y1-rr)
	r.cubeTo(x1, y1-rr+k, x1-rr+k, y1, x1-rr, y1)
	r.lineTo(x0+rr, y1)
	r.cubeTo(x0+rr-k, y1, x0, y1-rr+k, x0, y1-rr)
	r.lineTo(x0, y0+rr)
	r.cubeTo(x0, y0+rr-k, x0+rr-k, y0, x0+rr, y0)
	r.z.ClosePath()
	r.paint(c)
}

func (r *Raster) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	k := float64(r.scale)
	area := image.Rect(
		int(math.Floor(x*k)), int(math.Floor(y*k)),
		int(math.Ceil((x+w)*k)), int(math.Ceil((y+h)*k)),
	).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}

	tc, ta := splitAlpha(top)
	bc, ba := splitAlpha(bottom)
	span := h * k
	for py := area.Min.Y; py < area.Max.Y; py++ {
		f := math.Max(0, math.Min(1, (float64(py)+0.5-y*k)/span))
		cr, cg, cb := tc.BlendRgb(bc, f).RGB255()
		row := color.NRGBA{cr, cg, cb, uint8(math.Round((ta + (ba-ta)*f) * 255))}
		line := image.Rect(area.Min.X, py, area.Max.X, py+1)
		draw.Draw(r.img, line, image.NewUniform(row), image.Point{}, draw.Over)
	}
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c color.Color) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Raster) rect(x0, y0, x1, y1 float32) {
	r.moveTo(x0, y0)
	r.lineTo(x1, y0)
	r.lineTo(x1, y1)
	r.lineTo(x0, y1)
	r.z.ClosePath()
}

func (r *Raster) moveTo(x, y float32) {
	r.z.MoveTo(x*r.scale, y*r.scale)
}

func (r *Raster) lineTo(x, y float32) {
	r.z.LineTo(x*r.scale, y*r.scale)
}

func (r *Raster) cubeTo(bx, by, cx, cy, dx, dy float32) {
	s := r.scale
	r.z.CubeTo(bx*s, by*s, cx*s, cy*s, dx*s, dy*s)
}

// splitAlpha separates a colour into its straight RGB and alpha in [0, 1].
// A transparent NRGBA keeps its RGB so gradients fade from the right hue.
func splitAlpha(c color.Color) (colorful.Color, float64) {
	if n, ok := c.(color.NRGBA); ok {
		return colorful.Color{
			R: float64(n.R) / 0xff,
			G: float64(n.G) / 0xff,
			B: float64(n.B) / 0xff,
		}, float64(n.A) / 0xff
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return colorful.Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}, float64(n.A) / 0xffff
}
