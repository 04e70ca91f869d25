package ebitencanvas

import (
	"image"
	"image/color"

	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Screen is a canvas.Canvas backed by an ebiten image whose pixels are
// scale times the logical size.
type Screen struct {
	dst   *ebiten.Image
	scale float32

	// reused between frames
	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScreen wraps dst, mapping logical units to pixels by scale
func NewScreen(dst *ebiten.Image, scale float64) *Screen {
	s := &Screen{}
	s.Reset(dst, scale)
	return s
}

// Reset retargets the canvas, typically at the start of each Draw
func (s *Screen) Reset(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.scale = float32(scale)
}

func (s *Screen) Clear() {
	s.dst.Clear()
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	k := s.scale
	vector.DrawFilledRect(s.dst, float32(x)*k, float32(y)*k, float32(w)*k, float32(h)*k, c, true)
}

func (s *Screen) StrokeRect(x, y, w, h, width float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	k := s.scale
	vector.StrokeRect(s.dst, float32(x)*k, float32(y)*k, float32(w)*k, float32(h)*k, float32(width)*k, c, true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	k := s.scale
	vector.StrokeLine(s.dst, float32(x0)*k, float32(y0)*k, float32(x1)*k, float32(y1)*k, float32(width)*k, c, true)
}

func (s *Screen) FillRoundRect(x, y, w, h, r float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = canvas.RoundRadius(w, h, r)

	k := s.scale
	x0, y0 := float32(x)*k, float32(y)*k
	x1, y1 := float32(x+w)*k, float32(y+h)*k
	rr := float32(r) * k

	s.path = vector.Path{}
	s.path.MoveTo(x0+rr, y0)
	s.path.ArcTo(x1, y0, x1, y1, rr)
	s.path.ArcTo(x1, y1, x0, y1, rr)
	s.path.ArcTo(x0, y1, x0, y0, rr)
	s.path.ArcTo(x0, y0, x1, y0, rr)
	s.path.Close()

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.fill(c)
}

func (s *Screen) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	k := s.scale
	x0, y0 := float32(x)*k, float32(y)*k
	x1, y1 := float32(x+w)*k, float32(y+h)*k

	s.vertices = append(s.vertices[:0],
		vertex(x0, y0, top), vertex(x1, y0, top),
		vertex(x0, y1, bottom), vertex(x1, y1, bottom),
	)
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 3, 2)

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

var _ canvas.Canvas = (*Screen)(nil)

// fill paints the pending vertices in a single colour
func (s *Screen) fill(c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func vertex(x, y float32, c color.Color) ebiten.Vertex {
	r, g, b, a := c.RGBA()
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}
