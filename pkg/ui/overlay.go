package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/highway/pkg/models"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the debug readout in the top-left corner of the screen
type Overlay struct {
	face text.Face
}

// NewOverlay creates a debug overlay using the bundled bitmap font
func NewOverlay() *Overlay {
	return &Overlay{
		face: text.NewGoXFace(bitmapfont.Face),
	}
}

// Draw renders the readout. scale is the device pixel ratio the frame was
// rendered at, so the text stays the same logical size on HiDPI screens.
func (o *Overlay) Draw(screen *ebiten.Image, st *models.SceneState, tps, scale float64) {
	lines := []string{
		fmt.Sprintf("tps %.1f  tick %d", tps, st.Animation.Ticks),
		st.Summary(),
	}

	lineHeight := o.face.Metrics().HAscent + o.face.Metrics().HDescent + 2
	width := 0.0
	for _, l := range lines {
		width = max(width, text.Advance(l, o.face))
	}

	pad := 4.0
	vector.DrawFilledRect(screen, 0, 0,
		float32((width+pad*2)*scale), float32((lineHeight*float64(len(lines))+pad*2)*scale),
		color.RGBA{0, 0, 0, 140}, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(pad, pad+float64(i)*lineHeight)
		op.GeoM.Scale(scale, scale)
		op.ColorScale.ScaleWithColor(color.RGBA{150, 200, 255, 255})
		text.Draw(screen, l, o.face, op)
	}
}
