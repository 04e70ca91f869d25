package input

import (
	"github.com/golangdaddy/highway/pkg/viewport"
)

// CursorFunc reports the cursor position in backing pixels,
// ebiten.CursorPosition in the windowed build.
type CursorFunc func() (int, int)

// Poller turns a polled cursor into pointer-move events.
// The first poll only records a baseline, like a page that has not seen
// a mousemove yet.
type Poller struct {
	cursor  CursorFunc
	lastX   int
	lastY   int
	started bool
}

// NewPoller creates a poller over the given cursor source
func NewPoller(cursor CursorFunc) *Poller {
	return &Poller{cursor: cursor}
}

// Poll forwards the cursor to the pointer if it moved since the last poll.
// It reports whether a move was delivered.
func (p *Poller) Poll(ptr *Pointer, vp *viewport.Viewport, leanGain float64) bool {
	if p.cursor == nil {
		return false
	}

	cx, cy := p.cursor()
	if !p.started {
		p.lastX, p.lastY, p.started = cx, cy, true
		return false
	}
	if cx == p.lastX && cy == p.lastY {
		return false
	}
	p.lastX, p.lastY = cx, cy

	lx, ly := vp.ToLogical(float64(cx), float64(cy))
	ptr.Move(lx, ly, vp, leanGain)
	return true
}
