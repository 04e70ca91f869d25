package road

import (
	"math"
	"testing"

	"github.com/golangdaddy/highway/pkg/canvas"
	"github.com/golangdaddy/highway/pkg/viewport"
)

func TestLaneWidthClamp(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{0, 80},
		{800, 80},
		{1000, 80},
		{1250, 100},
		{1500, 120},
		{3840, 120},
	}
	for _, tt := range tests {
		if got := LaneWidth(tt.width); got != tt.want {
			t.Errorf("LaneWidth(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestGeometryCentred(t *testing.T) {
	for w := 0.0; w <= 4000; w += 137 {
		g := NewGeometry(w, 4)
		if g.RoadWidth != 4*g.LaneWidth {
			t.Errorf("W=%v: road width %v is not 4 lanes of %v", w, g.RoadWidth, g.LaneWidth)
		}
		if math.Abs(g.RoadX-(w-g.RoadWidth)/2) > 1e-9 {
			t.Errorf("W=%v: road not centred, RoadX=%v", w, g.RoadX)
		}
	}
}

func TestGeometryScenario800(t *testing.T) {
	g := NewGeometry(800, 4)
	if g.LaneWidth != 80 || g.RoadWidth != 320 || g.RoadX != 240 {
		t.Errorf("Unexpected geometry %+v", g)
	}
	for lane := 0; lane < 4; lane++ {
		want := 240 + 80*float64(lane) + 9.6
		if got := g.CarX(lane); math.Abs(got-want) > 1e-9 {
			t.Errorf("CarX(%d) = %v, want %v", lane, got, want)
		}
	}
}

func TestGeometryRoundTrip(t *testing.T) {
	vp := viewport.New(2)
	vp.Resize(1366, 768, 1)
	before := NewGeometry(vp.Width, 4)

	vp.Resize(640, 480, 2)
	_ = NewGeometry(vp.Width, 4)
	vp.Resize(1366, 768, 1)
	after := NewGeometry(vp.Width, 4)

	if before != after {
		t.Errorf("Geometry drifted across resizes: %+v vs %+v", before, after)
	}
}

func TestAdvanceScrollWraps(t *testing.T) {
	offset := 0.0
	for i := 0; i < 1000; i++ {
		offset = AdvanceScroll(offset, 180)
		if offset < 0 || offset >= DashPeriod {
			t.Fatalf("Offset %v escaped [0, %v) at step %d", offset, DashPeriod, i)
		}
	}

	// one tick at speed 180 is 2.88px, independent of frame time
	if got := AdvanceScroll(0, 180); math.Abs(got-2.88) > 1e-9 {
		t.Errorf("Expected 2.88px per tick, got %v", got)
	}
	if got := AdvanceScroll(35, 180); math.Abs(got-1.88) > 1e-9 {
		t.Errorf("Expected wrap to 1.88, got %v", got)
	}
}

func TestRendererDraw(t *testing.T) {
	vp := viewport.New(2)
	vp.Resize(800, 600, 1)
	g := NewGeometry(vp.Width, 4)

	rec := &canvas.Recorder{}
	NewRenderer().Draw(rec, vp, g, 0, 0)

	fills := rec.Filter(canvas.OpFillRect)
	if len(fills) != 1 || fills[0].X != 240 || fills[0].W != 320 || fills[0].H != 600 {
		t.Errorf("Unexpected road surface %+v", fills)
	}
	strokes := rec.Filter(canvas.OpStroke)
	if len(strokes) != 1 || strokes[0].X != 240.5 || strokes[0].Y != 0.5 || strokes[0].W != 319 {
		t.Errorf("Unexpected road edge %+v", strokes)
	}

	// 3 dividers, dashes for y in [-40, 680) step 36 -> 20 dashes each
	if got := rec.Count(canvas.OpLine); got != 3*20 {
		t.Errorf("Expected 60 dashes, got %d", got)
	}
	first := rec.Filter(canvas.OpLine)[0]
	if first.X != 320 || first.Y != -40 || first.H != -22 {
		t.Errorf("Unexpected first dash %+v", first)
	}
}

func TestRendererSkewAndOffset(t *testing.T) {
	vp := viewport.New(2)
	vp.Resize(800, 600, 1)
	g := NewGeometry(vp.Width, 4)

	rec := &canvas.Recorder{}
	NewRenderer().Draw(rec, vp, g, 0.2, 10)

	if x := rec.Filter(canvas.OpFillRect)[0].X; x != 254 {
		t.Errorf("Expected road shifted by 14px, got X=%v", x)
	}
	dash := rec.Filter(canvas.OpLine)[0]
	if dash.X != 334 || dash.Y != -30 {
		t.Errorf("Expected skewed, scrolled dash, got %+v", dash)
	}
}

func TestRendererEmptyViewport(t *testing.T) {
	vp := viewport.New(2)
	rec := &canvas.Recorder{}
	NewRenderer().Draw(rec, vp, NewGeometry(0, 4), 0, 0)
	if len(rec.Calls) != 0 {
		t.Errorf("Expected nothing drawn on an empty viewport, got %d calls", len(rec.Calls))
	}
}
