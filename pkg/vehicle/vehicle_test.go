package vehicle

import (
	"math"
	"testing"

	"github.com/golangdaddy/highway/pkg/canvas"
)

func TestCarAdvance(t *testing.T) {
	c := Car{Y: -100, SpeedMul: 1.2}
	c.Advance(180, 0.05)
	if !near(c.Y, -89.2) {
		t.Errorf("Expected Y=-89.2, got %v", c.Y)
	}
}

func TestCarGone(t *testing.T) {
	c := Car{Y: 720}
	if c.Gone(600) {
		t.Error("Car exactly at the exit margin should stay")
	}
	c.Y = 720.5
	if !c.Gone(600) {
		t.Error("Car past the exit margin should be gone")
	}
}

func TestDrawCarLayers(t *testing.T) {
	rec := &canvas.Recorder{}
	car := Car{X: 100, Y: 50, Width: 60, Height: 40, Glow: 0.1}
	NewRenderer().DrawCar(rec, &car, 5)

	rounds := rec.Filter(canvas.OpRoundRect)
	if len(rounds) != 3 {
		t.Fatalf("Expected glow, body and windshield, got %d round rects", len(rounds))
	}

	glow, body, shield := rounds[0], rounds[1], rounds[2]
	if glow.X != 99 || glow.Y != 44 || glow.W != 72 || glow.H != 52 {
		t.Errorf("Unexpected glow bounds %+v", glow)
	}
	if _, _, _, a := glow.Color.RGBA(); a == 0 {
		t.Error("Glow should use the car's alpha")
	}
	if body.X != 105 || body.Y != 50 || body.W != 60 || body.H != 40 || body.Radius != 10 {
		t.Errorf("Unexpected body %+v", body)
	}
	if !near(shield.X, 112.2) || !near(shield.Y, 57.2) || !near(shield.W, 45.6) || shield.Radius != 8 {
		t.Errorf("Unexpected windshield %+v", shield)
	}

	lights := rec.Filter(canvas.OpFillRect)
	if len(lights) != 2 {
		t.Fatalf("Expected two tail lights, got %d", len(lights))
	}
	if lights[0].X != 111 || lights[0].Y != 82 || lights[1].X != 149 {
		t.Errorf("Unexpected tail lights %+v", lights)
	}
}

func TestDrawTinyCarClampsRadius(t *testing.T) {
	rec := &canvas.Recorder{}
	car := Car{Width: 8, Height: 6}
	NewRenderer().DrawCar(rec, &car, 0)

	body := rec.Filter(canvas.OpRoundRect)[1]
	if body.Radius != 3 {
		t.Errorf("Expected body radius clamped to 3, got %v", body.Radius)
	}
}

func TestDrawBackToFront(t *testing.T) {
	rec := &canvas.Recorder{}
	cars := []Car{
		{X: 10, Width: 50, Height: 40},
		{X: 200, Width: 50, Height: 40},
		{X: 400, Width: 50, Height: 40},
	}
	NewRenderer().Draw(rec, cars, 0)

	rounds := rec.Filter(canvas.OpRoundRect)
	if len(rounds) != 9 {
		t.Fatalf("Expected 9 round rects, got %d", len(rounds))
	}
	// bodies are the second round rect of each car
	for i, want := range []float64{400, 200, 10} {
		if got := rounds[i*3+1].X; got != want {
			t.Errorf("body %d: expected car at X=%v, got %v", i, want, got)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
