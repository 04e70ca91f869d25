package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LaneCount != 4 {
		t.Errorf("Expected 4 lanes, got %d", cfg.LaneCount)
	}
	if cfg.Speed != 180 {
		t.Errorf("Expected speed 180, got %v", cfg.Speed)
	}
	if cfg.MaxPixelRatio != 2 {
		t.Errorf("Expected max pixel ratio 2, got %v", cfg.MaxPixelRatio)
	}
	if cfg.PoolFloor != 14 {
		t.Errorf("Expected pool floor 14, got %d", cfg.PoolFloor)
	}
	if cfg.InitialCars != 10 {
		t.Errorf("Expected 10 initial cars, got %d", cfg.InitialCars)
	}
	if cfg.LeanGain != 0.8 || cfg.LeanEase != 0.06 {
		t.Errorf("Unexpected lean settings: gain=%v ease=%v", cfg.LeanGain, cfg.LeanEase)
	}
	if cfg.SpawnWidth != (Range{0.55, 0.78}) {
		t.Errorf("Unexpected spawn width range %+v", cfg.SpawnWidth)
	}
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highway.json")
	body := `{"laneCount": 6, "speed": 240, "spawnGlowRange": {"min": 0.2, "max": 0.1}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.LaneCount != 6 {
		t.Errorf("Expected 6 lanes, got %d", cfg.LaneCount)
	}
	if cfg.Speed != 240 {
		t.Errorf("Expected speed 240, got %v", cfg.Speed)
	}
	// untouched fields keep defaults
	if cfg.PoolFloor != 14 || cfg.InitialCars != 10 {
		t.Errorf("Expected default pool sizes, got floor=%d initial=%d", cfg.PoolFloor, cfg.InitialCars)
	}
	// reversed range is swapped
	if cfg.SpawnGlow.Min != 0.1 || cfg.SpawnGlow.Max != 0.2 {
		t.Errorf("Expected swapped glow range, got %+v", cfg.SpawnGlow)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		LaneCount:     0,
		Speed:         math.NaN(),
		MaxPixelRatio: 0.5,
		PoolFloor:     10,
		PoolCeiling:   3,
		SpawnHeight:   Range{Min: -5, Max: 10},
		LeanGain:      math.Inf(1),
		LeanEase:      4,
		LeanMode:      "bouncy",
	}
	cfg.Normalize()

	if cfg.LaneCount != 4 {
		t.Errorf("Expected lane count reset to 4, got %d", cfg.LaneCount)
	}
	if cfg.Speed != 180 {
		t.Errorf("Expected speed reset to 180, got %v", cfg.Speed)
	}
	if cfg.MaxPixelRatio != 1 {
		t.Errorf("Expected pixel ratio cap of at least 1, got %v", cfg.MaxPixelRatio)
	}
	if cfg.PoolCeiling != 10 {
		t.Errorf("Expected ceiling raised to floor, got %d", cfg.PoolCeiling)
	}
	if cfg.SpawnHeight != (Range{36, 54}) {
		t.Errorf("Expected default height range, got %+v", cfg.SpawnHeight)
	}
	if cfg.LeanGain != 0.8 || cfg.LeanEase != 0.06 {
		t.Errorf("Expected lean defaults, got gain=%v ease=%v", cfg.LeanGain, cfg.LeanEase)
	}
	if cfg.LeanMode != LeanModeEase {
		t.Errorf("Expected ease mode, got %q", cfg.LeanMode)
	}
}

func TestRangeLerp(t *testing.T) {
	r := Range{Min: 60, Max: 260}
	if got := r.Lerp(0); got != 60 {
		t.Errorf("Lerp(0) = %v, want 60", got)
	}
	if got := r.Lerp(0.5); got != 160 {
		t.Errorf("Lerp(0.5) = %v, want 160", got)
	}
}

func TestNormalizeInitialCars(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		floor   int
		ceiling int
		want    int
	}{
		{"within bounds", 10, 14, 24, 10},
		{"negative", -3, 14, 24, 0},
		{"above ceiling", 40, 14, 24, 24},
		{"ceiling raised to floor first", 20, 16, 4, 16},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.InitialCars, cfg.PoolFloor, cfg.PoolCeiling = tt.initial, tt.floor, tt.ceiling
		cfg.Normalize()
		if cfg.InitialCars != tt.want {
			t.Errorf("%s: expected %d initial cars, got %d", tt.name, tt.want, cfg.InitialCars)
		}
	}
}
