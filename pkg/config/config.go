package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Lean smoothing modes
const (
	LeanModeEase   = "ease"
	LeanModeSpring = "spring"
)

// Range is an inclusive [Min, Max] interval used for randomized spawn values
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Lerp maps t in [0,1) onto the range
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// Config holds every tunable of the highway animation
type Config struct {
	LaneCount     int     `json:"laneCount"`
	Speed         float64 `json:"speed"`         // lane flow speed in logical px/s
	MaxPixelRatio float64 `json:"maxPixelRatio"` // device pixel ratio cap
	InitialCars   int     `json:"initialCars"`   // cars seeded at start
	PoolFloor     int     `json:"poolFloor"`     // reap replaces a removed car while below this
	PoolCeiling   int     `json:"poolCeiling"`

	SpawnWidth  Range `json:"spawnWidthRange"`  // fraction of lane width
	SpawnHeight Range `json:"spawnHeightRange"` // logical px
	SpawnSpeed  Range `json:"spawnSpeedRange"`  // multiplier of Speed
	SpawnGlow   Range `json:"spawnGlowRange"`   // glow alpha
	SpawnOffset Range `json:"spawnOffsetRange"` // distance above the top edge

	LeanGain float64 `json:"leanGain"`
	LeanEase float64 `json:"leanEase"`
	LeanMode string  `json:"leanMode"`

	Seed int64 `json:"seed"` // 0 means seed from the clock
}

// Default returns the stock look of the background
func Default() *Config {
	return &Config{
		LaneCount:     4,
		Speed:         180,
		MaxPixelRatio: 2,
		InitialCars:   10,
		PoolFloor:     14,
		PoolCeiling:   24,
		SpawnWidth:    Range{Min: 0.55, Max: 0.78},
		SpawnHeight:   Range{Min: 36, Max: 54},
		SpawnSpeed:    Range{Min: 0.9, Max: 1.35},
		SpawnGlow:     Range{Min: 0.08, Max: 0.18},
		SpawnOffset:   Range{Min: 60, Max: 260},
		LeanGain:      0.8,
		LeanEase:      0.06,
		LeanMode:      LeanModeEase,
	}
}

// LoadFromFile reads a JSON file on top of the defaults.
// Fields missing from the file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", filename, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Normalize clamps out-of-range values back to something drawable.
// It never fails; bad values fall back to the defaults.
func (c *Config) Normalize() {
	def := Default()

	if c.LaneCount < 1 {
		c.LaneCount = def.LaneCount
	}
	if !finite(c.Speed) || c.Speed < 0 {
		c.Speed = def.Speed
	}
	if !finite(c.MaxPixelRatio) || c.MaxPixelRatio < 1 {
		c.MaxPixelRatio = 1
	}
	if c.PoolFloor < 0 {
		c.PoolFloor = 0
	}
	if c.PoolCeiling < c.PoolFloor {
		c.PoolCeiling = c.PoolFloor
	}
	if c.InitialCars < 0 {
		c.InitialCars = 0
	}
	if c.InitialCars > c.PoolCeiling {
		c.InitialCars = c.PoolCeiling
	}

	c.SpawnWidth = fixRange(c.SpawnWidth, def.SpawnWidth)
	c.SpawnHeight = fixRange(c.SpawnHeight, def.SpawnHeight)
	c.SpawnSpeed = fixRange(c.SpawnSpeed, def.SpawnSpeed)
	c.SpawnGlow = fixRange(c.SpawnGlow, def.SpawnGlow)
	c.SpawnOffset = fixRange(c.SpawnOffset, def.SpawnOffset)

	if !finite(c.LeanGain) {
		c.LeanGain = def.LeanGain
	}
	if !finite(c.LeanEase) || c.LeanEase <= 0 || c.LeanEase > 1 {
		c.LeanEase = def.LeanEase
	}
	if c.LeanMode != LeanModeEase && c.LeanMode != LeanModeSpring {
		c.LeanMode = def.LeanMode
	}
}

func fixRange(r, fallback Range) Range {
	if !finite(r.Min) || !finite(r.Max) || r.Min < 0 {
		return fallback
	}
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
