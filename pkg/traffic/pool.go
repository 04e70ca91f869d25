package traffic

import (
	"math"
	"math/rand"
	"slices"

	"github.com/golangdaddy/highway/pkg/config"
	"github.com/golangdaddy/highway/pkg/road"
	"github.com/golangdaddy/highway/pkg/vehicle"
	"github.com/golangdaddy/highway/pkg/viewport"
)

// MaxStep caps the time step used to move cars, in seconds, so a long pause
// (a backgrounded tab or window) does not teleport the traffic.
const MaxStep = 0.05

// Pool owns every car on the highway.
// Order in the pool is only the draw order; it carries no other meaning.
type Pool struct {
	cars []vehicle.Car
	cfg  *config.Config
	vp   *viewport.Viewport
	rng  *rand.Rand
}

// NewPool creates a pool and seeds it with cfg.InitialCars cars above the viewport
func NewPool(cfg *config.Config, vp *viewport.Viewport, rng *rand.Rand) *Pool {
	p := &Pool{
		cars: make([]vehicle.Car, 0, cfg.PoolCeiling),
		cfg:  cfg,
		vp:   vp,
		rng:  rng,
	}
	for i := 0; i < cfg.InitialCars; i++ {
		p.Spawn()
	}
	return p
}

// Spawn adds one car in a random lane just above the top of the viewport.
// It returns false when the pool is already at its ceiling.
func (p *Pool) Spawn() bool {
	if len(p.cars) >= p.cfg.PoolCeiling {
		return false
	}

	geom := road.NewGeometry(p.vp.Width, p.cfg.LaneCount)
	lane := p.rng.Intn(geom.LaneCount)

	p.cars = append(p.cars, vehicle.Car{
		Lane:     lane,
		X:        geom.CarX(lane),
		Y:        -p.cfg.SpawnOffset.Lerp(p.rng.Float64()),
		Width:    geom.LaneWidth * p.cfg.SpawnWidth.Lerp(p.rng.Float64()),
		Height:   p.cfg.SpawnHeight.Lerp(p.rng.Float64()),
		SpeedMul: p.cfg.SpawnSpeed.Lerp(p.rng.Float64()),
		Glow:     p.cfg.SpawnGlow.Lerp(p.rng.Float64()),
	})
	return true
}

// Advance moves every car down by speed*multiplier*dt, with dt capped at MaxStep
func (p *Pool) Advance(dt float64) {
	dt = ClampStep(dt)
	for i := range p.cars {
		p.cars[i].Advance(p.cfg.Speed, dt)
	}
}

// Reap removes cars that left the bottom of the viewport. Each removal that
// leaves the pool below its floor spawns exactly one replacement, so a pool
// seeded under the floor keeps its size.
// It walks back to front so a removal never skips the neighbour that slides
// into its slot, and replacements appended at the end are not visited in the
// same pass. It returns the number of cars removed.
func (p *Pool) Reap() int {
	removed := 0
	for i := len(p.cars) - 1; i >= 0; i-- {
		if !p.cars[i].Gone(p.vp.Height) {
			continue
		}
		p.cars = slices.Delete(p.cars, i, i+1)
		removed++
		if len(p.cars) < p.cfg.PoolFloor {
			p.Spawn()
		}
	}
	return removed
}

// Cars returns the live cars in draw order. The slice is owned by the pool.
func (p *Pool) Cars() []vehicle.Car {
	return p.cars
}

// Len returns the number of live cars
func (p *Pool) Len() int {
	return len(p.cars)
}

// ClampStep bounds a frame time to [0, MaxStep]
func ClampStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}
