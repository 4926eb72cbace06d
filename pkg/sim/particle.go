// Package sim implements the simulation core: particles, the short-lived
// gravitons they emit, and the World that steps both once per frame.
package sim

import (
	"image/color"
	"math/rand"

	"github.com/decker502/gravitons/pkg/config"
)

// Particle is a long-lived point mass. It is created once at startup and
// mutated in place every frame; particles are never destroyed during a run.
type Particle struct {
	X, Y   float64    // position, kept within [0, width] x [0, height]
	FX, FY float64    // accumulated force vector, doubles as per-frame velocity
	Color  color.RGBA // draw color, randomized at startup
	Size   float64    // draw radius
}

// NewParticle creates a particle with a randomized position inside the spawn
// zone (the screen inset by SpawnMargin on every side), randomized initial
// force components and a randomized color.
func NewParticle(cfg *config.Config, rng *rand.Rand) *Particle {
	zoneW := float64(cfg.ScreenWidth) - 2*cfg.SpawnMargin
	zoneH := float64(cfg.ScreenHeight) - 2*cfg.SpawnMargin
	if zoneW < 0 {
		zoneW = 0
	}
	if zoneH < 0 {
		zoneH = 0
	}

	return &Particle{
		X:     cfg.SpawnMargin + rng.Float64()*zoneW,
		Y:     cfg.SpawnMargin + rng.Float64()*zoneH,
		FX:    randomInRange(rng, cfg.InitialForceMin, cfg.InitialForceMax),
		FY:    randomInRange(rng, cfg.InitialForceMin, cfg.InitialForceMax),
		Color: randomColor(cfg, rng),
		Size:  randomInRange(rng, cfg.ParticleSizeMin, cfg.ParticleSizeMax),
	}
}

// Advance moves the particle by its current force vector and reflects it at
// the screen boundary. Each force component is clamped to +/-forceLimit
// first; a component whose move would leave [0, limit] is negated exactly
// once and the position is clamped onto the violated boundary.
func (p *Particle) Advance(width, height, forceLimit float64) {
	p.FX = clamp(p.FX, -forceLimit, forceLimit)
	p.FY = clamp(p.FY, -forceLimit, forceLimit)

	p.X, p.FX = advanceAxis(p.X, p.FX, width)
	p.Y, p.FY = advanceAxis(p.Y, p.FY, height)
}

// advanceAxis moves one coordinate, returning the new position and force
// component. On boundary contact the position lands on the boundary itself
// and the force flips sign.
func advanceAxis(pos, force, limit float64) (float64, float64) {
	next := pos + force
	switch {
	case next < 0:
		return 0, -force
	case next > limit:
		return limit, -force
	default:
		return next, force
	}
}

// randomColor samples one value per channel from the configured range.
func randomColor(cfg *config.Config, rng *rand.Rand) color.RGBA {
	span := cfg.ParticleColorMax - cfg.ParticleColorMin + 1
	channel := func() uint8 {
		return uint8(cfg.ParticleColorMin + rng.Intn(span))
	}
	return color.RGBA{R: channel(), G: channel(), B: channel(), A: 0xff}
}

// randomInRange returns a uniform sample from [min, max].
func randomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
