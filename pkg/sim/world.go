package sim

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/gravitons/pkg/config"
)

// World owns the particle set and the active graviton collection and steps
// them once per frame. It is used from a single goroutine only; the frame
// loop mutates both slices in place.
type World struct {
	Particles []*Particle
	Gravitons []*Graviton

	cfg  *config.Config
	rng  *rand.Rand
	tick uint64
}

// NewWorld validates the configuration, generates the initial particle set
// and returns a ready-to-step world. rng may be nil, in which case a
// time-seeded source is used; tests pass a fixed seed instead.
func NewWorld(cfg *config.Config, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &World{
		Particles: make([]*Particle, 0, cfg.ParticleCount),
		Gravitons: make([]*Graviton, 0, cfg.ParticleCount*cfg.GravitonsPerParticle),
		cfg:       cfg,
		rng:       rng,
	}
	for i := 0; i < cfg.ParticleCount; i++ {
		w.Particles = append(w.Particles, NewParticle(cfg, rng))
	}
	return w, nil
}

// Step advances the simulation by one frame in fixed order:
// expire -> spawn -> apply forces -> advance particles -> tick lifespans.
//
// Lifespans are decremented at the end of a step and expired gravitons are
// culled at the start of the next one, so a graviton that just reached zero
// life is still drawn (fully faded) for the frame on which it died.
func (w *World) Step() {
	w.expireGravitons()
	w.spawnGravitons()
	w.applyForces()
	w.advanceParticles()
	w.tickGravitons()
	w.tick++
}

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 {
	return w.tick
}

// expireGravitons removes every graviton whose life ran out or that drifted
// outside the screen during spawning near an edge.
func (w *World) expireGravitons() {
	width := float64(w.cfg.ScreenWidth)
	height := float64(w.cfg.ScreenHeight)

	alive := w.Gravitons[:0]
	for _, g := range w.Gravitons {
		if !g.Expired(width, height) {
			alive = append(alive, g)
		}
	}
	w.Gravitons = alive
}

// spawnGravitons emits the configured number of gravitons around every
// particle. Each graviton materializes at a uniform angle and a radius in
// [GravitonSpawnRadiusMin, GravitonSpawnRadiusMax] from its emitter, so it
// never sits exactly on the particle position.
func (w *World) spawnGravitons() {
	for _, p := range w.Particles {
		for i := 0; i < w.cfg.GravitonsPerParticle; i++ {
			angle := w.rng.Float64() * 2 * math.Pi
			radius := randomInRange(w.rng, w.cfg.GravitonSpawnRadiusMin, w.cfg.GravitonSpawnRadiusMax)

			w.Gravitons = append(w.Gravitons, &Graviton{
				X:        p.X + math.Cos(angle)*radius,
				Y:        p.Y + math.Sin(angle)*radius,
				Force:    randomInRange(w.rng, w.cfg.GravitonForceMin, w.cfg.GravitonForceMax),
				Life:     w.cfg.GravitonLifespan,
				Lifespan: w.cfg.GravitonLifespan,
				Color:    scaleColor(p.Color, w.cfg.GravitonColorScale),
			})
		}
	}
}

// applyForces accumulates every active graviton's contribution into every
// particle's force vector. The contribution falls off with the inverse of
// the distance along the unit direction towards the graviton:
//
//	f += d * Force / dist^2    (d = graviton - particle)
//
// A positive Force pulls the particle towards the graviton, a negative one
// pushes it away. The distance is clamped below by MinForceDistance; an
// exact zero distance has no direction and is skipped entirely.
func (w *World) applyForces() {
	minDist := w.cfg.MinForceDistance

	for _, p := range w.Particles {
		for _, g := range w.Gravitons {
			dx := g.X - p.X
			dy := g.Y - p.Y
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				continue
			}
			if dist < minDist {
				dist = minDist
			}
			scale := g.Force / (dist * dist)
			p.FX += dx * scale
			p.FY += dy * scale
		}
	}
}

// advanceParticles moves every particle by its force vector, reflecting at
// the screen boundary.
func (w *World) advanceParticles() {
	width := float64(w.cfg.ScreenWidth)
	height := float64(w.cfg.ScreenHeight)
	for _, p := range w.Particles {
		p.Advance(width, height, w.cfg.ForceLimit)
	}
}

// tickGravitons decrements every graviton's remaining life by one frame.
func (w *World) tickGravitons() {
	for _, g := range w.Gravitons {
		g.Life--
	}
}

// scaleColor darkens a color by the given 0-1 factor, preserving alpha.
func scaleColor(c color.RGBA, scale float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: c.A,
	}
}
