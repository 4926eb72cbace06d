package sim

import "image/color"

// Graviton is a short-lived static point source of force. It is spawned near
// a particle, holds its position for its whole life, and is removed from the
// active set once its remaining life reaches zero or it sits outside the
// screen. Gravitons are owned by the World's active slice, never by the
// particle that emitted them.
type Graviton struct {
	X, Y     float64    // fixed position
	Force    float64    // signed magnitude: positive attracts, negative repels
	Life     int        // remaining lifespan in frames
	Lifespan int        // initial lifespan, kept for the visual fade
	Color    color.RGBA // tint derived from the emitting particle
}

// Expired reports whether the graviton should be removed from the active
// set: its life ran out or it sits outside [0, w] x [0, h].
func (g *Graviton) Expired(w, h float64) bool {
	if g.Life <= 0 {
		return true
	}
	return g.X < 0 || g.X > w || g.Y < 0 || g.Y > h
}

// FadeFraction returns remaining life as a 0-1 fraction of the initial
// lifespan. It only drives rendering alpha and has no effect on physics.
func (g *Graviton) FadeFraction() float64 {
	if g.Lifespan <= 0 {
		return 0
	}
	f := float64(g.Life) / float64(g.Lifespan)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
