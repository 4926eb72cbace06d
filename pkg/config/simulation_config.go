// Package config holds the simulation's flat configuration record.
//
// The configuration is built once at startup from in-memory defaults and is
// read-only afterwards. Validate reports the first violated invariant so the
// process can fail fast before any window is opened.
package config

import "fmt"

// Config collects every tunable of the simulation in one flat record.
// All ranges are inclusive; for every Min/Max pair Min <= Max must hold.
type Config struct {
	// Screen settings
	ScreenWidth  int    `yaml:"screenWidth"`  // logical window width in pixels
	ScreenHeight int    `yaml:"screenHeight"` // logical window height in pixels
	FrameRate    int    `yaml:"frameRate"`    // simulation ticks per second
	WindowTitle  string `yaml:"windowTitle"`  // OS window title

	// Particle settings
	ParticleCount    int     `yaml:"particleCount"`    // number of particles, fixed for the whole run
	ParticleSizeMin  float64 `yaml:"particleSizeMin"`  // minimum particle radius
	ParticleSizeMax  float64 `yaml:"particleSizeMax"`  // maximum particle radius
	ParticleColorMin int     `yaml:"particleColorMin"` // per-channel color floor (0-255)
	ParticleColorMax int     `yaml:"particleColorMax"` // per-channel color ceiling (0-255)
	InitialForceMin  float64 `yaml:"initialForceMin"`  // startup force component range, low end
	InitialForceMax  float64 `yaml:"initialForceMax"`  // startup force component range, high end
	ForceLimit       float64 `yaml:"forceLimit"`       // per-component force clamp applied every frame
	SpawnMargin      float64 `yaml:"spawnMargin"`      // inset of the particle spawn zone from the edges

	// Graviton settings
	GravitonsPerParticle   int     `yaml:"gravitonsPerParticle"`   // gravitons spawned per particle per frame
	GravitonLifespan       int     `yaml:"gravitonLifespan"`       // initial lifespan in frames
	GravitonForceMin       float64 `yaml:"gravitonForceMin"`       // signed magnitude range, low end (negative repels)
	GravitonForceMax       float64 `yaml:"gravitonForceMax"`       // signed magnitude range, high end (positive attracts)
	GravitonSpawnRadiusMin float64 `yaml:"gravitonSpawnRadiusMin"` // minimum distance from the emitting particle
	GravitonSpawnRadiusMax float64 `yaml:"gravitonSpawnRadiusMax"` // maximum distance from the emitting particle
	GravitonColorScale     float64 `yaml:"gravitonColorScale"`     // graviton tint = emitter color * scale (0-1)
	MinForceDistance       float64 `yaml:"minForceDistance"`       // lower distance clamp in force evaluation
}

// Default returns the stock configuration.
// The values mirror the reference simulation: a 700x700 window at 30 ticks
// per second with three particles, each emitting 30 gravitons per frame.
func Default() *Config {
	return &Config{
		ScreenWidth:  700,
		ScreenHeight: 700,
		FrameRate:    30,
		WindowTitle:  "Particle and Graviton Simulation",

		ParticleCount:    3,
		ParticleSizeMin:  10,
		ParticleSizeMax:  10,
		ParticleColorMin: 100,
		ParticleColorMax: 255,
		InitialForceMin:  0,
		InitialForceMax:  0,
		ForceLimit:       2,
		SpawnMargin:      10,

		GravitonsPerParticle:   30,
		GravitonLifespan:       100,
		GravitonForceMin:       -5,
		GravitonForceMax:       5,
		GravitonSpawnRadiusMin: 2,
		GravitonSpawnRadiusMax: 12,
		GravitonColorScale:     0.5,
		MinForceDistance:       2,
	}
}

// Validate checks every configuration invariant and returns a descriptive
// error for the first violation found, or nil if the record is usable.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.ParticleCount < 0 {
		return fmt.Errorf("particle count must be non-negative, got %d", c.ParticleCount)
	}
	if c.ParticleSizeMin > c.ParticleSizeMax {
		return fmt.Errorf("particle size range inverted: min %v > max %v", c.ParticleSizeMin, c.ParticleSizeMax)
	}
	if c.ParticleSizeMin < 0 {
		return fmt.Errorf("particle size must be non-negative, got %v", c.ParticleSizeMin)
	}
	if c.ParticleColorMin > c.ParticleColorMax {
		return fmt.Errorf("particle color range inverted: min %d > max %d", c.ParticleColorMin, c.ParticleColorMax)
	}
	if c.ParticleColorMin < 0 || c.ParticleColorMax > 255 {
		return fmt.Errorf("particle color range must stay within 0-255, got %d-%d", c.ParticleColorMin, c.ParticleColorMax)
	}
	if c.InitialForceMin > c.InitialForceMax {
		return fmt.Errorf("initial force range inverted: min %v > max %v", c.InitialForceMin, c.InitialForceMax)
	}
	if c.ForceLimit <= 0 {
		return fmt.Errorf("force limit must be positive, got %v", c.ForceLimit)
	}
	if c.SpawnMargin < 0 {
		return fmt.Errorf("spawn margin must be non-negative, got %v", c.SpawnMargin)
	}
	if 2*c.SpawnMargin >= float64(c.ScreenWidth) || 2*c.SpawnMargin >= float64(c.ScreenHeight) {
		return fmt.Errorf("spawn margin %v leaves no spawn zone on a %dx%d screen", c.SpawnMargin, c.ScreenWidth, c.ScreenHeight)
	}
	if c.GravitonsPerParticle < 0 {
		return fmt.Errorf("gravitons per particle must be non-negative, got %d", c.GravitonsPerParticle)
	}
	if c.GravitonLifespan < 0 {
		return fmt.Errorf("graviton lifespan must be non-negative, got %d", c.GravitonLifespan)
	}
	if c.GravitonForceMin > c.GravitonForceMax {
		return fmt.Errorf("graviton force range inverted: min %v > max %v", c.GravitonForceMin, c.GravitonForceMax)
	}
	if c.MinForceDistance <= 0 {
		return fmt.Errorf("minimum force distance must be positive, got %v", c.MinForceDistance)
	}
	if c.GravitonSpawnRadiusMin > c.GravitonSpawnRadiusMax {
		return fmt.Errorf("graviton spawn radius range inverted: min %v > max %v", c.GravitonSpawnRadiusMin, c.GravitonSpawnRadiusMax)
	}
	if c.GravitonSpawnRadiusMin < c.MinForceDistance {
		return fmt.Errorf("graviton spawn radius min %v must not undercut minimum force distance %v", c.GravitonSpawnRadiusMin, c.MinForceDistance)
	}
	if c.GravitonColorScale < 0 || c.GravitonColorScale > 1 {
		return fmt.Errorf("graviton color scale must stay within 0-1, got %v", c.GravitonColorScale)
	}
	return nil
}
