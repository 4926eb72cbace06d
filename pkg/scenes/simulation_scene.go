// Package scenes contains the application's scenes. The simulation scene is
// the only one: it steps the world once per tick and draws the result.
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/gravitons/pkg/config"
	"github.com/decker502/gravitons/pkg/game"
	"github.com/decker502/gravitons/pkg/sim"
)

// gravitonRadius is the draw radius of a graviton point.
const gravitonRadius = 1

var backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}

// SimulationScene runs and renders the particle simulation.
//
// Controls:
//
//	Space  - Toggle pause
//	S      - Toggle the stats overlay (persisted)
type SimulationScene struct {
	cfg      *config.Config
	world    *sim.World
	settings *game.SettingsManager

	paused bool
}

// NewSimulationScene creates the scene around an already initialized world.
func NewSimulationScene(cfg *config.Config, world *sim.World, settings *game.SettingsManager) *SimulationScene {
	return &SimulationScene{
		cfg:      cfg,
		world:    world,
		settings: settings,
	}
}

// Update handles input and advances the world by one frame unless paused.
func (s *SimulationScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
		log.Printf("[SimulationScene] Paused: %v", s.paused)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		show := !s.settings.GetSettings().ShowStats
		s.settings.SetShowStats(show)
		if err := s.settings.Save(); err != nil {
			log.Printf("[SimulationScene] Warning: Failed to save settings: %v", err)
		}
	}

	if s.paused {
		return
	}

	s.world.Step()
}

// Draw renders gravitons below particles, plus the optional stats overlay.
func (s *SimulationScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Gravitons fade out with their remaining life. The fade is cosmetic
	// only; an almost dead graviton still exerts its full force.
	for _, g := range s.world.Gravitons {
		fade := g.FadeFraction()
		clr := color.RGBA{
			R: uint8(float64(g.Color.R) * fade),
			G: uint8(float64(g.Color.G) * fade),
			B: uint8(float64(g.Color.B) * fade),
			A: uint8(255 * fade),
		}
		vector.DrawFilledCircle(screen, float32(g.X), float32(g.Y), gravitonRadius, clr, false)
	}

	for _, p := range s.world.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.Color, false)
	}

	if s.settings.GetSettings().ShowStats {
		s.drawStats(screen)
	}

	if s.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Space to resume)", s.cfg.ScreenWidth-180, 10)
	}
}

// drawStats renders the overlay with live counters.
func (s *SimulationScene) drawStats(screen *ebiten.Image) {
	stats := fmt.Sprintf("Tick: %d  Particles: %d  Gravitons: %d  TPS: %.0f  FPS: %.0f",
		s.world.Tick(), len(s.world.Particles), len(s.world.Gravitons),
		ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, stats, 10, 10)
	ebitenutil.DebugPrintAt(screen, "Space = Pause  S = Stats  Esc/Q = Quit", 10, 30)
}

// Paused reports whether the simulation is currently paused.
func (s *SimulationScene) Paused() bool {
	return s.paused
}
