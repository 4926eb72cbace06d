// Package app provides the application wrapper around the simulation.
//
// It wires the configuration, the persisted display settings, the world and
// the scene manager together and implements the ebiten.Game interface that
// drives the fixed-rate frame loop.
package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/gravitons/pkg/config"
	"github.com/decker502/gravitons/pkg/game"
	"github.com/decker502/gravitons/pkg/scenes"
	"github.com/decker502/gravitons/pkg/sim"
)

// App is the top-level ebiten.Game implementation. Once NewApp returns, the
// simulation is initialized and every subsequent Update runs one frame until
// the stop signal (window close, Esc or Q) ends the loop.
type App struct {
	cfg          *config.Config
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
}

// NewApp validates the configuration, loads the persisted display settings
// and generates the initial particle set. A configuration error aborts
// startup; a storage failure only degrades settings to memory-only mode.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "gravitons"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v (running memory-only)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, err
	}

	world, err := sim.NewWorld(cfg, nil)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewSimulationScene(cfg, world, settings))

	log.Printf("[App] Simulation initialized: %d particles, %d gravitons/particle/frame, %d TPS",
		cfg.ParticleCount, cfg.GravitonsPerParticle, cfg.FrameRate)

	return &App{
		cfg:          cfg,
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// Update runs one frame of application logic. Returning ebiten.Termination
// stops the loop cleanly; ebiten itself returns from RunGame when the window
// is closed.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	a.sceneManager.Update(1.0 / float64(a.cfg.FrameRate))
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout returns the logical screen size, independent of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

// Settings exposes the settings manager, used at startup to apply the
// persisted fullscreen preference.
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}
