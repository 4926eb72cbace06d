package scenes

import (
	"math/rand"
	"testing"

	"github.com/decker502/gravitons/pkg/config"
	"github.com/decker502/gravitons/pkg/game"
	"github.com/decker502/gravitons/pkg/sim"
)

func newTestScene(t *testing.T) *SimulationScene {
	t.Helper()

	cfg := config.Default()
	world, err := sim.NewWorld(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewWorld error: %v", err)
	}
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager error: %v", err)
	}
	return NewSimulationScene(cfg, world, settings)
}

// TestSimulationSceneImplementsSceneInterface verifies the scene satisfies
// the Scene interface used by the SceneManager.
func TestSimulationSceneImplementsSceneInterface(t *testing.T) {
	var _ game.Scene = newTestScene(t)
}

// TestUpdateStepsWorld verifies each un-paused Update advances the world by
// exactly one tick.
func TestUpdateStepsWorld(t *testing.T) {
	scene := newTestScene(t)

	for i := 0; i < 5; i++ {
		scene.Update(1.0 / 30.0)
	}

	if got := scene.world.Tick(); got != 5 {
		t.Errorf("world tick after 5 updates: got %d, want 5", got)
	}
}

// TestUpdateWhilePausedFreezesWorld verifies a paused scene does not step.
func TestUpdateWhilePausedFreezesWorld(t *testing.T) {
	scene := newTestScene(t)
	scene.paused = true

	for i := 0; i < 5; i++ {
		scene.Update(1.0 / 30.0)
	}

	if got := scene.world.Tick(); got != 0 {
		t.Errorf("world tick while paused: got %d, want 0", got)
	}
	if !scene.Paused() {
		t.Error("Paused(): got false, want true")
	}
}
