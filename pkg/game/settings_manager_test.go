package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata creates a gdata manager rooted in a temporary directory so
// tests never touch the real user settings.
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings verifies the default display preferences.
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowStats {
		t.Error("ShowStats: got false, want true")
	}
}

// TestNewSettingsManager verifies a fresh manager starts with defaults.
func TestNewSettingsManager(t *testing.T) {
	m := newTestGdata(t, "test_gravitons_settings")

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.Fullscreen {
		t.Error("initial Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata verifies the degraded, memory-only mode.
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if !settings.ShowStats {
		t.Error("degraded mode ShowStats: got false, want true")
	}

	// Save must be a silent no-op without storage.
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
}

// TestSettingsLoadSave verifies settings round-trip through gdata.
func TestSettingsLoadSave(t *testing.T) {
	m := newTestGdata(t, "test_gravitons_settings_load_save")

	sm1, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetShowStats(false)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A second manager against the same storage must see the saved values.
	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("reloaded Fullscreen: got false, want true")
	}
	if settings.ShowStats {
		t.Error("reloaded ShowStats: got true, want false")
	}
}
