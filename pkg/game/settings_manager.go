package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings are the persisted user preferences. They cover the display
// surface only; simulation state is never saved.
type DisplaySettings struct {
	Fullscreen bool `yaml:"fullscreen"` // start in fullscreen mode
	ShowStats  bool `yaml:"showStats"`  // show the stats overlay
}

// DefaultSettings returns the default display preferences.
func DefaultSettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen: false,
		ShowStats:  true,
	}
}

// SettingsManager loads and saves the display settings through gdata.
// With a nil gdata manager it runs in a degraded, memory-only mode.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *DisplaySettings
}

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager creates a settings manager and loads any previously
// saved settings. A load failure is not fatal; the defaults are used and a
// warning is logged.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads the settings from gdata. If the manager is nil or nothing has
// been saved yet, the defaults are used.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to gdata. In degraded mode it is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings returns the current settings instance.
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen updates the fullscreen preference in memory.
// Call Save to persist the change.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowStats updates the stats overlay preference in memory.
// Call Save to persist the change.
func (sm *SettingsManager) SetShowStats(enabled bool) {
	sm.settings.ShowStats = enabled
}
