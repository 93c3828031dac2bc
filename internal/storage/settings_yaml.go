package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes       int `yaml:"work_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes"`
}

// SettingsStore reads and writes duration preferences in a directory.
type SettingsStore struct {
	dir    string
	logger *slog.Logger
}

// NewSettingsStore returns a store rooted at dir.
func NewSettingsStore(dir string, logger *slog.Logger) *SettingsStore {
	return &SettingsStore{dir: dir, logger: logger}
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return filepath.Join(store.dir, settingsFileName)
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned. Fields that
// are missing or out of range keep their defaults.
func (store *SettingsStore) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			store.logger.Debug("settings file not found, using defaults", "path", store.Path())
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	store.apply(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *SettingsStore) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:       int(settings.Work / time.Minute),
		ShortBreakMinutes: int(settings.ShortBreak / time.Minute),
		LongBreakMinutes:  int(settings.LongBreak / time.Minute),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.Path(), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	store.logger.Debug("settings saved", "path", store.Path())
	return nil
}

func (store *SettingsStore) apply(settings *preferences.Settings, fileData yamlSettings) {
	fields := []struct {
		name    string
		minutes int
		bounds  model.Bounds
		target  *time.Duration
	}{
		{"work_minutes", fileData.WorkMinutes, model.WorkBounds, &settings.Work},
		{"short_break_minutes", fileData.ShortBreakMinutes, model.ShortBreakBounds, &settings.ShortBreak},
		{"long_break_minutes", fileData.LongBreakMinutes, model.LongBreakBounds, &settings.LongBreak},
	}
	for _, field := range fields {
		if field.minutes == 0 {
			continue
		}
		if !field.bounds.Contains(field.minutes) {
			store.logger.Warn("ignoring out of range setting", "field", field.name, "minutes", field.minutes)
			continue
		}
		*field.target = time.Duration(field.minutes) * time.Minute
	}
}
