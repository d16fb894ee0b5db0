package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/softwrap/softwrap/pkg/models"
)

const (
	SoftwrapDir  = ".softwrap"
	SettingsFile = "settings.yaml"
)

// SettingsPath returns the settings file location under the working
// directory.
func SettingsPath() string {
	return filepath.Join(SoftwrapDir, SettingsFile)
}

// ReadSettings loads settings from the working directory. Callers fall
// back to models.DefaultSettings when the file is absent.
func ReadSettings() (*models.Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// WriteSettings persists settings under the working directory, creating
// the config directory when needed.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(SoftwrapDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", SoftwrapDir, err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
