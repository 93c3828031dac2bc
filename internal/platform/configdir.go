package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the application configuration directory.
const ConfigDirEnv = "POMODORO_CONFIG_DIR"

// AppConfigDir returns the directory holding the application's files.
func AppConfigDir(appName string) (string, error) {
	if override := os.Getenv(ConfigDirEnv); override != "" {
		return override, nil
	}
	base, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// UserConfigDir returns the OS-standard configuration directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}
