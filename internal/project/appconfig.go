package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"roomsketch/internal/model"
)

// DefaultConfigPath returns the default preferences file location,
// ~/.roomsketch/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".roomsketch", "config.json"), nil
}

// SaveConfig writes the app configuration to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveConfig(path string, cfg model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads the app configuration from the specified JSON file.
// If the file does not exist, it returns the defaults and saves them.
func LoadConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := model.DefaultAppConfig()
			if saveErr := SaveConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, err
	}
	if cfg.RecentScenes == nil {
		cfg.RecentScenes = []string{}
	}
	return cfg, nil
}
