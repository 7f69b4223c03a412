// Package project persists user-level configuration for the estimator.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/beamcost/beamcost/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.beamcost/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".beamcost")
}

// DefaultConfigPath returns the default path for the cost config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveCostConfig persists a CostConfig to the given path as JSON. It
// creates any missing parent directories automatically.
func SaveCostConfig(path string, cfg model.CostConfig) error {
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

// LoadCostConfig reads a CostConfig from the given path. If the file
// does not exist, it returns DefaultCostConfig with no error.
func LoadCostConfig(path string) (model.CostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCostConfig(), nil
		}
		return model.CostConfig{}, err
	}
	var cfg model.CostConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.CostConfig{}, err
	}
	return cfg, nil
}
