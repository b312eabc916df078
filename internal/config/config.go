// ABOUTME: gymlog configuration management.
// ABOUTME: Handles data location, default weight unit, and chart window settings.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/harperreed/gymlog/internal/storage"
	"go.uber.org/zap"
)

const (
	MinWeeks = 4
	MaxWeeks = 52
)

// Config stores gymlog configuration.
type Config struct {
	// DataDir is the directory holding workouts.csv.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/gymlog.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultUnit is the weight unit used when --unit is not given: "kg" (default) or "lb".
	DefaultUnit string `json:"default_unit,omitempty"`

	// DefaultWeeks is the chart window when --weeks is not given.
	DefaultWeeks int `json:"default_weeks,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetTablePath returns the path of the backing CSV file.
func (c *Config) GetTablePath() string {
	return filepath.Join(c.GetDataDir(), storage.TableFileName)
}

// GetDefaultUnit returns the configured unit, defaulting to kg.
func (c *Config) GetDefaultUnit() models.Unit {
	if models.IsValidUnit(c.DefaultUnit) {
		return models.Unit(c.DefaultUnit)
	}
	return models.UnitKg
}

// GetDefaultWeeks returns the configured chart window, clamped to 4..52.
func (c *Config) GetDefaultWeeks() int {
	if c.DefaultWeeks == 0 {
		return stats.DefaultWeeks
	}
	return ClampWeeks(c.DefaultWeeks)
}

// ClampWeeks limits a chart window to MinWeeks..MaxWeeks.
func ClampWeeks(weeks int) int {
	if weeks < MinWeeks {
		return MinWeeks
	}
	if weeks > MaxWeeks {
		return MaxWeeks
	}
	return weeks
}

// Set updates one setting by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_dir":
		c.DataDir = value
	case "default_unit":
		if !models.IsValidUnit(value) {
			return fmt.Errorf("invalid unit: %s (use kg or lb)", value)
		}
		c.DefaultUnit = value
	case "default_weeks":
		var weeks int
		if _, err := fmt.Sscanf(value, "%d", &weeks); err != nil {
			return fmt.Errorf("invalid weeks: %s", value)
		}
		if weeks < MinWeeks || weeks > MaxWeeks {
			return fmt.Errorf("weeks must be between %d and %d", MinWeeks, MaxWeeks)
		}
		c.DefaultWeeks = weeks
	default:
		return fmt.Errorf("unknown config key: %q (use data_dir, default_unit, or default_weeks)", key)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the CSV store at the configured location.
func (c *Config) OpenStorage(logger *zap.Logger) (*storage.Store, error) {
	return storage.Open(c.GetTablePath(), storage.WithLogger(logger))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gymlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
