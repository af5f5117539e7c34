// Package daemon manages the EcoTrack daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	Data      DataConfig      `toml:"data"`
	API       APIConfig       `toml:"api"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// DataConfig controls where the progress database lives.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// TelemetryConfig controls the Prometheus /metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := ecotrackHome()
	return Config{
		Data: DataConfig{
			Dir: homeDir,
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8484,
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "ecotrack.log"),
		},
	}
}

// LoadConfig reads config from ~/.ecotrack/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(ecotrackHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.ecotrack/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(ecotrackHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// ecotrackHome returns the EcoTrack data directory.
func ecotrackHome() string {
	if env := os.Getenv("ECOTRACK_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ecotrack")
}

// EcotrackHome is exported for use by other packages.
func EcotrackHome() string {
	return ecotrackHome()
}
