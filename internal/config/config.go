// Package config loads the cubesolver configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI can read from a configuration file.
// Missing fields fall back to the defaults; command-line flags override both.
type Config struct {
	DBPath string       `yaml:"db_path"`
	Solver SolverConfig `yaml:"solver"`
	BLE    BLEConfig    `yaml:"ble"`
}

// SolverConfig bounds the connector searches.
type SolverConfig struct {
	CornerSearchDepth int `yaml:"corner_search_depth"`
	EdgeSearchDepth   int `yaml:"edge_search_depth"`
}

// BLEConfig configures smart cube discovery.
type BLEConfig struct {
	ScanTimeout time.Duration `yaml:"scan_timeout"`
	NamePrefix  string        `yaml:"name_prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			CornerSearchDepth: 5,
			EdgeSearchDepth:   3,
		},
		BLE: BLEConfig{
			ScanTimeout: 5 * time.Second,
			NamePrefix:  "gocube",
		},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesolver", "config.yaml"), nil
}

// Load reads the configuration file at path. A missing file is not an error:
// the defaults are returned. Fields absent from the file keep their default
// values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values left by an explicit but partial file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Solver.CornerSearchDepth <= 0 {
		c.Solver.CornerSearchDepth = def.Solver.CornerSearchDepth
	}
	if c.Solver.EdgeSearchDepth <= 0 {
		c.Solver.EdgeSearchDepth = def.Solver.EdgeSearchDepth
	}
	if c.BLE.ScanTimeout <= 0 {
		c.BLE.ScanTimeout = def.BLE.ScanTimeout
	}
	if c.BLE.NamePrefix == "" {
		c.BLE.NamePrefix = def.BLE.NamePrefix
	}
}
