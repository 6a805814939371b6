// Package config holds the store runtime configuration: a YAML file
// with environment overrides, flags taking final precedence in cmd.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataDir is where collection files and the store meta live
	DataDir string `yaml:"data_dir"`

	// InMem disables all file IO; data lives only for the process
	InMem bool `yaml:"in_mem"`

	// WriteIntervalMs is the background flush cadence
	WriteIntervalMs int `yaml:"write_interval_ms"`

	// LogLevel is one of none, error, debug
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		DataDir:         "aman-db",
		InMem:           false,
		WriteIntervalMs: 1000,
		LogLevel:        "error",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// AMANDB_* environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AMANDB_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("AMANDB_IN_MEM"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.InMem = b
		}
	}
	if v := os.Getenv("AMANDB_WRITE_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WriteIntervalMs = n
		}
	}
	if v := os.Getenv("AMANDB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
