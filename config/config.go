// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the kinship CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log environments understood by package logger.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the top-level YAML structure.
type Config struct {
	MaxDegree   int     `yaml:"max_degree"`
	Budget      int64   `yaml:"budget"`
	Workers     int     `yaml:"workers"`
	Dedup       bool    `yaml:"dedup"`
	DotDir      string  `yaml:"dot_dir"`
	MetricsFile string  `yaml:"metrics_file"`
	Log         LogConf `yaml:"log"`
}

// LogConf selects the logger flavour.
type LogConf struct {
	Env string `yaml:"env"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxDegree: 1,
		Workers:   1,
		Dedup:     true,
		Log:       LogConf{Env: EnvDevelopment},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem in cfg at once.
func Validate(cfg *Config) error {
	var errs []string
	if cfg.MaxDegree < 1 {
		errs = append(errs, fmt.Sprintf("max_degree must be at least 1 (got %d)", cfg.MaxDegree))
	}
	if cfg.Budget < 0 {
		errs = append(errs, fmt.Sprintf("budget must not be negative (got %d)", cfg.Budget))
	}
	if cfg.Workers < 1 {
		errs = append(errs, fmt.Sprintf("workers must be at least 1 (got %d)", cfg.Workers))
	}
	switch cfg.Log.Env {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("log.env must be %q or %q (got %q)", EnvDevelopment, EnvProduction, cfg.Log.Env))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
