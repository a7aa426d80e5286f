package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and applies defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.InputDir
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"csv"}
	}
	if cfg.Engine.MemberWorkers == 0 {
		cfg.Engine.MemberWorkers = 8
	}
}
