package config

import (
	"fmt"
	"strings"
)

var knownFormats = map[string]bool{"csv": true, "sqlite": true}

// Validate checks the config for:
//   - Required directories
//   - Known output formats (csv, sqlite), no duplicates
//   - Sane engine settings
//
// All problems are collected and reported in a single error.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.InputDir == "" {
		errs = append(errs, "input_dir is required")
	}
	if cfg.OutputDir == "" {
		errs = append(errs, "output_dir is required")
	}
	if len(cfg.Formats) == 0 {
		errs = append(errs, "formats must name at least one of csv, sqlite")
	}
	seen := make(map[string]bool)
	for i, f := range cfg.Formats {
		if !knownFormats[f] {
			errs = append(errs, fmt.Sprintf("formats[%d]: unknown format %q", i, f))
			continue
		}
		if seen[f] {
			errs = append(errs, fmt.Sprintf("formats[%d]: duplicate format %q", i, f))
		}
		seen[f] = true
	}
	if cfg.Engine.MemberWorkers < 1 {
		errs = append(errs, fmt.Sprintf("engine.member_workers must be at least 1, got %d", cfg.Engine.MemberWorkers))
	}
	for _, ov := range []struct {
		name string
		m    map[string]string
	}{
		{"activities", cfg.Mappings.Activities},
		{"parties", cfg.Mappings.Parties},
		{"states", cfg.Mappings.States},
	} {
		name := ov.name
		for k, v := range ov.m {
			if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
				errs = append(errs, fmt.Sprintf("mappings.%s: empty key or value (%q: %q)", name, k, v))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
