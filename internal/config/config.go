// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"burocrata-scan/internal/catalog"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Settings are the tunable knobs shared by defaults and profiles.
type Settings struct {
	Format      string `yaml:"format"`
	MinSeverity string `yaml:"min_severity"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Permissive  bool   `yaml:"permissive"`

	// CatalogFile points at a site-local rule catalog that extends or
	// overrides the builtin corpus.
	CatalogFile string `yaml:"catalog_file"`

	// SuppressionsFile points at the reviewed-waiver file.
	SuppressionsFile string `yaml:"suppressions_file"`

	// HistoryFile is the SQLite database where analyses are recorded.
	// Empty disables history.
	HistoryFile string `yaml:"history_file"`
}

// Profile represents a named analysis profile with specific settings
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, or searches the standard
// locations when the path is empty. It never fails on a missing file, only
// on an unreadable or invalid one.
func LoadConfigOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = FindConfigFile()
	}
	return LoadConfig(configPath)
}

func defaultConfig() *Config {
	cfg := &Config{
		Profiles: make(map[string]Profile),
	}
	cfg.Defaults = Settings{
		Format:      "text",
		MinSeverity: "",
		Verbose:     false,
		Debug:       false,
		NoColor:     false,
		Permissive:  false,
	}

	// Profile for CI pipelines: machine output, no color, everything shown.
	cfg.Profiles["ci"] = Profile{
		Settings: Settings{
			Format:  "json",
			NoColor: true,
		},
		Description: "Machine-readable output for pipelines",
	}

	// Profile for quick triage: terminal output, serious findings only.
	cfg.Profiles["triage"] = Profile{
		Settings: Settings{
			Format:      "text",
			MinSeverity: string(catalog.SeverityHigh),
			Verbose:     true,
		},
		Description: "Serious findings only, with remedies",
	}

	return cfg
}

// ApplyProfile overlays a named profile onto the default settings and
// returns the effective settings.
func (c *Config) ApplyProfile(name string) (Settings, error) {
	if name == "" {
		return c.Defaults, nil
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return Settings{}, fmt.Errorf("unknown profile %q", name)
	}

	effective := c.Defaults
	if profile.Format != "" {
		effective.Format = profile.Format
	}
	if profile.MinSeverity != "" {
		effective.MinSeverity = profile.MinSeverity
	}
	if profile.CatalogFile != "" {
		effective.CatalogFile = profile.CatalogFile
	}
	if profile.SuppressionsFile != "" {
		effective.SuppressionsFile = profile.SuppressionsFile
	}
	if profile.HistoryFile != "" {
		effective.HistoryFile = profile.HistoryFile
	}
	effective.Verbose = effective.Verbose || profile.Verbose
	effective.Debug = effective.Debug || profile.Debug
	effective.NoColor = effective.NoColor || profile.NoColor
	effective.Permissive = effective.Permissive || profile.Permissive

	return effective, nil
}

// ValidateConfig checks settings that would otherwise fail deep inside the
// pipeline.
func ValidateConfig(config *Config) error {
	if err := validateSettings("defaults", config.Defaults); err != nil {
		return err
	}
	for name, profile := range config.Profiles {
		if err := validateSettings("profile "+name, profile.Settings); err != nil {
			return err
		}
	}
	return nil
}

func validateSettings(where string, s Settings) error {
	switch s.Format {
	case "", "text", "json", "csv":
	default:
		return fmt.Errorf("%s: unknown format %q", where, s.Format)
	}
	if s.MinSeverity != "" && !catalog.Severity(s.MinSeverity).Valid() {
		return fmt.Errorf("%s: unknown min_severity %q", where, s.MinSeverity)
	}
	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Project-local files first.
	for _, name := range []string{
		"burocrata.yaml",
		"burocrata.yml",
		".burocrata-scan.yaml",
		".burocrata-scan.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	// Then the user config directory.
	if configDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(configDir, "burocrata-scan", "config.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
