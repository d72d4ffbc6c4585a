// Package config loads tradelog configuration from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tradelog/instrument"
)

// Config is the complete tradelog configuration.
type Config struct {
	Journal     JournalConfig     `json:"journal" yaml:"journal"`
	Report      ReportConfig      `json:"report" yaml:"report"`
	Instruments InstrumentsConfig `json:"instruments" yaml:"instruments"`
}

// JournalConfig locates the trade store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig pins the analytics conventions: which timezone timestamps
// are interpreted in, and where the morning/afternoon split falls.
type ReportConfig struct {
	Timezone      string `json:"timezone" yaml:"timezone"`
	MorningCutoff int    `json:"morning_cutoff" yaml:"morning_cutoff"`
}

// InstrumentsConfig optionally points at a custom instrument table.
type InstrumentsConfig struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns a configuration with sensible defaults: a journal in the
// working directory, local-time reporting and the noon session split.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{DBPath: "./tradelog.sqlite"},
		Report: ReportConfig{
			Timezone:      "Local",
			MorningCutoff: 12,
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Report.MorningCutoff < 0 || c.Report.MorningCutoff > 23 {
		return fmt.Errorf("report.morning_cutoff must be an hour between 0 and 23")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("report.timezone: %w", err)
	}
	return nil
}

// Location resolves the reporting timezone. An empty or "Local" timezone
// means the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Report.Timezone == "" || c.Report.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Report.Timezone)
}

// Table resolves the instrument table: the configured custom file if set,
// otherwise the built-in table.
func (c *Config) Table() (*instrument.Table, error) {
	if c.Instruments.File == "" {
		return instrument.Default, nil
	}
	return instrument.TableFromFile(c.Instruments.File)
}
