// =============================================================================
// Performance Index Calculator - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The calculator runs
// without one; the file only tunes logging and output formatting.
//
// EXAMPLE (spicalc.yaml):
//   log_level: debug
//   log_format: json
//   log_file: ./logs/spicalc.log
//   decimal_places: 2
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "spicalc.yaml"

// MaxDecimalPlaces bounds DecimalPlaces.
const MaxDecimalPlaces = 10

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the slog handler.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// LogFile is the path logs are appended to. Empty means stderr.
	// Logs never go to stdout, which carries the interactive session.
	LogFile string `yaml:"log_file,omitempty"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// DecimalPlaces is the number of digits printed after the decimal point
	// for SPI and CPI. A pointer so an explicit 0 survives defaulting.
	// Default: 2
	DecimalPlaces *int `yaml:"decimal_places"`
}

// Precision returns the effective number of decimal places.
func (c *Config) Precision() int {
	if c.DecimalPlaces == nil {
		return 2
	}
	return *c.DecimalPlaces
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every option at its default.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file. If it equals DefaultPath and
//     the file does not exist, defaults are returned. A missing file at any
//     other path is an error.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses, defaults and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.DecimalPlaces == nil {
		places := 2
		cfg.DecimalPlaces = &places
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
}

// validate checks option values.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}

	if p := *cfg.DecimalPlaces; p < 0 || p > MaxDecimalPlaces {
		return fmt.Errorf("decimal_places must be between 0 and %d, got %d", MaxDecimalPlaces, p)
	}

	return nil
}
