// =============================================================================
// Cafeteria Billing - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration tells the billing counter where to find the menu, where to
// append invoices, and how to log.
//
// CONFIGURATION FILE:
//   config.yaml (path overridable with --config)
//
// A missing configuration file is not an error: the counter must still open
// with sensible defaults. A file that exists but cannot be parsed is an error.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	// =========================================================================
	// DATA SOURCES
	// =========================================================================

	// MenuFile is the path to the menu source.
	// Files ending in .xlsx are read as spreadsheets, anything else as the
	// "<name>, <price>" text format.
	// Default: "menu.txt"
	MenuFile string `yaml:"menu_file"`

	// InvoiceLog is the append-only file that receives one block per invoice.
	// Default: "invoices.txt"
	InvoiceLog string `yaml:"invoice_log"`

	// ExportDir is where "invoices export" writes its workbooks.
	// Default: "./exports"
	ExportDir string `yaml:"export_dir"`

	// ExportNameFormat is the file name format for exported workbooks.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}
	// Default: "invoices_{timestamp}.xlsx"
	ExportNameFormat string `yaml:"export_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the application log file.
	// Default: "./logs/billing.log"
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// COUNTER SETTINGS
	// =========================================================================

	// CurrencySymbol is printed in front of every amount.
	// Default: "$"
	CurrencySymbol string `yaml:"currency_symbol"`

	// ClearScreen controls whether the dialogue clears the terminal between
	// screens. Disable it when piping input or recording sessions.
	// Default: true
	ClearScreen *bool `yaml:"clear_screen"`

	// Farewell is printed below the final invoice.
	// Default: "Thank you for dining with us!"
	Farewell string `yaml:"farewell"`
}

// ShouldClearScreen reports whether the terminal should be cleared.
func (c *Config) ShouldClearScreen() bool {
	return c.ClearScreen == nil || *c.ClearScreen
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file exists but cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Run with defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.MenuFile == "" {
		config.MenuFile = "menu.txt"
	}
	if config.InvoiceLog == "" {
		config.InvoiceLog = "invoices.txt"
	}
	if config.ExportDir == "" {
		config.ExportDir = "./exports"
	}
	if config.ExportNameFormat == "" {
		config.ExportNameFormat = "invoices_{timestamp}.xlsx"
	}
	if config.LogFile == "" {
		config.LogFile = "./logs/billing.log"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.CurrencySymbol == "" {
		config.CurrencySymbol = "$"
	}
	if config.Farewell == "" {
		config.Farewell = "Thank you for dining with us!"
	}
}

// validate validates the configuration.
func validate(config *Config) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	if strings.TrimSpace(config.MenuFile) == "" {
		return fmt.Errorf("menu_file must not be blank")
	}
	if strings.TrimSpace(config.InvoiceLog) == "" {
		return fmt.Errorf("invoice_log must not be blank")
	}

	return nil
}
