package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDataDir   = "INVOICER_DATA_DIR"
	EnvLogLevel  = "INVOICER_LOG_LEVEL"
	EnvThemeFile = "INVOICER_THEME_FILE"
	EnvConfig    = "INVOICER_CONFIG"
)

// Defaults used when the config file leaves a value unset
const (
	DefaultCurrency         = "USD"
	DefaultLogLevel         = "info"
	DefaultNumberPrefix     = "INV"
	DefaultSequenceWidth    = 4
	DefaultPaymentTermsDays = 30
)

// Config represents the application configuration
type Config struct {
	DataDir         string        `yaml:"data_dir"`
	DefaultCurrency string        `yaml:"default_currency"`
	LogLevel        string        `yaml:"log_level"`
	Invoice         InvoiceConfig `yaml:"invoice"`
	ColorScheme     ColorScheme   `yaml:"theme"`
}

// InvoiceConfig controls numbering and due dates of new invoices
type InvoiceConfig struct {
	NumberPrefix  string `yaml:"number_prefix"`
	SequenceWidth int    `yaml:"sequence_width"`

	// Zero means the default of 30 days
	PaymentTermsDays int `yaml:"payment_terms_days"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadDotEnv reads .env from the working directory if present.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}
}

// loadThemeFile loads and merges theme from INVOICER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv lets environment variables override file values
func applyEnv(config *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		config.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.LogLevel = level
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	loadDotEnv()

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	loadThemeFile(config)
	applyEnv(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv(EnvConfig); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "invoicer", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "invoicer", "config.yaml"), nil
}

// defaultDataDir returns ~/.invoicer, or a relative directory when the
// home directory is unknown
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".invoicer"
	}
	return filepath.Join(homeDir, ".invoicer")
}

// expandHome turns a leading ~ into the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.DataDir = expandHome(c.DataDir)

	if c.DefaultCurrency == "" {
		c.DefaultCurrency = DefaultCurrency
	}
	c.DefaultCurrency = strings.ToUpper(c.DefaultCurrency)

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.Invoice.NumberPrefix == "" {
		c.Invoice.NumberPrefix = DefaultNumberPrefix
	}
	if c.Invoice.SequenceWidth <= 0 {
		c.Invoice.SequenceWidth = DefaultSequenceWidth
	}
	if c.Invoice.PaymentTermsDays <= 0 {
		c.Invoice.PaymentTermsDays = DefaultPaymentTermsDays
	}

	c.ColorScheme.ApplyDefaults()
}
