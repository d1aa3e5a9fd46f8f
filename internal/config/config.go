package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/aftercare/internal/config/colors"
)

// ThemeFileEnv names the environment variable pointing at an extra theme file
const ThemeFileEnv = "AFTERCARE_THEME_FILE"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme" toml:"theme"`
	Picker      PickerConfig       `yaml:"picker" toml:"picker"`
	Program     ProgramConfig      `yaml:"program" toml:"program"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges the theme from AFTERCARE_THEME_FILE.
// Files ending in .toml are decoded as TOML, anything else as YAML.
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme" toml:"theme"`
	}

	if strings.EqualFold(filepath.Ext(themeFile), ".toml") {
		err = toml.Unmarshal(themeData, &themeConfig)
	} else {
		err = yaml.Unmarshal(themeData, &themeConfig)
	}
	if err != nil {
		slog.Warn("theme file not parsed", "path", themeFile, "error", err)
		return
	}

	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	}

	// Fill in any missing values with defaults before the theme file merges
	// over them, so a theme preset switch still wins
	config.applyDefaults()
	loadThemeFile(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &config, nil
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

// Validate checks the sections that can be wrong after defaults
func (c *Config) Validate() error {
	if err := c.Picker.Validate(); err != nil {
		return err
	}
	return c.Program.Validate()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "aftercare", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "aftercare", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Picker.applyDefaults()
	c.Program.applyDefaults()
}
