// Package config loads user settings from $XDG_CONFIG_HOME/nexus/config.yaml
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/nexus/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDBPath    = "NEXUS_DB_PATH"
	EnvThemeFile = "NEXUS_THEME_FILE"
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvLegacyKey = "API_KEY"
)

const (
	defaultModel   = "gemini-3-flash-preview"
	defaultTemp    = 0.7
	configDirName  = "nexus"
	configFileName = "config.yaml"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	AI          AIConfig           `yaml:"ai"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file. Empty means ~/.nexus/nexus.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AIConfig configures the Gemini advisor
type AIConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	APIKeyEnv   string  `yaml:"api_key_env"`

	// APIKey is resolved from the environment and never written to disk
	APIKey string `yaml:"-"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	// Load theme from NEXUS_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.applyEnv()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, configDirName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// loadThemeFile merges the theme section of the file named by NEXUS_THEME_FILE
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
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme, false)
		if themeConfig.Theme.Preset != "" {
			config.ColorScheme.Preset = themeConfig.Theme.Preset
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.AI.Model == "" {
		c.AI.Model = defaultModel
	}
	if c.AI.Temperature <= 0 {
		c.AI.Temperature = defaultTemp
	}
	if c.AI.APIKeyEnv == "" {
		c.AI.APIKeyEnv = EnvAPIKey
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets the environment override the file
func (c *Config) applyEnv() {
	if path := strings.TrimSpace(os.Getenv(EnvDBPath)); path != "" {
		c.Database.Path = path
	}

	c.AI.APIKey = strings.TrimSpace(os.Getenv(c.AI.APIKeyEnv))
	if c.AI.APIKey == "" {
		c.AI.APIKey = strings.TrimSpace(os.Getenv(EnvLegacyKey))
	}
}
