package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/weekboard/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// appName names the config and data directories
	appName = "weekboard"

	// ThemeFileEnv points at a YAML file whose theme section overrides the config
	ThemeFileEnv = "WEEKBOARD_THEME_FILE"

	// DefaultStorageKey is the slot the schedule is persisted under
	DefaultStorageKey = "scheduleEvents"

	// DefaultLogLevel is used when log_level is missing or unparseable
	DefaultLogLevel = "info"
)

// Config represents the application configuration
type Config struct {
	DataDir     string             `yaml:"data_dir"`
	StorageKey  string             `yaml:"storage_key"`
	LogLevel    string             `yaml:"log_level"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from the WEEKBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("ignoring unreadable theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("ignoring malformed theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}

	// Load theme from WEEKBOARD_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath, creating parent directories
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ConfigPath returns the path Load reads from
func ConfigPath() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DefaultDataDir returns ~/.weekboard, or a relative .weekboard when the home
// directory is unknown
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// ResolvedDataDir returns DataDir with a leading ~ expanded
func (c *Config) ResolvedDataDir() string {
	dir := c.DataDir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

// SlogLevel parses LogLevel, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = DefaultDataDir()
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		c.StorageKey = DefaultStorageKey
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
