package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete StepMate configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// APIConfig controls how the decomposition service is reached.
// The API key and model live in the stored settings, not here; this
// section only covers transport-level knobs.
type APIConfig struct {
	// BaseURL is the chat completion endpoint base (default: Volcengine Ark)
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout (default: 30)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// PathsConfig controls where StepMate stores data
type PathsConfig struct {
	// DataDir is the directory holding the JSON documents and the log file.
	// If empty, defaults to $XDG_DATA_HOME/stepmate (or ~/.local/share/stepmate).
	// Supports ~ for home directory expansion.
	DataDir string `mapstructure:"data_dir"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether file logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// PageSize is how many tasks the list view shows per page (default: 10)
	PageSize int `mapstructure:"page_size"`
	// AltScreen runs the checklist in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen"`
}

// Timeout returns the API request timeout as a time.Duration
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ResolveDataDir returns the resolved data directory path.
// If DataDir is empty, it returns the XDG data default.
// If DataDir starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveDataDir() string {
	if p.DataDir == "" {
		return DefaultDataDir()
	}

	path := p.DataDir
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://ark.cn-beijing.volces.com/api/v3",
			TimeoutSeconds: 30,
		},
		Paths: PathsConfig{
			DataDir: "", // Empty means use the XDG data default
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		TUI: TUIConfig{
			PageSize:  10,
			AltScreen: true,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("tui.page_size", defaults.TUI.PageSize)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepmate")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stepmate"
	}
	return filepath.Join(home, ".config", "stepmate")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultDataDir returns the path to the user's data directory
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepmate")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stepmate"
	}
	return filepath.Join(home, ".local", "share", "stepmate")
}
