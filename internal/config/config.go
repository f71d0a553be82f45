// Package config handles configuration loading and management for asciitl.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for asciitl.
type Config struct {
	History HistoryConfig `mapstructure:"history"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// HistoryConfig holds render-history settings.
type HistoryConfig struct {
	// Enabled controls whether interactive renders are saved automatically.
	Enabled bool `mapstructure:"enabled"`
	// Limit is the maximum number of entries listed by the history command.
	Limit int `mapstructure:"limit"`
	// Path overrides the database location; empty means the XDG data dir.
	Path string `mapstructure:"path"`
}

// TUIConfig holds interactive-mode settings.
type TUIConfig struct {
	// SampleInput pre-fills the editor with the sample timeline.
	SampleInput bool `mapstructure:"sample_input"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	// Debounce coalesces file events arriving within this window.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
// 1. Environment variables (ASCIITL_HISTORY_PATH)
// 2. Project config (.asciitl.yaml in current directory or parent)
// 3. User config (~/.config/asciitl/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("history.path", "ASCIITL_HISTORY_PATH")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.History.Path = os.ExpandEnv(cfg.History.Path)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.History.Path = os.ExpandEnv(cfg.History.Path)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("history.path", cfg.History.Path)
	v.Set("tui.sample_input", cfg.TUI.SampleInput)
	v.Set("watch.debounce", cfg.Watch.Debounce.String())

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 50)
	v.SetDefault("history.path", "")

	v.SetDefault("tui.sample_input", true)

	v.SetDefault("watch.debounce", "200ms")
}

// getUserConfigDir returns the XDG config directory for asciitl.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "asciitl")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "asciitl")
	}
	return filepath.Join(home, ".config", "asciitl")
}

// findProjectConfig searches for .asciitl.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".asciitl.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			Enabled: true,
			Limit:   50,
		},
		TUI: TUIConfig{
			SampleInput: true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}
