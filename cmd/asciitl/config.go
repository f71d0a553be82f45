package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sardonyx001/asciitl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify asciitl configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/asciitl/config.yaml
Project-specific overrides can be placed in .asciitl.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	pathDisplay := cfg.History.Path
	if pathDisplay == "" {
		pathDisplay = "(default)"
	}

	fmt.Printf("history.enabled: %t\n", cfg.History.Enabled)
	fmt.Printf("history.limit: %d\n", cfg.History.Limit)
	fmt.Printf("history.path: %s\n", pathDisplay)
	fmt.Printf("tui.sample_input: %t\n", cfg.TUI.SampleInput)
	fmt.Printf("watch.debounce: %s\n", cfg.Watch.Debounce)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "history.enabled":
		return strconv.FormatBool(cfg.History.Enabled), nil
	case "history.limit":
		return strconv.Itoa(cfg.History.Limit), nil
	case "history.path":
		if cfg.History.Path == "" {
			return "(default)", nil
		}
		return cfg.History.Path, nil
	case "tui.sample_input":
		return strconv.FormatBool(cfg.TUI.SampleInput), nil
	case "watch.debounce":
		return cfg.Watch.Debounce.String(), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue updates a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.History.Enabled = b
	case "history.limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, err)
		}
		cfg.History.Limit = n
	case "history.path":
		cfg.History.Path = value
	case "tui.sample_input":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		cfg.TUI.SampleInput = b
	case "watch.debounce":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		cfg.Watch.Debounce = d
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
