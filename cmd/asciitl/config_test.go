package main

import (
	"strings"
	"testing"
	"time"

	"github.com/Sardonyx001/asciitl/internal/config"
)

func TestGetConfigValue(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		key  string
		want string
	}{
		{"history.enabled", "true"},
		{"history.limit", "50"},
		{"history.path", "(default)"},
		{"tui.sample_input", "true"},
		{"watch.debounce", "200ms"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := getConfigValue(cfg, tt.key)
			if err != nil {
				t.Fatalf("getConfigValue(%q) returned error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("getConfigValue(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetConfigValue_UnknownKey(t *testing.T) {
	if _, err := getConfigValue(config.Default(), "no.such.key"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestSetConfigValue(t *testing.T) {
	cfg := config.Default()

	if err := setConfigValue(cfg, "history.limit", "10"); err != nil {
		t.Fatalf("setConfigValue returned error: %v", err)
	}
	if cfg.History.Limit != 10 {
		t.Errorf("history.limit = %d, want 10", cfg.History.Limit)
	}

	if err := setConfigValue(cfg, "watch.debounce", "1s"); err != nil {
		t.Fatalf("setConfigValue returned error: %v", err)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("watch.debounce = %v, want 1s", cfg.Watch.Debounce)
	}

	if err := setConfigValue(cfg, "tui.sample_input", "false"); err != nil {
		t.Fatalf("setConfigValue returned error: %v", err)
	}
	if cfg.TUI.SampleInput {
		t.Error("tui.sample_input should be false")
	}
}

func TestSetConfigValue_Invalid(t *testing.T) {
	cfg := config.Default()

	if err := setConfigValue(cfg, "history.limit", "many"); err == nil {
		t.Error("expected an error for a non-integer limit")
	}
	if err := setConfigValue(cfg, "watch.debounce", "soon"); err == nil {
		t.Error("expected an error for a bad duration")
	}
	if err := setConfigValue(cfg, "unknown.key", "x"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"single line", "09:00 - 10:00 Standup", "09:00 - 10:00 Standup"},
		{"skips leading blanks", "\n\n09:00 - 10:00 Standup\nmore", "09:00 - 10:00 Standup"},
		{"empty input", "", ""},
		{"long line truncated", "09:00 - 10:00 A very long activity name that keeps going", "09:00 - 10:00 A very long activity na..."},
		{
			"multibyte names truncate on rune boundaries",
			"09:00 - 10:00 " + strings.Repeat("会", 30),
			"09:00 - 10:00 " + strings.Repeat("会", 23) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstLine(tt.text); got != tt.want {
				t.Errorf("firstLine(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
