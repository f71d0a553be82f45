package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Sardonyx001/asciitl/internal/config"
	"github.com/Sardonyx001/asciitl/internal/history"
	"github.com/Sardonyx001/asciitl/internal/tui"
)

var rootNoSample bool

var rootCmd = &cobra.Command{
	Use:   "asciitl",
	Short: "ASCII timeline table generator",
	Long: `asciitl turns a plain-text list of daily activities into an ASCII
table: one row per activity, one column per distinct time point, with each
activity drawn as a horizontal bar across the columns it spans.

Input format, one activity per line (24-hour times):

  09:00 - 09:15 Morning Routine
  09:15 - 10:00 Breakfast

Lines that do not fit the format are skipped silently.

With no arguments, launches an interactive editor with a live preview.
Use "asciitl render" to format a file or stdin directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&rootNoSample, "no-sample", false, "Start with an empty editor instead of the sample timeline")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractive starts the TUI shell.
func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	initial := ""
	if cfg.TUI.SampleInput && !rootNoSample {
		initial = tui.SampleInput
	}

	var onSave tui.SaveFunc
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
		onSave = store.Save
	}

	program := tea.NewProgram(tui.NewApp(initial, onSave), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running interactive mode: %w", err)
	}
	return nil
}
