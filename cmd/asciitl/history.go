package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Sardonyx001/asciitl/internal/config"
	"github.com/Sardonyx001/asciitl/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved renders",
	Long: `History lists renders saved from interactive mode (Ctrl+S) or with
"render --save", newest first. The number of rows shown is capped by the
history.limit configuration key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryList()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved render",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryShow(args[0])
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all saved renders as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runHistoryExport(path)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved renders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryClear()
	},
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
}

// openHistory opens the history store at the configured path.
func openHistory() (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

func runHistoryList() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(cfg.History.Limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No saved renders.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s  %2d activities  %s\n",
			entry.ID,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			entry.Activities,
			firstLine(entry.Input),
		)
	}
	return nil
}

func runHistoryShow(id string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", id, err)
	}

	fmt.Print(entry.Table)
	return nil
}

func runHistoryExport(path string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(0)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if path == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Exported %d renders to %s\n", len(entries), path)
	return nil
}

func runHistoryClear() error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	fmt.Println("History cleared.")
	return nil
}

// firstLine returns the first non-empty line of a saved input, truncated
// for list display.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if runes := []rune(line); len(runes) > 40 {
			return string(runes[:37]) + "..."
		}
		return line
	}
	return ""
}
