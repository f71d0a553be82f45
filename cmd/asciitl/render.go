package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sardonyx001/asciitl/internal/config"
	"github.com/Sardonyx001/asciitl/internal/history"
	"github.com/Sardonyx001/asciitl/internal/watch"
	"github.com/Sardonyx001/asciitl/pkg/timeline"
)

var (
	renderWatch  bool
	renderOutput string
	renderSave   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a timeline file (or stdin) as an ASCII table",
	Long: `Render reads activity lines from the given file, or from stdin when
no file (or "-") is given, and prints the resulting table.

With --watch, the file is re-rendered every time it changes on disk until
interrupted. With --save, each render is also recorded in the history
database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runRender(path)
	},
}

func init() {
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render whenever the file changes")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the table to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderSave, "save", false, "Record the render in history")
}

func runRender(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var store *history.Store
	if renderSave {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
	}

	if path == "" || path == "-" {
		if renderWatch {
			return fmt.Errorf("--watch requires a file argument")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return renderText(string(data), store)
	}

	if !renderWatch {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return renderText(string(data), store)
	}

	return watchAndRender(cfg, path, store)
}

// renderText runs the pipeline over raw text and writes the table to the
// configured destination. An input that parses to nothing is not an error:
// a warning goes to stderr and the command exits cleanly.
func renderText(text string, store *history.Store) error {
	activities := timeline.Parse(text)
	if len(activities) == 0 {
		if strings.TrimSpace(text) != "" {
			color.New(color.FgYellow).Fprintln(os.Stderr,
				"No valid activities found. Use the format '09:00 - 09:15 Activity'.")
		}
		return nil
	}

	table, err := timeline.Render(activities, timeline.TimePoints(activities))
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if store != nil {
		if _, err := store.Save(text, table, len(activities)); err != nil {
			return fmt.Errorf("saving render: %w", err)
		}
	}

	if renderOutput != "" {
		if err := os.WriteFile(renderOutput, []byte(table), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOutput, err)
		}
		return nil
	}

	fmt.Print(table)
	return nil
}

// watchAndRender renders the file once, then again after every settled
// change, until interrupted.
func watchAndRender(cfg *config.Config, path string, store *history.Store) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(path, cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Close()

	render := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return
		}
		if err := renderText(string(data), store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Events():
			fmt.Println()
			render()
		}
	}
}
