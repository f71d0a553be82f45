package tui

import (
	"strings"

	"github.com/Sardonyx001/asciitl/pkg/timeline"
)

// RenderResult holds the outcome of running the pipeline over the editor
// contents.
type RenderResult struct {
	// Table is the rendered ASCII table, empty when nothing parsed.
	Table string
	// Activities is the number of activities parsed.
	Activities int
	// Warn reports non-empty input that produced no valid activities —
	// the one condition the shell surfaces to the user.
	Warn bool
}

// RenderText runs parse → time points → render over raw editor text.
// Whitespace-only input is not a warning, just an empty result.
func RenderText(text string) RenderResult {
	activities := timeline.Parse(text)
	if len(activities) == 0 {
		return RenderResult{Warn: strings.TrimSpace(text) != ""}
	}

	table, err := timeline.Render(activities, timeline.TimePoints(activities))
	if err != nil {
		// Unreachable with a non-empty activity list, but degrade to the
		// warning path rather than dropping the error on the floor.
		return RenderResult{Warn: true}
	}

	return RenderResult{Table: table, Activities: len(activities)}
}
