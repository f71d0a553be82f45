// Package tui implements the interactive shell around the timeline
// pipeline: an editor pane for raw activity text and a live preview of the
// rendered table. The pipeline itself stays pure; this package only moves
// strings between widgets.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SaveFunc persists a render and returns the new entry id.
type SaveFunc func(input, table string, activities int) (string, error)

const editorHeight = 10

// App is the top-level bubbletea model for interactive mode.
type App struct {
	editor  textarea.Model
	preview viewport.Model
	onSave  SaveFunc

	result   RenderResult
	status   string
	width    int
	height   int
	focused  bool // true while the editor has focus
	quitting bool

	titleStyle  lipgloss.Style
	warnStyle   lipgloss.Style
	statusStyle lipgloss.Style
	hintStyle   lipgloss.Style
	paneStyle   lipgloss.Style
	focusStyle  lipgloss.Style
}

// NewApp creates the interactive app. The editor starts with the given
// initial text; onSave may be nil when history is disabled.
func NewApp(initial string, onSave SaveFunc) *App {
	editor := textarea.New()
	editor.Placeholder = "HH:MM - HH:MM Activity"
	editor.SetValue(initial)
	editor.SetHeight(editorHeight)
	editor.Focus()

	a := &App{
		editor:  editor,
		preview: viewport.New(80, 20),
		onSave:  onSave,
		focused: true,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),

		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		paneStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		focusStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
	}
	a.refresh()

	return a
}

// Result returns the latest pipeline outcome (for tests and callers that
// want the final state after the program exits).
func (a *App) Result() RenderResult {
	return a.result
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetWidth(msg.Width - 6)
		a.preview.Width = msg.Width - 6
		// Title, editor pane, footer, and borders eat the rest.
		if h := msg.Height - editorHeight - 9; h > 3 {
			a.preview.Height = h
		}
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit

		case "tab":
			a.focused = !a.focused
			if a.focused {
				return a, a.editor.Focus()
			}
			a.editor.Blur()
			return a, nil

		case "ctrl+s":
			a.save()
			return a, nil
		}
	}

	var cmd tea.Cmd
	if a.focused {
		a.editor, cmd = a.editor.Update(msg)
		a.refresh()
	} else {
		a.preview, cmd = a.preview.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	title := a.titleStyle.Render("asciitl") +
		a.hintStyle.Render("  ASCII timeline table generator")

	editorStyle := a.paneStyle
	previewStyle := a.focusStyle
	if a.focused {
		editorStyle = a.focusStyle
		previewStyle = a.paneStyle
	}

	var body string
	switch {
	case a.result.Warn:
		body = a.warnStyle.Render(
			"No valid activities found. Use the format '09:00 - 09:15 Activity'.")
	case a.result.Table == "":
		body = a.hintStyle.Render("Type activities above to see the table.")
	default:
		body = a.preview.View()
	}

	footer := a.hintStyle.Render("tab: switch pane • ctrl+s: save • ctrl+c: quit")
	if a.status != "" {
		footer = a.statusStyle.Render(a.status) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		editorStyle.Render(a.editor.View()),
		previewStyle.Render(body),
		footer,
	)
}

// refresh reruns the pipeline over the editor contents and updates the
// preview pane.
func (a *App) refresh() {
	a.result = RenderText(a.editor.Value())
	a.preview.SetContent(a.result.Table)
}

// save persists the current render through the save callback.
func (a *App) save() {
	if a.onSave == nil {
		a.status = "history is disabled"
		return
	}
	if a.result.Table == "" {
		a.status = "nothing to save"
		return
	}

	id, err := a.onSave(a.editor.Value(), a.result.Table, a.result.Activities)
	if err != nil {
		a.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.status = "saved " + shortID(id)
}

// shortID trims a UUID down to the prefix shown in the status line.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
