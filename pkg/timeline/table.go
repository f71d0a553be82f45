package timeline

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNoTimePoints is returned by Render when the time-point slice is
// empty: with no columns there is nothing to size the table against.
var ErrNoTimePoints = errors.New("timeline: no time points to render")

const (
	// minNameWidth fits the literal "activity" header word.
	minNameWidth = 8
	// minTimeWidth keeps time columns readable. It also guarantees the
	// cell-drawing code never sees a width below 2, which would make the
	// dash runs negative length.
	minTimeWidth = 7
)

// Render lays the activities out as horizontal bars across the time-point
// columns and returns the whole table as one newline-terminated string.
// Rows keep the input order. An activity whose Start or End label does not
// appear in timePoints produces no row at all — it is dropped without a
// diagnostic. With an empty activity slice the table is just the header
// and separator lines. Identical inputs produce byte-identical output.
func Render(activities []Activity, timePoints []string) (string, error) {
	if len(timePoints) == 0 {
		return "", ErrNoTimePoints
	}

	nameWidth := minNameWidth
	for _, act := range activities {
		if n := utf8.RuneCountInString(act.Name); n > nameWidth {
			nameWidth = n
		}
	}
	timeWidth := minTimeWidth
	for _, tp := range timePoints {
		if n := utf8.RuneCountInString(tp); n > timeWidth {
			timeWidth = n
		}
	}

	sep := separatorLine(nameWidth, timeWidth, len(timePoints))

	var b strings.Builder
	b.WriteString(sep)
	b.WriteString(headerLine(nameWidth, timeWidth, timePoints))
	b.WriteString(sep)
	for _, act := range activities {
		if row, ok := activityRow(act, timePoints, nameWidth, timeWidth); ok {
			b.WriteString(row)
		}
	}
	b.WriteString(sep)
	return b.String(), nil
}

// separatorLine draws the horizontal rule: a dash run under the name
// column followed by one dash run per time column.
func separatorLine(nameWidth, timeWidth, columns int) string {
	var b strings.Builder
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("-", nameWidth+2))
	b.WriteByte(' ')
	for i := 0; i < columns; i++ {
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("-", timeWidth))
	}
	b.WriteByte('\n')
	return b.String()
}

// headerLine draws the "activity" label and every time point, each
// centered in its column.
func headerLine(nameWidth, timeWidth int, timePoints []string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(center("activity", nameWidth))
	b.WriteString("  ")
	for _, tp := range timePoints {
		b.WriteByte(' ')
		b.WriteString(center(tp, timeWidth))
	}
	b.WriteByte('\n')
	return b.String()
}

// activityRow draws one table row: the left-justified name followed by one
// cell per time point, with the bar spanning the start and end columns.
// Returns false when either label is missing from the axis, in which case
// the caller emits nothing for this activity.
func activityRow(act Activity, timePoints []string, nameWidth, timeWidth int) (string, bool) {
	startIdx := indexOf(timePoints, act.Start)
	endIdx := indexOf(timePoints, act.End)
	if startIdx < 0 || endIdx < 0 {
		return "", false
	}

	cells := make([]string, len(timePoints))
	for i := range cells {
		cells[i] = strings.Repeat(" ", timeWidth)
	}

	if startIdx == endIdx {
		// Zero-width activity: the bar closes inside a single cell.
		cells[startIdx] = "|" + strings.Repeat("-", timeWidth-2) + "|"
	} else {
		cells[startIdx] = "|" + strings.Repeat("-", timeWidth-2) + "-"
	}
	for i := startIdx + 1; i < endIdx; i++ {
		cells[i] = strings.Repeat("-", timeWidth)
	}
	if endIdx > startIdx {
		cells[endIdx] = strings.Repeat("-", timeWidth-2) + "|"
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(padRight(act.Name, nameWidth))
	b.WriteString("  ")
	for _, cell := range cells {
		b.WriteByte(' ')
		b.WriteString(cell)
	}
	b.WriteByte('\n')
	return b.String(), true
}

// center pads s with spaces to the given rune width. When the padding is
// uneven the extra space goes left for odd widths and right for even ones,
// which keeps header labels visually anchored regardless of column size.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	if gap%2 == 1 && width%2 == 1 {
		left++
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// padRight left-justifies s in a field of the given rune width.
func padRight(s string, width int) string {
	if gap := width - utf8.RuneCountInString(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// indexOf returns the position of target in points, or -1.
func indexOf(points []string, target string) int {
	for i, p := range points {
		if p == target {
			return i
		}
	}
	return -1
}
