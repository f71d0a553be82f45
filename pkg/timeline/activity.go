// Package timeline turns free-text activity lists into ASCII timeline
// tables. The pipeline has three pure stages: Parse extracts activities
// from raw text, TimePoints derives the column axis, and Render draws each
// activity as a horizontal bar across that axis. None of the stages hold
// state or perform I/O, so they are safe to call from any goroutine.
package timeline

// Activity is a named interval on the daily timeline. Start and End are
// kept as the HH:MM labels they were parsed from; the renderer matches
// them against the time axis by string equality, so they are never
// converted to numeric times. Nothing enforces Start < End or that the
// labels are real clock times — "25:99" is accepted as long as it has the
// two-digit shape.
type Activity struct {
	// Start is the start-of-interval label in HH:MM form.
	Start string
	// End is the end-of-interval label in HH:MM form.
	End string
	// Name is the free-form text after the time range, possibly empty.
	Name string
}
