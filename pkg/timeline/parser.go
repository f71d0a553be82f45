package timeline

import (
	"regexp"
	"strings"
)

// linePattern matches a single activity line: two-digit hour and minute,
// a dash with optional surrounding whitespace, the end time, then at least
// one whitespace character before the name. Anchored at the start so a
// line like "009:00 - 09:15 X" is rejected instead of matched mid-line.
var linePattern = regexp.MustCompile(`^(\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})\s+(.*)`)

// Parse extracts activities from raw text, one per matching line, in input
// order. Each line is trimmed of surrounding whitespace before matching.
// Lines that do not fit the "HH:MM - HH:MM name" shape are skipped
// silently; malformed input never produces an error, only fewer
// activities. The worst case is an empty result.
func Parse(text string) []Activity {
	var activities []Activity
	for _, line := range strings.Split(text, "\n") {
		m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		activities = append(activities, Activity{
			Start: m[1],
			End:   m[2],
			Name:  m[3],
		})
	}
	return activities
}
