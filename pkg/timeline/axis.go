package timeline

import "sort"

// TimePoints collects every distinct Start and End label across the given
// activities and returns them sorted ascending. The sort is plain string
// comparison, which coincides with chronological order only because
// canonical HH:MM labels are zero-padded and equal length; the function
// does not validate or normalize what it is given. Empty input yields an
// empty slice.
func TimePoints(activities []Activity) []string {
	seen := make(map[string]struct{}, len(activities)*2)
	for _, act := range activities {
		seen[act.Start] = struct{}{}
		seen[act.End] = struct{}{}
	}

	points := make([]string, 0, len(seen))
	for p := range seen {
		points = append(points, p)
	}
	sort.Strings(points)
	return points
}
