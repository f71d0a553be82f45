package timeline

import (
	"errors"
	"strings"
	"testing"
)

func TestRender_TwoActivities(t *testing.T) {
	activities := Parse("09:00 - 09:15 A\n09:15 - 10:00 B")
	points := TimePoints(activities)

	got, err := Render(activities, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	want := strings.Join([]string{
		" ----------  ------- ------- -------",
		"  activity    09:00   09:15   10:00 ",
		" ----------  ------- ------- -------",
		"  A          |------ -----|        ",
		"  B                  |------ -----|",
		" ----------  ------- ------- -------",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_LongNamesAndZeroWidthBar(t *testing.T) {
	activities := []Activity{
		{Start: "09:00", End: "09:15", Name: "Morning Routine"},
		{Start: "09:15", End: "10:00", Name: "Breakfast"},
		{Start: "10:00", End: "10:00", Name: "Checkpoint"},
	}
	points := TimePoints(activities)

	got, err := Render(activities, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	want := strings.Join([]string{
		" -----------------  ------- ------- -------",
		"      activity       09:00   09:15   10:00 ",
		" -----------------  ------- ------- -------",
		"  Morning Routine   |------ -----|        ",
		"  Breakfast                 |------ -----|",
		"  Checkpoint                        |-----|",
		" -----------------  ------- ------- -------",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EmptyTimePoints(t *testing.T) {
	_, err := Render([]Activity{{Start: "09:00", End: "10:00", Name: "A"}}, nil)
	if !errors.Is(err, ErrNoTimePoints) {
		t.Errorf("Render() error = %v, want ErrNoTimePoints", err)
	}
}

func TestRender_EmptyActivities(t *testing.T) {
	got, err := Render(nil, []string{"09:00"})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// Just the frame: separator, header, separator, and the closing
	// separator that follows the (empty) row section.
	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("expected 4 lines, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, "activity") {
		t.Errorf("header word missing from output:\n%s", got)
	}
}

func TestRender_UnmatchedLabelOmitsRow(t *testing.T) {
	matched := []Activity{
		{Start: "09:00", End: "10:00", Name: "Kept"},
		{Start: "10:00", End: "11:00", Name: "Also kept"},
	}
	points := TimePoints(matched)

	full, err := Render(matched, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// The stray activity references a label the axis does not carry, so
	// its row must disappear entirely rather than render with blank cells.
	stray := append(matched, Activity{Start: "09:00", End: "23:00", Name: "Dropped"})
	partial, err := Render(stray, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if strings.Contains(partial, "Dropped") {
		t.Errorf("unmatched activity leaked into output:\n%s", partial)
	}
	if got, want := strings.Count(partial, "\n"), strings.Count(full, "\n"); got != want {
		t.Errorf("row count changed: got %d lines, want %d", got, want)
	}
}

func TestRender_LineCount(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"one activity", "09:00 - 10:00 A", 5},
		{"two activities", "09:00 - 10:00 A\n10:00 - 11:00 B", 6},
		{"duplicate rows both render", "09:00 - 10:00 A\n09:00 - 10:00 A", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := Parse(tt.text)
			got, err := Render(activities, TimePoints(activities))
			if err != nil {
				t.Fatalf("Render() returned error: %v", err)
			}
			if n := strings.Count(got, "\n"); n != tt.lines {
				t.Errorf("expected %d lines, got %d:\n%s", tt.lines, n, got)
			}
		})
	}
}

func TestRender_NameFieldRoundTrips(t *testing.T) {
	activities := Parse(
		"09:00 - 09:15 Morning Routine\n" +
			"09:15 - 10:00 Breakfast\n" +
			"10:00 - 12:00 Work Session 1",
	)
	points := TimePoints(activities)

	got, err := Render(activities, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	rows := strings.Split(got, "\n")[3 : 3+len(activities)]
	for i, row := range rows {
		name := strings.TrimRight(row[2:2+len("Morning Routine")], " ")
		if name != activities[i].Name {
			t.Errorf("row %d name field = %q, want %q", i, name, activities[i].Name)
		}
	}
}

func TestRender_ReversedInterval(t *testing.T) {
	// End sorts before start: the opening cell is still drawn, but the
	// bar never closes and no interior cells appear.
	activities := []Activity{{Start: "10:00", End: "09:00", Name: "Backwards"}}
	got, err := Render(activities, TimePoints(activities))
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(got, "|------") {
		t.Errorf("expected an opening bar cell:\n%s", got)
	}
	if strings.Contains(got, "-----|") {
		t.Errorf("did not expect a closing bar cell:\n%s", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	activities := Parse("09:00 - 09:15 A\n09:15 - 10:00 B")
	points := TimePoints(activities)

	first, err := Render(activities, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	second, err := Render(activities, points)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if first != second {
		t.Error("Render() is not deterministic for identical inputs")
	}
}
