package tui

// SampleInput is the timeline pre-filled into the editor so a first-time
// user sees a working table immediately.
const SampleInput = "09:00 - 09:15 Morning Routine\n" +
	"09:15 - 10:00 Breakfast\n" +
	"10:00 - 12:00 Work Session 1\n" +
	"12:00 - 13:00 Lunch Break\n" +
	"13:00 - 15:00 Work Session 2\n" +
	"15:00 - 16:00 Coffee Break\n" +
	"16:00 - 18:00 Work Session 3\n" +
	"18:00 - 19:00 Evening Routine\n"
