package analytics

import "time"

const dayKeyLayout = "2006-01-02"

// dayKey formats t as the canonical YYYY-MM-DD bucket key in loc.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// dayBuckets returns the period+1 day keys covering today and the preceding
// period days, oldest first.
func dayBuckets(now time.Time, period int) []string {
	keys := make([]string, 0, period+1)
	for i := period; i >= 0; i-- {
		keys = append(keys, dayKey(now.AddDate(0, 0, -i), now.Location()))
	}
	return keys
}

// dayStart truncates t to local midnight.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// weekStart truncates t to the Monday midnight opening its week.
func weekStart(t time.Time) time.Time {
	t = dayStart(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// weekWindow is a half-open [Start, End) Monday-to-Monday range.
type weekWindow struct {
	Start time.Time
	End   time.Time
}

// lastDay is the Sunday closing the window, for labels and date fields.
func (w weekWindow) lastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

// weekWindows returns the given number of calendar weeks ending with the week
// containing now, oldest first.
func weekWindows(now time.Time, weeks int) []weekWindow {
	windows := make([]weekWindow, 0, weeks)
	start := weekStart(now).AddDate(0, 0, -7*(weeks-1))
	for i := 0; i < weeks; i++ {
		windows = append(windows, weekWindow{Start: start, End: start.AddDate(0, 0, 7)})
		start = start.AddDate(0, 0, 7)
	}
	return windows
}

// hourLabel renders an hour of day as a 12-hour clock label, e.g. "2:00 PM".
func hourLabel(hour int) string {
	return time.Date(2000, time.January, 1, hour, 0, 0, 0, time.UTC).Format("3:00 PM")
}
