// Package schedule maps real dates onto the NFL season calendar and decides
// when weekly recaps are worth generating.
package schedule

import "time"

// weekStarts holds the first day of each NFL week for the 2025 season
// (opening game September 4th, 2025). Entries are ordered chronologically.
var weekStarts = []struct {
	date time.Time
	week int
}{
	{time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC), 1},
	{time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC), 2},
	{time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), 3},
	{time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), 4},
	{time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), 5},
	{time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), 6},
	{time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), 7},
	{time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), 8},
	{time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC), 9},
	{time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), 10},
	{time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), 11},
	{time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC), 12},
	{time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC), 13},
	{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 14},
	{time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC), 15},
	{time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), 16},
	{time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), 17},
	{time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), 18},
}

// CurrentWeek returns the NFL week number containing the given date, or 0 if
// the date falls before the season opener.
func CurrentWeek(now time.Time) int {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := 0
	for _, ws := range weekStarts {
		if day.Before(ws.date) {
			break
		}
		week = ws.week
	}
	return week
}

// MostRecentCompletedWeek returns the last week whose games have finished.
// During week N the completed week is N-1.
func MostRecentCompletedWeek(now time.Time) int {
	w := CurrentWeek(now) - 1
	if w < 0 {
		return 0
	}
	return w
}

// RecapWindowOpen reports whether the recap window is open: Tuesday 4am
// through Thursday 7pm US/Eastern, when the prior week's stats are final but
// the next slate has not kicked off. Also returns the current weekday name
// for display.
func RecapWindowOpen(now time.Time) (bool, string) {
	est, err := time.LoadLocation("America/New_York")
	if err != nil {
		est = time.UTC
	}
	local := now.In(est)
	day := local.Weekday()
	hour := local.Hour()

	open := false
	switch {
	case day == time.Tuesday && hour >= 4:
		open = true
	case day == time.Wednesday:
		open = true
	case day == time.Thursday && hour < 19:
		open = true
	}
	return open, local.Weekday().String()
}
