// Package schedule implements the pure scheduling engine behind the board
// and capacity views: timeline window derivation, greedy lane packing,
// cross-project conflict detection, and working-day capacity aggregation.
// Every function is a pure computation over the snapshot it is handed.
package schedule

import (
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

// windowPadDays is the margin added on both sides of the active span so the
// earliest and latest assignments never touch the window edges.
const windowPadDays = 5

// Day truncates a time to calendar-day granularity in UTC. The whole engine
// compares dates at this granularity only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildWindow derives the contiguous sequence of calendar days shown on the
// board. With no active assignments the window is today plus/minus five days;
// otherwise it spans from five days before the earliest start (or today,
// whichever is earlier) to five days after the latest end (or today).
// The window always contains today and has no gaps.
func BuildWindow(active []domain.Assignment, now time.Time) []time.Time {
	today := Day(now)

	minDate, maxDate := today, today
	for _, a := range active {
		if !a.HasDates() {
			continue
		}
		if s := Day(*a.Start); s.Before(minDate) {
			minDate = s
		}
		if e := Day(*a.End); e.After(maxDate) {
			maxDate = e
		}
	}

	first := minDate.AddDate(0, 0, -windowPadDays)
	last := maxDate.AddDate(0, 0, windowPadDays)

	var window []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		window = append(window, d)
	}
	return window
}
