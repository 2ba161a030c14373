package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

// workWeekDays is the Mon-Fri baseline every occupancy figure is
// normalized against.
const workWeekDays = 5

// UserCapacity is one active user's occupancy for the selected week.
type UserCapacity struct {
	UserID       string
	Name         string
	OccupiedDays int
	Percent      int
}

// Capacity is the team-wide occupancy result for the selected week.
type Capacity struct {
	WeekStart     time.Time
	WeekEnd       time.Time
	Label         string
	OccupiedDays  int
	AvailableDays int
	Percent       int
	Users         []UserCapacity
}

// WeekAnchor returns the Monday that starts "week 0" relative to now.
// On a weekday that is the current week's Monday; on Saturday or Sunday
// the weekend rolls forward to the upcoming Monday.
func WeekAnchor(now time.Time) time.Time {
	today := Day(now)
	switch today.Weekday() {
	case time.Saturday:
		return today.AddDate(0, 0, 2)
	case time.Sunday:
		return today.AddDate(0, 0, 1)
	default:
		return today.AddDate(0, 0, -(int(today.Weekday()) - 1))
	}
}

// WeekWindow returns the Monday and Friday (both inclusive) of week N
// relative to the anchor.
func WeekWindow(now time.Time, weekOffset int) (time.Time, time.Time) {
	monday := WeekAnchor(now).AddDate(0, 0, 7*weekOffset)
	return monday, monday.AddDate(0, 0, workWeekDays-1)
}

// ComputeCapacity computes per-user and team occupancy for the selected week.
// Only active users participate. Per user, every non-terminal assignment
// contributes its whole-weekday overlap with the week window; overlapping
// commitments stack, so a single user's percentage may exceed 100. With zero
// active users the team percentage is 0 and the per-user detail is empty.
func ComputeCapacity(users []*domain.User, assignments []domain.Assignment, weekOffset int, now time.Time) Capacity {
	weekStart, weekEnd := WeekWindow(now, weekOffset)

	res := Capacity{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Label:     fmt.Sprintf("%s - %s", weekStart.Format("Jan 02"), weekEnd.Format("Jan 02")),
	}

	for _, u := range users {
		if !u.Active {
			continue
		}
		occupied := 0
		for _, a := range domain.AssignmentsForUser(assignments, u.ID) {
			occupied += overlapDays(a, weekStart, weekEnd)
		}
		res.Users = append(res.Users, UserCapacity{
			UserID:       u.ID,
			Name:         u.Name,
			OccupiedDays: occupied,
			Percent:      roundPct(occupied, workWeekDays),
		})
		res.OccupiedDays += occupied
		res.AvailableDays += workWeekDays
	}

	if res.AvailableDays > 0 {
		res.Percent = roundPct(res.OccupiedDays, res.AvailableDays)
	}
	return res
}

// overlapDays counts the whole calendar days shared by the assignment span
// and the Mon-Fri week window, inclusive on both ends. Every day inside the
// window is a weekday, so plain day counting suffices.
func overlapDays(a domain.Assignment, weekStart, weekEnd time.Time) int {
	if !a.HasDates() {
		return 0
	}
	lo, hi := Day(*a.Start), Day(*a.End)
	if lo.Before(weekStart) {
		lo = weekStart
	}
	if hi.After(weekEnd) {
		hi = weekEnd
	}
	if hi.Before(lo) {
		return 0
	}
	return int(hi.Sub(lo).Hours()/24) + 1
}

func roundPct(occupied, available int) int {
	return int(math.Round(float64(occupied) / float64(available) * 100))
}
