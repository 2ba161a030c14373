package contract

import "time"

// MaxWeekOffset is the furthest week ahead the capacity view reaches.
// Requests beyond it are clamped.
const MaxWeekOffset = 4

// CapacityRequest selects the week for the capacity dashboard.
type CapacityRequest struct {
	// WeekOffset is the number of weeks ahead of the anchor Monday, 0-4.
	WeekOffset int
	// Now overrides the current time; nil means time.Now().
	Now *time.Time
}

// UserCapacityView is one active user's occupancy for the selected week.
type UserCapacityView struct {
	UserID       string
	Name         string
	OccupiedDays int
	Percent      int
}

// CapacityResponse is the team capacity view model for one week.
type CapacityResponse struct {
	WeekOffset    int
	WeekStart     time.Time
	WeekEnd       time.Time
	Label         string
	OccupiedDays  int
	AvailableDays int
	Percent       int
	Users         []UserCapacityView
}
