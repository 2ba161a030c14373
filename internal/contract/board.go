// Package contract defines the request/response types exchanged between the
// service layer and its consumers (CLI commands, formatters, the TUI).
package contract

import (
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

// BoardRequest selects what the assignment board shows.
type BoardRequest struct {
	// UserFilter restricts the board to a single user (ID, exact name,
	// or name prefix). Empty shows everyone.
	UserFilter string
	// Now overrides the current time; nil means time.Now().
	Now *time.Time
}

// PlacedBar is one assignment positioned on the board.
type PlacedBar struct {
	AssignmentID string
	RootID       string
	Name         string
	IsSubtask    bool
	Status       domain.AssignmentStatus
	Start        time.Time
	End          time.Time
	Lane         int
}

// UserBoardRow is one user's block of lanes on the board.
type UserBoardRow struct {
	UserID       string
	UserName     string
	Active       bool
	Placements   []PlacedBar
	LaneCount    int
	ConflictDays map[time.Time]bool
	HasConflict  bool
}

// BoardResponse is the complete board view model.
type BoardResponse struct {
	// Window is the shared contiguous date axis.
	Window []time.Time
	Rows   []UserBoardRow
	// ConflictedUsers counts users with at least one flagged day across
	// the whole team, regardless of any UserFilter on the request.
	ConflictedUsers int
	GeneratedAt     time.Time
}
