package schedule

import (
	"time"

	"github.com/crewlane/crewlane/internal/domain"
)

// Conflicts reports, per calendar day, whether a user has overlapping
// commitments from two or more distinct root projects.
type Conflicts struct {
	// Days maps each window day to its conflict flag.
	Days map[time.Time]bool
	// HasConflict is true if any day in the window is flagged.
	HasConflict bool
}

// DetectConflicts flags every window day on which the given assignments
// cover the day from at least two distinct root projects. Two subtasks of
// the same project overlapping is normal workload, not a conflict; only
// independent commitments count against each other.
func DetectConflicts(assignments []domain.Assignment, window []time.Time) Conflicts {
	days := make(map[time.Time]bool, len(window))
	hasConflict := false

	for _, d := range window {
		day := Day(d)
		roots := make(map[string]struct{})
		for _, a := range assignments {
			if a.Covers(day) {
				roots[a.RootID] = struct{}{}
				if len(roots) >= 2 {
					break
				}
			}
		}
		flagged := len(roots) >= 2
		days[day] = flagged
		if flagged {
			hasConflict = true
		}
	}

	return Conflicts{Days: days, HasConflict: hasConflict}
}
