package domain

type AssignmentStatus string

const (
	StatusQueued     AssignmentStatus = "queued"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusPaused     AssignmentStatus = "paused"
	StatusDone       AssignmentStatus = "done"
	StatusCanceled   AssignmentStatus = "canceled"
)

// ValidAssignmentStatuses is the canonical set of accepted status strings.
var ValidAssignmentStatuses = map[string]bool{
	"queued": true, "in_progress": true, "paused": true,
	"done": true, "canceled": true,
}

// IsActive reports whether the status counts toward the visible schedule.
// Done and canceled work is kept for history but never laid out.
func (s AssignmentStatus) IsActive() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusPaused:
		return true
	}
	return false
}

// IsTerminal reports whether the status excludes the entry from
// capacity aggregation.
func (s AssignmentStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}
