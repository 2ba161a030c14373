package domain

import "time"

// Assignment is the flattened scheduling view of a unit of work: either a
// project (its root is itself) or a subtask (its root is the parent project).
// The scheduling engine consumes assignments only; it never sees the
// underlying CRUD entities.
type Assignment struct {
	ID         string
	RootID     string
	Name       string
	AssigneeID *string
	Status     AssignmentStatus
	Start      *time.Time
	End        *time.Time
}

// IsSubtask reports whether the assignment came from a subtask.
func (a Assignment) IsSubtask() bool {
	return a.ID != a.RootID
}

// HasDates reports whether both span endpoints are present. Entries without
// a full span are excluded from layout and aggregation.
func (a Assignment) HasDates() bool {
	return a.Start != nil && a.End != nil
}

// Covers reports whether the given day falls inside the assignment span,
// inclusive on both ends. All three times are truncated to calendar days
// first, so a span endpoint with a time-of-day component still covers its
// own day.
func (a Assignment) Covers(day time.Time) bool {
	if !a.HasDates() {
		return false
	}
	d := dayOf(day)
	return !d.Before(dayOf(*a.Start)) && !d.After(dayOf(*a.End))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FlattenAssignments builds the engine snapshot from projects and their
// subtasks. Every project and every subtask becomes one assignment; filtering
// by status or assignee is the caller's concern.
func FlattenAssignments(projects []*Project, subtasksByProject map[string][]*Subtask) []Assignment {
	var out []Assignment
	for _, p := range projects {
		out = append(out, Assignment{
			ID:         p.ID,
			RootID:     p.ID,
			Name:       p.Name,
			AssigneeID: p.AssigneeID,
			Status:     p.Status,
			Start:      p.StartDate,
			End:        p.EndDate,
		})
		for _, s := range subtasksByProject[p.ID] {
			out = append(out, Assignment{
				ID:         s.ID,
				RootID:     s.ProjectID,
				Name:       s.Name,
				AssigneeID: s.AssigneeID,
				Status:     s.Status,
				Start:      s.StartDate,
				End:        s.EndDate,
			})
		}
	}
	return out
}

// ActiveAssignments filters to entries that participate in the timeline
// window: active status and a complete date span.
func ActiveAssignments(all []Assignment) []Assignment {
	var out []Assignment
	for _, a := range all {
		if a.Status.IsActive() && a.HasDates() {
			out = append(out, a)
		}
	}
	return out
}

// AssignmentsForUser filters to the given user's workload: entries assigned
// to the user whose status is still active. Done and canceled work, project
// or subtask alike, represents finished commitments and counts toward
// neither the board layout, the conflict scan, nor capacity.
func AssignmentsForUser(all []Assignment, userID string) []Assignment {
	var out []Assignment
	for _, a := range all {
		if a.AssigneeID == nil || *a.AssigneeID != userID {
			continue
		}
		if a.Status.IsTerminal() {
			continue
		}
		out = append(out, a)
	}
	return out
}
