package domain

import (
	"fmt"
	"time"
)

type Subtask struct {
	ID         string
	ProjectID  string
	Name       string
	AssigneeID *string
	Status     AssignmentStatus
	StartDate  *time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateDates checks that the end date, when both dates are present,
// is not before the start date.
func (s *Subtask) ValidateDates() error {
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			s.EndDate.Format("2006-01-02"), s.StartDate.Format("2006-01-02"))
	}
	return nil
}
