package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Client options
type ClientOption func(*domain.Client)

func WithCompany(company string) ClientOption {
	return func(c *domain.Client) {
		c.Company = company
	}
}

func WithClientArchived(at time.Time) ClientOption {
	return func(c *domain.Client) {
		c.ArchivedAt = &at
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:           uuid.New().String(),
		Name:         name,
		Company:      name + " GmbH",
		ContactEmail: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User options
type UserOption func(*domain.User)

func WithInactive() UserOption {
	return func(u *domain.User) {
		u.Active = false
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func WithProjectStatus(s domain.AssignmentStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectAssignee(userID string) ProjectOption {
	return func(p *domain.Project) {
		p.AssigneeID = &userID
	}
}

func WithProjectSpan(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &start
		p.EndDate = &end
	}
}

func WithoutProjectDates() ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = nil
		p.EndDate = nil
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(clientID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -7)
	end := now.AddDate(0, 0, 14)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		ClientID:  clientID,
		Name:      name,
		Status:    domain.StatusInProgress,
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subtask options
type SubtaskOption func(*domain.Subtask)

func WithSubtaskStatus(s domain.AssignmentStatus) SubtaskOption {
	return func(st *domain.Subtask) {
		st.Status = s
	}
}

func WithSubtaskAssignee(userID string) SubtaskOption {
	return func(st *domain.Subtask) {
		st.AssigneeID = &userID
	}
}

func WithSubtaskSpan(start, end time.Time) SubtaskOption {
	return func(st *domain.Subtask) {
		st.StartDate = &start
		st.EndDate = &end
	}
}

func NewTestSubtask(projectID, name string, opts ...SubtaskOption) *domain.Subtask {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -3)
	end := now.AddDate(0, 0, 4)
	s := &domain.Subtask{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.StatusQueued,
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
