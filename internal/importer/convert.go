package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/google/uuid"
)

// Snapshot holds the converted domain entities ready for persistence.
// Subtasks are keyed by their parent project's generated ID.
type Snapshot struct {
	Clients  []*domain.Client
	Users    []*domain.User
	Projects []*domain.Project
	Subtasks map[string][]*domain.Subtask
}

// Convert transforms a validated ImportSchema into domain entities.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Snapshot, error) {
	now := time.Now().UTC()
	snap := &Snapshot{Subtasks: make(map[string][]*domain.Subtask)}

	clientIDs := make(map[string]string) // ref -> UUID
	for _, c := range schema.Clients {
		id := uuid.New().String()
		clientIDs[c.Ref] = id
		snap.Clients = append(snap.Clients, &domain.Client{
			ID:           id,
			Name:         c.Name,
			Company:      c.Company,
			ContactEmail: c.ContactEmail,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	userIDs := make(map[string]string)
	for _, u := range schema.Users {
		id := uuid.New().String()
		userIDs[u.Ref] = id
		active := true
		if u.Active != nil {
			active = *u.Active
		}
		snap.Users = append(snap.Users, &domain.User{
			ID:        id,
			Name:      u.Name,
			Email:     u.Email,
			Active:    active,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, p := range schema.Projects {
		start, err := parseOptionalDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Ref, err)
		}
		end, err := parseOptionalDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Ref, err)
		}

		project := &domain.Project{
			ID:         uuid.New().String(),
			ShortID:    strings.ToUpper(p.ShortID),
			ClientID:   clientIDs[p.ClientRef],
			Name:       p.Name,
			AssigneeID: resolveRef(p.AssigneeRef, userIDs),
			Status:     statusOrQueued(p.Status),
			StartDate:  start,
			EndDate:    end,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		snap.Projects = append(snap.Projects, project)

		for _, s := range p.Subtasks {
			sStart, err := parseOptionalDate(s.StartDate)
			if err != nil {
				return nil, fmt.Errorf("project %q subtask %q: %w", p.Ref, s.Name, err)
			}
			sEnd, err := parseOptionalDate(s.EndDate)
			if err != nil {
				return nil, fmt.Errorf("project %q subtask %q: %w", p.Ref, s.Name, err)
			}
			snap.Subtasks[project.ID] = append(snap.Subtasks[project.ID], &domain.Subtask{
				ID:         uuid.New().String(),
				ProjectID:  project.ID,
				Name:       s.Name,
				AssigneeID: resolveRef(s.AssigneeRef, userIDs),
				Status:     statusOrQueued(s.Status),
				StartDate:  sStart,
				EndDate:    sEnd,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}

	return snap, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &t, nil
}

func resolveRef(ref *string, ids map[string]string) *string {
	if ref == nil {
		return nil
	}
	if id, ok := ids[*ref]; ok {
		return &id
	}
	return nil
}

func statusOrQueued(s string) domain.AssignmentStatus {
	if s == "" {
		return domain.StatusQueued
	}
	return domain.AssignmentStatus(s)
}
