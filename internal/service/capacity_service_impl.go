package service

import (
	"context"
	"time"

	"github.com/crewlane/crewlane/internal/contract"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/crewlane/crewlane/internal/schedule"
)

type capacityService struct {
	projects repository.ProjectRepo
	subtasks repository.SubtaskRepo
	users    repository.UserRepo
	observer ViewObserver
}

func NewCapacityService(
	projects repository.ProjectRepo,
	subtasks repository.SubtaskRepo,
	users repository.UserRepo,
	observers ...ViewObserver,
) CapacityService {
	return &capacityService{
		projects: projects,
		subtasks: subtasks,
		users:    users,
		observer: viewObserverOrNoop(observers),
	}
}

// GetCapacity aggregates weekly occupancy for the active team. The week
// offset is clamped to [0, MaxWeekOffset]; the engine can compute any week,
// but the dashboard only promises a five-week horizon.
func (s *capacityService) GetCapacity(ctx context.Context, req contract.CapacityRequest) (*contract.CapacityResponse, error) {
	started := time.Now()
	resp, err := s.buildCapacity(ctx, req)
	s.observer.ObserveView(ctx, ViewEvent{
		Name:      "capacity",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    capacityFields(resp),
		StartedAt: started,
	})
	return resp, err
}

func (s *capacityService) buildCapacity(ctx context.Context, req contract.CapacityRequest) (*contract.CapacityResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	offset := req.WeekOffset
	if offset < 0 {
		offset = 0
	}
	if offset > contract.MaxWeekOffset {
		offset = contract.MaxWeekOffset
	}

	users, err := s.users.List(ctx, true)
	if err != nil {
		return nil, err
	}

	all, err := loadAssignments(ctx, s.projects, s.subtasks)
	if err != nil {
		return nil, err
	}

	agg := schedule.ComputeCapacity(users, all, offset, now)

	resp := &contract.CapacityResponse{
		WeekOffset:    offset,
		WeekStart:     agg.WeekStart,
		WeekEnd:       agg.WeekEnd,
		Label:         agg.Label,
		OccupiedDays:  agg.OccupiedDays,
		AvailableDays: agg.AvailableDays,
		Percent:       agg.Percent,
	}
	for _, u := range agg.Users {
		resp.Users = append(resp.Users, contract.UserCapacityView{
			UserID:       u.UserID,
			Name:         u.Name,
			OccupiedDays: u.OccupiedDays,
			Percent:      u.Percent,
		})
	}
	return resp, nil
}

func capacityFields(resp *contract.CapacityResponse) map[string]any {
	if resp == nil {
		return nil
	}
	return map[string]any{
		"week_offset": resp.WeekOffset,
		"users":       len(resp.Users),
		"percent":     resp.Percent,
	}
}
