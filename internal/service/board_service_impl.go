package service

import (
	"context"
	"time"

	"github.com/crewlane/crewlane/internal/contract"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/crewlane/crewlane/internal/schedule"
)

type boardService struct {
	projects repository.ProjectRepo
	subtasks repository.SubtaskRepo
	users    repository.UserRepo
	observer ViewObserver
}

func NewBoardService(
	projects repository.ProjectRepo,
	subtasks repository.SubtaskRepo,
	users repository.UserRepo,
	observers ...ViewObserver,
) BoardService {
	return &boardService{
		projects: projects,
		subtasks: subtasks,
		users:    users,
		observer: viewObserverOrNoop(observers),
	}
}

// GetBoard assembles the assignment board: one shared timeline window
// across all users, then per user a lane layout and per-day conflict flags.
// Users with no assignments still get a row; the board shows idle people
// as deliberately as busy ones.
func (s *boardService) GetBoard(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error) {
	started := time.Now()
	resp, err := s.buildBoard(ctx, req)
	s.observer.ObserveView(ctx, ViewEvent{
		Name:      "board",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    boardFields(resp),
		StartedAt: started,
	})
	return resp, err
}

func (s *boardService) buildBoard(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	users, err := s.users.List(ctx, false)
	if err != nil {
		return nil, err
	}

	all, err := loadAssignments(ctx, s.projects, s.subtasks)
	if err != nil {
		return nil, err
	}

	// The window spans every active assignment, filtered rows included,
	// so narrowing to one user never shifts the date axis.
	window := schedule.BuildWindow(domain.ActiveAssignments(all), now)

	resp := &contract.BoardResponse{
		Window:      window,
		GeneratedAt: now,
	}

	for _, u := range users {
		mine := domain.AssignmentsForUser(all, u.ID)
		conflicts := schedule.DetectConflicts(mine, window)

		// The conflict count is system-wide: a user filter narrows the
		// rows but never hides that someone else is double-booked.
		if conflicts.HasConflict {
			resp.ConflictedUsers++
		}

		if !matchesUser(u, req.UserFilter) {
			continue
		}

		placements, laneCount := schedule.AllocateLanes(mine)

		row := contract.UserBoardRow{
			UserID:       u.ID,
			UserName:     u.Name,
			Active:       u.Active,
			LaneCount:    laneCount,
			ConflictDays: conflicts.Days,
			HasConflict:  conflicts.HasConflict,
		}
		for _, pl := range placements {
			row.Placements = append(row.Placements, contract.PlacedBar{
				AssignmentID: pl.Assignment.ID,
				RootID:       pl.Assignment.RootID,
				Name:         pl.Assignment.Name,
				IsSubtask:    pl.Assignment.IsSubtask(),
				Status:       pl.Assignment.Status,
				Start:        schedule.Day(*pl.Assignment.Start),
				End:          schedule.Day(*pl.Assignment.End),
				Lane:         pl.Lane,
			})
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

func boardFields(resp *contract.BoardResponse) map[string]any {
	if resp == nil {
		return nil
	}
	return map[string]any{
		"window_days":      len(resp.Window),
		"rows":             len(resp.Rows),
		"conflicted_users": resp.ConflictedUsers,
	}
}
