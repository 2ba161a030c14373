package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/repository"
)

// loadAssignments reads the full non-archived workload and flattens it into
// the engine's assignment snapshot. Archived projects and their subtasks
// never reach the board or the capacity view.
func loadAssignments(ctx context.Context, projects repository.ProjectRepo, subtasks repository.SubtaskRepo) ([]domain.Assignment, error) {
	ps, err := projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	byProject := make(map[string][]*domain.Subtask, len(ps))
	for _, p := range ps {
		sts, err := subtasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("listing subtasks for %s: %w", p.DisplayID(), err)
		}
		byProject[p.ID] = sts
	}

	return domain.FlattenAssignments(ps, byProject), nil
}

// matchesUser reports whether a user matches the board's user filter:
// exact ID, exact name, or case-insensitive name prefix.
func matchesUser(u *domain.User, filter string) bool {
	if filter == "" {
		return true
	}
	if u.ID == filter || u.Name == filter {
		return true
	}
	return strings.HasPrefix(strings.ToLower(u.Name), strings.ToLower(filter))
}
