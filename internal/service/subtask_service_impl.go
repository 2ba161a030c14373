package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/google/uuid"
)

type subtaskService struct {
	subtasks repository.SubtaskRepo
	projects repository.ProjectRepo
}

func NewSubtaskService(subtasks repository.SubtaskRepo, projects repository.ProjectRepo) SubtaskService {
	return &subtaskService{subtasks: subtasks, projects: projects}
}

func (s *subtaskService) Create(ctx context.Context, st *domain.Subtask) error {
	if st.Name == "" {
		return fmt.Errorf("subtask name is required")
	}
	if err := st.ValidateDates(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, st.ProjectID); err != nil {
		return fmt.Errorf("looking up project %q: %w", st.ProjectID, err)
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if st.Status == "" {
		st.Status = domain.StatusQueued
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	return s.subtasks.Create(ctx, st)
}

func (s *subtaskService) GetByID(ctx context.Context, id string) (*domain.Subtask, error) {
	return s.subtasks.GetByID(ctx, id)
}

func (s *subtaskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Subtask, error) {
	return s.subtasks.ListByProject(ctx, projectID)
}

func (s *subtaskService) Update(ctx context.Context, st *domain.Subtask) error {
	if err := st.ValidateDates(); err != nil {
		return err
	}
	st.UpdatedAt = time.Now().UTC()
	return s.subtasks.Update(ctx, st)
}

func (s *subtaskService) MarkDone(ctx context.Context, id string) error {
	st, err := s.subtasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	st.Status = domain.StatusDone
	st.UpdatedAt = time.Now().UTC()
	return s.subtasks.Update(ctx, st)
}

func (s *subtaskService) Delete(ctx context.Context, id string) error {
	return s.subtasks.Delete(ctx, id)
}
