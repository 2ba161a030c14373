package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	clients  repository.ClientRepo
}

func NewProjectService(projects repository.ProjectRepo, clients repository.ClientRepo) ProjectService {
	return &projectService{projects: projects, clients: clients}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if err := p.ValidateDates(); err != nil {
		return err
	}
	if _, err := s.clients.GetByID(ctx, p.ClientID); err != nil {
		return fmt.Errorf("looking up client %q: %w", p.ClientID, err)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.StatusQueued
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	return s.projects.GetByShortID(ctx, shortID)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	return s.projects.ListByClient(ctx, clientID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.ValidateDates(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Unarchive(ctx context.Context, id string) error {
	return s.projects.Unarchive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ArchivedAt == nil {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
