package repository

import (
	"context"
	"errors"

	"github.com/crewlane/crewlane/internal/domain"
)

// ErrNotFound is wrapped by repositories when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SubtaskRepo interface {
	Create(ctx context.Context, s *domain.Subtask) error
	GetByID(ctx context.Context, id string) (*domain.Subtask, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Subtask, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Subtask, error)
	Update(ctx context.Context, s *domain.Subtask) error
	Delete(ctx context.Context, id string) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
