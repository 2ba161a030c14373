package service

import (
	"context"

	"github.com/crewlane/crewlane/internal/contract"
	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/importer"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type SubtaskService interface {
	Create(ctx context.Context, s *domain.Subtask) error
	GetByID(ctx context.Context, id string) (*domain.Subtask, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Subtask, error)
	Update(ctx context.Context, s *domain.Subtask) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// BoardService builds the per-user lane board over the shared timeline
// window, with overlap conflicts flagged per day.
type BoardService interface {
	GetBoard(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error)
}

// CapacityService aggregates weekly occupancy across the active team.
type CapacityService interface {
	GetCapacity(ctx context.Context, req contract.CapacityRequest) (*contract.CapacityResponse, error)
}

// ImportResult holds the outcome of a workload import.
type ImportResult struct {
	ClientCount  int
	UserCount    int
	ProjectCount int
	SubtaskCount int
}

type ImportService interface {
	ImportWorkload(ctx context.Context, filePath string) (*ImportResult, error)
	ImportWorkloadFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
