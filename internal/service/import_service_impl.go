package service

import (
	"context"
	"fmt"

	"github.com/crewlane/crewlane/internal/db"
	"github.com/crewlane/crewlane/internal/importer"
	"github.com/crewlane/crewlane/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportWorkload(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportWorkloadFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

// importSchema persists a converted snapshot in one transaction. A failure
// anywhere rolls back the whole import; there are no half-imported workloads.
func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	snap, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		clients := repository.NewSQLiteClientRepo(tx)
		users := repository.NewSQLiteUserRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)
		subtasks := repository.NewSQLiteSubtaskRepo(tx)

		for _, c := range snap.Clients {
			if err := clients.Create(ctx, c); err != nil {
				return fmt.Errorf("creating client %q: %w", c.Name, err)
			}
			result.ClientCount++
		}
		for _, u := range snap.Users {
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("creating user %q: %w", u.Name, err)
			}
			result.UserCount++
		}
		for _, p := range snap.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project %q: %w", p.ShortID, err)
			}
			result.ProjectCount++
			for _, st := range snap.Subtasks[p.ID] {
				if err := subtasks.Create(ctx, st); err != nil {
					return fmt.Errorf("creating subtask %q: %w", st.Name, err)
				}
				result.SubtaskCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
