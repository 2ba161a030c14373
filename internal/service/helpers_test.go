package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/crewlane/crewlane/internal/domain"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/crewlane/crewlane/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixture wires repositories and services over one in-memory database.
type fixture struct {
	db       *sql.DB
	clients  *repository.SQLiteClientRepo
	projects *repository.SQLiteProjectRepo
	subtasks *repository.SQLiteSubtaskRepo
	users    *repository.SQLiteUserRepo
}

func newFixture(t *testing.T) (*fixture, context.Context) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		clients:  repository.NewSQLiteClientRepo(database),
		projects: repository.NewSQLiteProjectRepo(database),
		subtasks: repository.NewSQLiteSubtaskRepo(database),
		users:    repository.NewSQLiteUserRepo(database),
	}, context.Background()
}

func (f *fixture) seedClient(t *testing.T, ctx context.Context, name string) *domain.Client {
	t.Helper()
	c := testutil.NewTestClient(name)
	require.NoError(t, f.clients.Create(ctx, c))
	return c
}

func (f *fixture) seedUser(t *testing.T, ctx context.Context, name string, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(name, opts...)
	require.NoError(t, f.users.Create(ctx, u))
	return u
}

func (f *fixture) seedProject(t *testing.T, ctx context.Context, clientID, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(clientID, name, opts...)
	require.NoError(t, f.projects.Create(ctx, p))
	return p
}

func (f *fixture) seedSubtask(t *testing.T, ctx context.Context, projectID, name string, opts ...testutil.SubtaskOption) *domain.Subtask {
	t.Helper()
	s := testutil.NewTestSubtask(projectID, name, opts...)
	require.NoError(t, f.subtasks.Create(ctx, s))
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }
