package service

import (
	"testing"

	"github.com/crewlane/crewlane/internal/repository"
	"github.com/crewlane/crewlane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateRejectsBadShortID(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	svc := NewProjectService(f.projects, f.clients)

	p := testutil.NewTestProject(c.ID, "Bad", testutil.WithShortID("lowercase1"))
	err := svc.Create(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase letters")
}

func TestProjectService_CreateRejectsEndBeforeStart(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	svc := NewProjectService(f.projects, f.clients)

	p := testutil.NewTestProject(c.ID, "Backwards",
		testutil.WithProjectSpan(date(2024, 3, 10), date(2024, 3, 4)))
	err := svc.Create(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestProjectService_CreateRejectsUnknownClient(t *testing.T) {
	f, ctx := newFixture(t)
	svc := NewProjectService(f.projects, f.clients)

	p := testutil.NewTestProject("no-such-client", "Orphan")
	err := svc.Create(ctx, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_CreateDefaultsStatusToQueued(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	svc := NewProjectService(f.projects, f.clients)

	p := testutil.NewTestProject(c.ID, "Fresh")
	p.Status = ""
	require.NoError(t, svc.Create(ctx, p))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "queued", string(got.Status))
}

func TestProjectService_DeleteRequiresArchiveFirst(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	p := f.seedProject(t, ctx, c.ID, "Live")
	svc := NewProjectService(f.projects, f.clients)

	err := svc.Delete(ctx, p.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be archived")

	require.NoError(t, svc.Archive(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, p.ID, false))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_DeleteForceSkipsArchiveCheck(t *testing.T) {
	f, ctx := newFixture(t)
	c := f.seedClient(t, ctx, "Acme")
	p := f.seedProject(t, ctx, c.ID, "Doomed")
	svc := NewProjectService(f.projects, f.clients)

	require.NoError(t, svc.Delete(ctx, p.ID, true))
	_, err := svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
