package repository

import (
	"context"
	"testing"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Helper Bots")
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Helper Bots", fetched.Title)
	assert.Equal(t, "Ages 11-14", fetched.AgeGroup)
	assert.Equal(t, domain.StageIdeation, fetched.Stage)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectRepo_List_OrderedByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("First")
	p2 := testutil.NewTestProject("Second")
	p2.CreatedAt = p1.CreatedAt.Add(1000000000) // 1s later
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
}

func TestProjectRepo_Update_RoundTripsAllFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Orig")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Title = "Renamed"
	proj.CoreIdea = "Robots can extend human care"
	proj.Challenge = "Design a robot that helps a neighbor"
	proj.CurriculumDraft = "## Phase 1\n\nLaunch"
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Title)
	assert.Equal(t, "Robots can extend human care", fetched.CoreIdea)
	assert.Equal(t, "Design a robot that helps a neighbor", fetched.Challenge)
	assert.Equal(t, "## Phase 1\n\nLaunch", fetched.CurriculumDraft)
}

func TestProjectRepo_UpdateStage_PartialWrite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("P", testutil.WithCurriculumDraft("draft text"))
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.UpdateStage(ctx, proj.ID, domain.StageCurriculum))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageCurriculum, fetched.Stage)
	assert.Equal(t, "draft text", fetched.CurriculumDraft, "other fields untouched")
}

func TestProjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
