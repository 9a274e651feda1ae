package repository

import (
	"context"
	"testing"

	"github.com/alfcoach/alfcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepo_AppendAssignsPositions(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assignments := NewSQLiteAssignmentRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)

	a1 := testutil.NewTestAssignment(proj.ID, "Design Brief")
	a2 := testutil.NewTestAssignment(proj.ID, "Prototype Demo")
	a3 := testutil.NewTestAssignment(proj.ID, "Final Exhibition")
	require.NoError(t, assignments.Append(ctx, a1))
	require.NoError(t, assignments.Append(ctx, a2))
	require.NoError(t, assignments.Append(ctx, a3))

	assert.Equal(t, 1, a1.Position)
	assert.Equal(t, 2, a2.Position)
	assert.Equal(t, 3, a3.Position)

	list, err := assignments.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Design Brief", list[0].Title)
	assert.Equal(t, "Final Exhibition", list[2].Title)
}

func TestAssignmentRepo_PositionsScopedPerProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assignments := NewSQLiteAssignmentRepo(db)
	ctx := context.Background()

	proj1 := seedProject(t, projects)
	proj2 := testutil.NewTestProject("Other")
	require.NoError(t, projects.Create(ctx, proj2))

	a1 := testutil.NewTestAssignment(proj1.ID, "P1 first")
	b1 := testutil.NewTestAssignment(proj2.ID, "P2 first")
	require.NoError(t, assignments.Append(ctx, a1))
	require.NoError(t, assignments.Append(ctx, b1))

	assert.Equal(t, 1, a1.Position)
	assert.Equal(t, 1, b1.Position)
}

func TestAssignmentRepo_RubricRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assignments := NewSQLiteAssignmentRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	a := testutil.NewTestAssignment(proj.ID, "Journal")
	a.Rubric = "4: exemplary\n3: proficient\n2: developing\n1: beginning"
	require.NoError(t, assignments.Append(ctx, a))

	list, err := assignments.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.Rubric, list[0].Rubric)
}

func TestAssignmentRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	assignments := NewSQLiteAssignmentRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	a := testutil.NewTestAssignment(proj.ID, "Temp")
	require.NoError(t, assignments.Append(ctx, a))
	require.NoError(t, assignments.Delete(ctx, a.ID))

	list, err := assignments.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
