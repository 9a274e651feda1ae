package cli

import (
	"context"
	"testing"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProjects serves a fixed list; only List is used by resolution.
type stubProjects struct {
	service.ProjectService
	projects []*domain.Project
}

func (s *stubProjects) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects, nil
}

func resolveApp(projects ...*domain.Project) *App {
	return &App{Projects: &stubProjects{projects: projects}}
}

func TestResolveProjectID_ExactID(t *testing.T) {
	app := resolveApp(
		&domain.Project{ID: "aaaa1111-0000-0000-0000-000000000000", Title: "First"},
		&domain.Project{ID: "bbbb2222-0000-0000-0000-000000000000", Title: "Second"},
	)

	id, err := resolveProjectID(context.Background(), app, "bbbb2222-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, "bbbb2222-0000-0000-0000-000000000000", id)
}

func TestResolveProjectID_TitleMatch(t *testing.T) {
	app := resolveApp(
		&domain.Project{ID: "aaaa1111-0000-0000-0000-000000000000", Title: "Creek Watchers"},
	)

	id, err := resolveProjectID(context.Background(), app, "creek watchers")
	require.NoError(t, err)
	assert.Equal(t, "aaaa1111-0000-0000-0000-000000000000", id)
}

func TestResolveProjectID_Prefix(t *testing.T) {
	app := resolveApp(
		&domain.Project{ID: "aaaa1111-0000-0000-0000-000000000000", Title: "First"},
		&domain.Project{ID: "bbbb2222-0000-0000-0000-000000000000", Title: "Second"},
	)

	id, err := resolveProjectID(context.Background(), app, "aaaa")
	require.NoError(t, err)
	assert.Equal(t, "aaaa1111-0000-0000-0000-000000000000", id)
}

func TestResolveProjectID_AmbiguousPrefix(t *testing.T) {
	app := resolveApp(
		&domain.Project{ID: "aaaa1111-0000-0000-0000-000000000000", Title: "First"},
		&domain.Project{ID: "aaaa2222-0000-0000-0000-000000000000", Title: "Second"},
	)

	_, err := resolveProjectID(context.Background(), app, "aaaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveProjectID_NotFound(t *testing.T) {
	app := resolveApp()

	_, err := resolveProjectID(context.Background(), app, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = resolveProjectID(context.Background(), app, "")
	require.Error(t, err)
}
