package repository

import (
	"context"

	"github.com/alfcoach/alfcoach/internal/domain"
)

// ProjectRepo provides persistence for lesson-plan projects.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	// UpdateStage writes only the stage field, mirroring a partial
	// document update.
	UpdateStage(ctx context.Context, id string, stage domain.Stage) error
	Delete(ctx context.Context, id string) error
}

// AssignmentRepo provides persistence for a project's ordered
// assignment list.
type AssignmentRepo interface {
	// Append inserts the assignment at the end of the project's list,
	// assigning the next position when a.Position is zero.
	Append(ctx context.Context, a *domain.Assignment) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id string) error
}

// MessageRepo provides persistence for per-stage chat transcripts.
type MessageRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	ListByStage(ctx context.Context, projectID string, stage domain.Stage) ([]*domain.ChatMessage, error)
	CountByStage(ctx context.Context, projectID string) (map[domain.Stage]int, error)
	// ClearStage removes a stage's transcript, used when (re)entering a
	// stage.
	ClearStage(ctx context.Context, projectID string, stage domain.Stage) error
}
