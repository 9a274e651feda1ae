package service

import (
	"context"

	"github.com/alfcoach/alfcoach/internal/coach"
	"github.com/alfcoach/alfcoach/internal/domain"
)

// ProjectSnapshot is the full read view of one project: its fields,
// ordered assignments, and per-stage message counts.
type ProjectSnapshot struct {
	Project     *domain.Project
	Assignments []*domain.Assignment
	ChatCounts  map[domain.Stage]int
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Snapshot(ctx context.Context, id string) (*ProjectSnapshot, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string, force bool) error
}

// SessionView is a loaded stage conversation: the project, its current
// stage transcript, and the derived turn state the chat view starts
// from.
type SessionView struct {
	Project     *domain.Project
	Messages    []*domain.ChatMessage
	Assignments []*domain.Assignment
	State       coach.TurnState
}

// TurnOutcome is the result of one Send: the assistant reply (an
// apology when the turn failed), the project after any merges, and the
// reduced turn state.
type TurnOutcome struct {
	Message *domain.ChatMessage
	Project *domain.Project
	State   coach.TurnState
}

type SessionService interface {
	// Open loads the project's current-stage conversation, seeding it
	// with an opening message when empty.
	Open(ctx context.Context, projectID string) (*SessionView, error)

	// Send runs one full chat turn: persist the user message, run the
	// model turn, persist the reply, and merge its structured fields
	// into the project. Model failure is not an error: the outcome
	// carries an apology message and a failed state instead.
	Send(ctx context.Context, projectID, content string) (*TurnOutcome, error)

	// Advance moves a curriculum or assignments project to the next
	// stage, guarded by the stage-complete flag.
	Advance(ctx context.Context, projectID string) (*domain.Project, error)

	// FinalizeIdeation summarizes the ideation conversation into the
	// project's structured fields and advances to curriculum.
	FinalizeIdeation(ctx context.Context, projectID string) (*domain.Project, error)

	// Revise moves the project back to an earlier chat stage and
	// appends a synthesized recap to that stage's transcript.
	Revise(ctx context.Context, projectID string, target domain.Stage) (*domain.Project, error)
}
