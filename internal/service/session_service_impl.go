package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alfcoach/alfcoach/internal/coach"
	"github.com/alfcoach/alfcoach/internal/db"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	projects    repository.ProjectRepo
	messages    repository.MessageRepo
	assignments repository.AssignmentRepo
	uow         db.UnitOfWork
	coach       *coach.Coach // nil when no model is configured
}

func NewSessionService(
	projects repository.ProjectRepo,
	messages repository.MessageRepo,
	assignments repository.AssignmentRepo,
	uow db.UnitOfWork,
	c *coach.Coach,
) SessionService {
	return &sessionService{
		projects:    projects,
		messages:    messages,
		assignments: assignments,
		uow:         uow,
		coach:       c,
	}
}

func (s *sessionService) Open(ctx context.Context, projectID string) (*SessionView, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Stage.HasChat() {
		return nil, ErrProjectCompleted
	}

	msgs, err := s.messages.ListByStage(ctx, p.ID, p.Stage)
	if err != nil {
		return nil, err
	}

	// An empty transcript gets an opening message so the educator never
	// faces a blank screen.
	if len(msgs) == 0 {
		opening := coach.GreetingMessage(p)
		if s.coach != nil {
			opening = s.coach.Opening(ctx, p)
		}
		if err := s.messages.Append(ctx, opening); err != nil {
			return nil, err
		}
		msgs = append(msgs, opening)
	}

	var as []*domain.Assignment
	if p.Stage == domain.StageAssignments {
		if as, err = s.assignments.ListByProject(ctx, p.ID); err != nil {
			return nil, err
		}
	}

	state := coach.Reduce(coach.TurnState{}, coach.StageEntered{
		AlreadyComplete: domain.LatestAssistantComplete(msgs),
	})
	return &SessionView{Project: p, Messages: msgs, Assignments: as, State: state}, nil
}

func (s *sessionService) Send(ctx context.Context, projectID, content string) (*TurnOutcome, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Stage.HasChat() {
		return nil, ErrProjectCompleted
	}
	if s.coach == nil {
		return nil, ErrCoachDisabled
	}

	history, err := s.messages.ListByStage(ctx, p.ID, p.Stage)
	if err != nil {
		return nil, err
	}

	var as []*domain.Assignment
	if p.Stage == domain.StageAssignments {
		if as, err = s.assignments.ListByProject(ctx, p.ID); err != nil {
			return nil, err
		}
	}

	// Persist the user message before calling the model: if the turn
	// fails, the educator's words are not lost.
	userMsg := &domain.ChatMessage{
		ID:        uuid.New().String(),
		ProjectID: p.ID,
		Stage:     p.Stage,
		Role:      domain.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Append(ctx, userMsg); err != nil {
		return nil, err
	}

	inFlight := coach.TurnState{Phase: coach.PhaseAwaitingModel}

	reply, err := s.coach.Turn(ctx, p, as, history, content)
	if err != nil {
		// Model failure is part of the conversation, not an error for
		// the caller: append the apology and hand back a failed state.
		// There is no conversation-level retry.
		apology := coach.ApologyMessage(p)
		if aerr := s.messages.Append(ctx, apology); aerr != nil {
			return nil, aerr
		}
		return &TurnOutcome{
			Message: apology,
			Project: p,
			State:   coach.Reduce(inFlight, coach.TurnFailed{}),
		}, nil
	}

	// The reply and its structured side effects commit together.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txMessages := repository.NewSQLiteMessageRepo(tx)
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)

		if err := txMessages.Append(ctx, reply); err != nil {
			return err
		}
		if reply.CurriculumAppend != "" && p.Stage == domain.StageCurriculum {
			p.AppendCurriculum(reply.CurriculumAppend)
		}
		if reply.NewAssignment != nil && p.Stage == domain.StageAssignments {
			a := &domain.Assignment{
				ID:          uuid.New().String(),
				ProjectID:   p.ID,
				Title:       reply.NewAssignment.Title,
				Description: reply.NewAssignment.Description,
				Rubric:      reply.NewAssignment.Rubric,
				CreatedAt:   time.Now().UTC(),
			}
			if err := txAssignments.Append(ctx, a); err != nil {
				return err
			}
		}
		p.UpdatedAt = time.Now().UTC()
		return txProjects.Update(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("committing turn: %w", err)
	}

	return &TurnOutcome{
		Message: reply,
		Project: p,
		State:   coach.Reduce(inFlight, coach.ReplyReceived{StageComplete: reply.StageComplete}),
	}, nil
}

func (s *sessionService) Advance(ctx context.Context, projectID string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	switch p.Stage {
	case domain.StageIdeation:
		return nil, ErrUseFinalize
	case domain.StageCompleted:
		return nil, ErrProjectCompleted
	}

	msgs, err := s.messages.ListByStage(ctx, p.ID, p.Stage)
	if err != nil {
		return nil, err
	}
	if !domain.LatestAssistantComplete(msgs) {
		return nil, ErrStageNotComplete
	}

	next, _ := p.Stage.Next()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txMessages := repository.NewSQLiteMessageRepo(tx)

		if err := txProjects.UpdateStage(ctx, p.ID, next); err != nil {
			return err
		}
		// A fresh entry into the next stage starts a fresh conversation,
		// even after an earlier revision left one behind.
		if next.HasChat() {
			return txMessages.ClearStage(ctx, p.ID, next)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("advancing stage: %w", err)
	}

	p.Stage = next
	return p, nil
}

func (s *sessionService) FinalizeIdeation(ctx context.Context, projectID string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Stage != domain.StageIdeation {
		return nil, ErrNotIdeation
	}
	if s.coach == nil {
		return nil, ErrCoachDisabled
	}

	msgs, err := s.messages.ListByStage(ctx, p.ID, p.Stage)
	if err != nil {
		return nil, err
	}
	if !domain.LatestAssistantComplete(msgs) {
		return nil, ErrStageNotComplete
	}

	// The summarization call runs outside the transaction; only its
	// result is committed.
	sum, err := s.coach.Summarize(ctx, p, msgs)
	if err != nil {
		return nil, fmt.Errorf("summarizing ideation: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txMessages := repository.NewSQLiteMessageRepo(tx)

		p.ApplySummary(sum)
		p.Stage = domain.StageCurriculum
		p.UpdatedAt = time.Now().UTC()
		if err := txProjects.Update(ctx, p); err != nil {
			return err
		}
		return txMessages.ClearStage(ctx, p.ID, domain.StageCurriculum)
	})
	if err != nil {
		return nil, fmt.Errorf("finalizing ideation: %w", err)
	}
	return p, nil
}

func (s *sessionService) Revise(ctx context.Context, projectID string, target domain.Stage) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !target.HasChat() || !target.Before(p.Stage) {
		return nil, ErrInvalidRevision
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txMessages := repository.NewSQLiteMessageRepo(tx)

		if err := txProjects.UpdateStage(ctx, p.ID, target); err != nil {
			return err
		}
		p.Stage = target
		return txMessages.Append(ctx, coach.RecapMessage(p))
	})
	if err != nil {
		return nil, fmt.Errorf("revising to %s: %w", target, err)
	}
	return p, nil
}
