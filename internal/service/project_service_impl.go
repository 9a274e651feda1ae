package service

import (
	"context"
	"strings"
	"time"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects    repository.ProjectRepo
	assignments repository.AssignmentRepo
	messages    repository.MessageRepo
}

func NewProjectService(projects repository.ProjectRepo, assignments repository.AssignmentRepo, messages repository.MessageRepo) ProjectService {
	return &projectService{projects: projects, assignments: assignments, messages: messages}
}

// Create persists a freshly onboarded project. Blank titles get the
// placeholder so finalization can fill one in later.
func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if strings.TrimSpace(p.Title) == "" {
		p.Title = domain.UntitledProject
	}
	if p.Stage == "" {
		p.Stage = domain.StageIdeation
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Snapshot(ctx context.Context, id string) (*ProjectSnapshot, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	as, err := s.assignments.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.messages.CountByStage(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProjectSnapshot{Project: p, Assignments: as, ChatCounts: counts}, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Delete removes a project and, via cascade, its chat and assignments.
// Unfinished projects are guarded behind force.
func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Stage != domain.StageCompleted && !force {
		return ErrDeleteGuarded
	}
	return s.projects.Delete(ctx, id)
}
