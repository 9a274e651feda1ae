package testutil

import (
	"time"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStage(s domain.Stage) ProjectOption {
	return func(p *domain.Project) {
		p.Stage = s
	}
}

func WithAgeGroup(age string) ProjectOption {
	return func(p *domain.Project) {
		p.AgeGroup = age
	}
}

func WithStudioTheme(theme string) ProjectOption {
	return func(p *domain.Project) {
		p.StudioTheme = theme
	}
}

func WithCoreIdea(idea, challenge string) ProjectOption {
	return func(p *domain.Project) {
		p.CoreIdea = idea
		p.Challenge = challenge
	}
}

func WithCurriculumDraft(draft string) ProjectOption {
	return func(p *domain.Project) {
		p.CurriculumDraft = draft
	}
}

// NewTestProject builds a project fixture in the ideation stage.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:                  uuid.New().String(),
		Title:               title,
		Subject:             "Science",
		AgeGroup:            "Ages 11-14",
		StudioTheme:         "Scientific Inquiry",
		EducatorPerspective: "I want my students to think like scientists",
		Stage:               domain.StageIdeation,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Message options
type MessageOption func(*domain.ChatMessage)

func WithStageComplete() MessageOption {
	return func(m *domain.ChatMessage) {
		m.StageComplete = true
	}
}

func WithFailed() MessageOption {
	return func(m *domain.ChatMessage) {
		m.Failed = true
	}
}

func WithCreatedAt(t time.Time) MessageOption {
	return func(m *domain.ChatMessage) {
		m.CreatedAt = t
	}
}

// NewTestMessage builds a chat message fixture for the given transcript.
func NewTestMessage(projectID string, stage domain.Stage, role domain.Role, content string, opts ...MessageOption) *domain.ChatMessage {
	m := &domain.ChatMessage{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Stage:     stage,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestAssignment builds an assignment fixture.
func NewTestAssignment(projectID, title string) *domain.Assignment {
	return &domain.Assignment{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       title,
		Description: "Students produce " + title,
		Rubric:      "Meets expectations / Approaching / Beginning",
		CreatedAt:   time.Now().UTC(),
	}
}
