package domain

import "time"

// Project is the persisted per-lesson-plan aggregate driving the whole CLI.
type Project struct {
	ID                  string
	Title               string
	Subject             string
	AgeGroup            string
	StudioTheme         string
	EducatorPerspective string
	Stage               Stage
	CoreIdea            string
	Challenge           string
	CurriculumDraft     string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UntitledProject is the placeholder title given at onboarding when the
// educator has not named the project yet. The ideation summary may
// replace it.
const UntitledProject = "Untitled Project"

// HasTitle reports whether the project carries a real (non-placeholder) title.
func (p *Project) HasTitle() bool {
	return p.Title != "" && p.Title != UntitledProject
}

// DisplayID returns a short identifier for display: the first 8
// characters of the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// AppendCurriculum appends a block of model-authored curriculum text to
// the draft, separated by a blank line. Empty blocks are ignored.
func (p *Project) AppendCurriculum(block string) {
	if block == "" {
		return
	}
	if p.CurriculumDraft == "" {
		p.CurriculumDraft = block
		return
	}
	p.CurriculumDraft += "\n\n" + block
}

// ApplySummary merges the ideation summary into the project. The title
// is only replaced while the project still carries the onboarding
// placeholder.
func (p *Project) ApplySummary(s Summary) {
	if s.Title != "" && !p.HasTitle() {
		p.Title = s.Title
	}
	if s.CoreIdea != "" {
		p.CoreIdea = s.CoreIdea
	}
	if s.Challenge != "" {
		p.Challenge = s.Challenge
	}
}

// Summary is the structured outcome of the one-shot ideation
// summarization call.
type Summary struct {
	Title     string
	CoreIdea  string
	Challenge string
}
