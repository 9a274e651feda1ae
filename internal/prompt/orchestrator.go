package prompt

import (
	"strings"

	"github.com/alfcoach/alfcoach/internal/domain"
)

// The orchestrator assembles a complete system prompt for one stage:
// base persona, then the age lens, then the studio lens, then the stage
// workflow, then a CONTEXT section interpolating live project fields.
// Builders are pure and deterministic; missing project fields produce
// blank context lines, never an error.

// BuildIdeationPrompt assembles the system prompt for an ideation turn.
func BuildIdeationPrompt(p *domain.Project) string {
	return assemble(p, ideationWorkflow, ideationContext(p))
}

// BuildCurriculumPrompt assembles the system prompt for a curriculum turn.
func BuildCurriculumPrompt(p *domain.Project) string {
	return assemble(p, curriculumWorkflow, curriculumContext(p))
}

// BuildAssignmentPrompt assembles the system prompt for an assignments
// turn. Existing assignments are listed so the model does not repeat them.
func BuildAssignmentPrompt(p *domain.Project, existing []*domain.Assignment) string {
	return assemble(p, assignmentWorkflow, assignmentContext(p, existing))
}

// BuildSummaryPrompt assembles the system prompt for the one-shot
// ideation summarization call. The transcript is passed as the user
// prompt by the caller; this builder only frames the task.
func BuildSummaryPrompt(p *domain.Project) string {
	return assemble(p, summaryWorkflow, ideationContext(p))
}

func assemble(p *domain.Project, workflow, context string) string {
	sections := []string{basePersona}
	if lens := AgeLens(p.AgeGroup); lens != "" {
		sections = append(sections, lens)
	}
	if lens := StudioLens(p.StudioTheme); lens != "" {
		sections = append(sections, lens)
	}
	sections = append(sections, workflow, context)
	return strings.Join(sections, "\n\n")
}

func ideationContext(p *domain.Project) string {
	var b strings.Builder
	b.WriteString("## CONTEXT\n\n")
	writeField(&b, "Project title", p.Title)
	writeField(&b, "Subject", p.Subject)
	writeField(&b, "Age group", p.AgeGroup)
	writeField(&b, "Studio theme", p.StudioTheme)
	writeField(&b, "Educator perspective", p.EducatorPerspective)
	return strings.TrimRight(b.String(), "\n")
}

func curriculumContext(p *domain.Project) string {
	var b strings.Builder
	b.WriteString("## CONTEXT\n\n")
	writeField(&b, "Project title", p.Title)
	writeField(&b, "Subject", p.Subject)
	writeField(&b, "Age group", p.AgeGroup)
	writeField(&b, "Core idea", p.CoreIdea)
	writeField(&b, "Challenge", p.Challenge)
	b.WriteString("Curriculum draft so far:\n")
	if p.CurriculumDraft != "" {
		b.WriteString(p.CurriculumDraft)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func assignmentContext(p *domain.Project, existing []*domain.Assignment) string {
	var b strings.Builder
	b.WriteString("## CONTEXT\n\n")
	writeField(&b, "Project title", p.Title)
	writeField(&b, "Subject", p.Subject)
	writeField(&b, "Age group", p.AgeGroup)
	writeField(&b, "Core idea", p.CoreIdea)
	writeField(&b, "Challenge", p.Challenge)
	b.WriteString("Curriculum draft:\n")
	if p.CurriculumDraft != "" {
		b.WriteString(p.CurriculumDraft)
		b.WriteString("\n")
	}
	b.WriteString("\nExisting assignments:\n")
	for _, a := range existing {
		b.WriteString("- ")
		b.WriteString(a.Title)
		b.WriteString("\n")
	}
	if len(existing) == 0 {
		b.WriteString("(none yet)\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// writeField emits "Label: value" lines. Missing values render as a
// blank field rather than being dropped, so the model can see the gap.
func writeField(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
