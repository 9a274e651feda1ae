package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_AppendCurriculum(t *testing.T) {
	p := &Project{}

	p.AppendCurriculum("Week 1: Introduction")
	assert.Equal(t, "Week 1: Introduction", p.CurriculumDraft)

	p.AppendCurriculum("Week 2: Prototyping")
	assert.Equal(t, "Week 1: Introduction\n\nWeek 2: Prototyping", p.CurriculumDraft)

	// Empty blocks are a no-op.
	p.AppendCurriculum("")
	assert.Equal(t, "Week 1: Introduction\n\nWeek 2: Prototyping", p.CurriculumDraft)
}

func TestProject_ApplySummary(t *testing.T) {
	p := &Project{Title: UntitledProject}
	p.ApplySummary(Summary{Title: "Robotics for Good", CoreIdea: "Robots that help", Challenge: "Build a helper bot"})

	assert.Equal(t, "Robotics for Good", p.Title)
	assert.Equal(t, "Robots that help", p.CoreIdea)
	assert.Equal(t, "Build a helper bot", p.Challenge)
}

func TestProject_ApplySummary_KeepsExistingTitle(t *testing.T) {
	p := &Project{Title: "My Lesson", CoreIdea: "old idea"}
	p.ApplySummary(Summary{Title: "Model Title", CoreIdea: "new idea"})

	assert.Equal(t, "My Lesson", p.Title, "a real title is never overwritten")
	assert.Equal(t, "new idea", p.CoreIdea)
}

func TestProject_ApplySummary_EmptyFieldsPreserved(t *testing.T) {
	p := &Project{Title: UntitledProject, Challenge: "existing challenge"}
	p.ApplySummary(Summary{CoreIdea: "idea only"})

	assert.Equal(t, UntitledProject, p.Title)
	assert.Equal(t, "existing challenge", p.Challenge)
	assert.Equal(t, "idea only", p.CoreIdea)
}

func TestLatestAssistantComplete(t *testing.T) {
	msgs := []*ChatMessage{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello", StageComplete: false},
	}
	assert.False(t, LatestAssistantComplete(msgs))

	msgs = append(msgs,
		&ChatMessage{Role: RoleUser, Content: "more"},
		&ChatMessage{Role: RoleAssistant, Content: "done", StageComplete: true},
	)
	assert.True(t, LatestAssistantComplete(msgs))

	// A failed apology after the complete reply does not reset the guard.
	msgs = append(msgs, &ChatMessage{Role: RoleAssistant, Content: "sorry", Failed: true})
	assert.True(t, LatestAssistantComplete(msgs))

	// A later successful reply without the flag does reset it.
	msgs = append(msgs, &ChatMessage{Role: RoleAssistant, Content: "actually, more to do"})
	assert.False(t, LatestAssistantComplete(msgs))
}

func TestLatestAssistantComplete_SkipsSynthesized(t *testing.T) {
	msgs := []*ChatMessage{
		{Role: RoleAssistant, Content: "summary reply", StageComplete: true},
		{Role: RoleAssistant, Content: "recap", Synthesized: true},
	}
	assert.True(t, LatestAssistantComplete(msgs))
}

func TestLatestAssistantComplete_Empty(t *testing.T) {
	assert.False(t, LatestAssistantComplete(nil))
}
