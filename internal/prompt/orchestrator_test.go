package prompt

import (
	"strings"
	"testing"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject() *domain.Project {
	return &domain.Project{
		Title:               "Helper Bots",
		Subject:             "Robotics",
		AgeGroup:            "Ages 11-14",
		StudioTheme:         "Design & Making",
		EducatorPerspective: "I want students to see engineering as a way to help people",
		Stage:               domain.StageIdeation,
	}
}

// orderedContains asserts that each needle appears in s after the
// previous one.
func orderedContains(t *testing.T, s string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		idx := strings.Index(s[pos:], n)
		require.GreaterOrEqual(t, idx, 0, "expected %q after position %d", n, pos)
		pos += idx + len(n)
	}
}

func TestBuildIdeationPrompt_SectionOrder(t *testing.T) {
	p := sampleProject()
	out := BuildIdeationPrompt(p)

	orderedContains(t, out,
		"You are ALF Coach",
		"Age lens: Ages 11-14",
		"Studio lens: Design & Making",
		"Stage workflow: Ideation",
		"## CONTEXT",
	)
	assert.Contains(t, out, "Robotics")
	assert.Contains(t, out, "isStageComplete")
}

func TestBuildPrompts_AllAgeBandsContainLensInOrder(t *testing.T) {
	builders := map[string]func(p *domain.Project) string{
		"ideation":   BuildIdeationPrompt,
		"curriculum": BuildCurriculumPrompt,
		"assignment": func(p *domain.Project) string { return BuildAssignmentPrompt(p, nil) },
	}

	for _, age := range AgeGroups() {
		for name, build := range builders {
			p := sampleProject()
			p.AgeGroup = age
			out := build(p)
			orderedContains(t, out,
				"You are ALF Coach",
				"Age lens: "+age,
				"Stage workflow:",
			)
			assert.NotEmpty(t, out, "%s prompt for %s", name, age)
		}
	}
}

func TestBuildIdeationPrompt_UnknownAgeBand_NoLensNoError(t *testing.T) {
	p := sampleProject()
	p.AgeGroup = "Ages 99+"
	p.StudioTheme = ""

	out := BuildIdeationPrompt(p)
	assert.NotContains(t, out, "Age lens:")
	assert.NotContains(t, out, "Studio lens:")
	assert.Contains(t, out, "Stage workflow: Ideation")
}

func TestBuildCurriculumPrompt_ContainsDraft(t *testing.T) {
	p := sampleProject()
	p.CurriculumDraft = "X"

	out := BuildCurriculumPrompt(p)
	assert.Contains(t, out, "X")
	assert.Contains(t, out, "curriculumAppend")
}

func TestBuildAssignmentPrompt_ListsExistingAssignments(t *testing.T) {
	p := sampleProject()
	existing := []*domain.Assignment{
		{Title: "Design Brief", Position: 1},
		{Title: "Prototype Demo", Position: 2},
	}

	out := BuildAssignmentPrompt(p, existing)
	orderedContains(t, out, "Existing assignments:", "Design Brief", "Prototype Demo")
	assert.Contains(t, out, "newAssignment")
}

func TestBuildAssignmentPrompt_NoAssignmentsYet(t *testing.T) {
	out := BuildAssignmentPrompt(sampleProject(), nil)
	assert.Contains(t, out, "(none yet)")
}

func TestBuildSummaryPrompt(t *testing.T) {
	out := BuildSummaryPrompt(sampleProject())
	assert.Contains(t, out, "Summarize the ideation conversation")
	assert.Contains(t, out, "coreIdea")
	assert.Contains(t, out, "challenge")
}

func TestBuildPrompts_MissingFieldsProduceBlankLines(t *testing.T) {
	p := &domain.Project{}

	out := BuildIdeationPrompt(p)
	assert.Contains(t, out, "Subject: \n")
	assert.NotContains(t, out, "undefined")
}

func TestBuildPrompts_Deterministic(t *testing.T) {
	p := sampleProject()
	assert.Equal(t, BuildCurriculumPrompt(p), BuildCurriculumPrompt(p))
}
