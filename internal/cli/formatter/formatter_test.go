package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagePill_CoversAllStages(t *testing.T) {
	for _, s := range []domain.Stage{
		domain.StageIdeation, domain.StageCurriculum,
		domain.StageAssignments, domain.StageCompleted,
	} {
		assert.Contains(t, StagePill(s), s.Label())
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"abc", "Creek Watchers"},
			{"defg", "X"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[2], "Creek Watchers")
	assert.Contains(t, lines[3], "defg")
}

func TestFormatChatMessage_Roles(t *testing.T) {
	user := &domain.ChatMessage{Role: domain.RoleUser, Content: "hello"}
	assert.Contains(t, FormatChatMessage(user), "You:")
	assert.Contains(t, FormatChatMessage(user), "hello")

	reply := &domain.ChatMessage{
		Role:        domain.RoleAssistant,
		Content:     "welcome",
		Suggestions: []string{"first", "second"},
	}
	out := FormatChatMessage(reply)
	assert.Contains(t, out, "Coach:")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "second")

	failed := &domain.ChatMessage{Role: domain.RoleAssistant, Content: "sorry", Failed: true}
	assert.Contains(t, FormatChatMessage(failed), "sorry")
}

func TestFormatChatMessage_StructuredBadges(t *testing.T) {
	m := &domain.ChatMessage{
		Role:          domain.RoleAssistant,
		Content:       "here you go",
		NewAssignment: &domain.AssignmentDraft{Title: "Field Journal", Description: "d"},
		StageComplete: true,
	}
	out := FormatChatMessage(m)
	assert.Contains(t, out, "Field Journal")
	assert.Contains(t, out, "ready to advance")
}

func TestFormatProjectList_IncludesStageAndTitle(t *testing.T) {
	out := FormatProjectList([]*domain.Project{
		{
			ID:        "aaaa1111-0000-0000-0000-000000000000",
			Title:     "Creek Watchers",
			Subject:   "Science",
			AgeGroup:  "Ages 11-14",
			Stage:     domain.StageCurriculum,
			UpdatedAt: time.Now(),
		},
	})
	assert.Contains(t, out, "Creek Watchers")
	assert.Contains(t, out, "Curriculum")
	assert.Contains(t, out, "aaaa1111")
}

func TestFormatProjectShow_SectionsAppearWhenPopulated(t *testing.T) {
	p := &domain.Project{
		ID:              "aaaa1111-0000-0000-0000-000000000000",
		Title:           "Creek Watchers",
		Subject:         "Science",
		AgeGroup:        "Ages 11-14",
		StudioTheme:     "Scientific Inquiry",
		Stage:           domain.StageAssignments,
		CoreIdea:        "Waterways reveal community health",
		Challenge:       "Publish a water-quality report",
		CurriculumDraft: "## Week 1",
		UpdatedAt:       time.Now(),
	}
	out := FormatProjectShow(ProjectShowData{
		Project: p,
		Assignments: []*domain.Assignment{
			{Position: 1, Title: "Field Journal", Description: "Daily observations", Rubric: "Depth"},
		},
		ChatCounts: map[domain.Stage]int{domain.StageIdeation: 4},
	})

	assert.Contains(t, out, "Waterways reveal community health")
	assert.Contains(t, out, "## Week 1")
	assert.Contains(t, out, "Field Journal")
	assert.Contains(t, out, "4 messages")
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}
