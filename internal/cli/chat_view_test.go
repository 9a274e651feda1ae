package cli

import (
	"context"
	"testing"

	"github.com/alfcoach/alfcoach/internal/coach"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessions serves canned turn outcomes to the chat view.
type stubSessions struct {
	service.SessionService
	outcome *service.TurnOutcome
	sent    []string
}

func (s *stubSessions) Send(ctx context.Context, projectID, content string) (*service.TurnOutcome, error) {
	s.sent = append(s.sent, content)
	return s.outcome, nil
}

func chatFixture(outcome *service.TurnOutcome) (*chatView, *stubSessions) {
	p := &domain.Project{
		ID:    "aaaa1111-0000-0000-0000-000000000000",
		Title: "Creek Watchers",
		Stage: domain.StageIdeation,
	}
	sessions := &stubSessions{outcome: outcome}
	app := &App{Sessions: sessions}
	view := newChatView(app, &service.SessionView{
		Project: p,
		Messages: []*domain.ChatMessage{
			{Role: domain.RoleAssistant, Content: "Welcome!", Suggestions: []string{"first idea", "second idea"}},
		},
		State: coach.TurnState{Phase: coach.PhaseIdle},
	})
	return view, sessions
}

func typeKeys(v *chatView, s string) tea.Model {
	var m tea.Model = v
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestChatView_RendersTranscriptAndSuggestions(t *testing.T) {
	v, _ := chatFixture(nil)
	out := v.View()
	// The stage banner renders uppercased.
	assert.Contains(t, out, "CREEK WATCHERS")
	assert.Contains(t, out, "Welcome!")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "ideation")
}

func TestChatView_EnterSendsInput(t *testing.T) {
	v, sessions := chatFixture(&service.TurnOutcome{})
	typeKeys(v, "study the creek")

	m, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cv := m.(*chatView)
	assert.Equal(t, coach.PhaseAwaitingModel, cv.state.Phase)
	require.NotNil(t, cmd, "a turn command is dispatched")

	// The transcript shows the pending user message immediately.
	assert.Contains(t, cv.View(), "study the creek")
	assert.Empty(t, sessions.sent, "the service call runs in the command, not in Update")
}

func TestChatView_DigitPicksSuggestion(t *testing.T) {
	v, _ := chatFixture(&service.TurnOutcome{})

	m, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	cv := m.(*chatView)
	require.NotNil(t, cmd)
	assert.Contains(t, cv.View(), "second idea")
}

func TestChatView_TurnResultUpdatesState(t *testing.T) {
	v, _ := chatFixture(nil)
	v.state = coach.TurnState{Phase: coach.PhaseAwaitingModel}

	reply := &domain.ChatMessage{
		Role:          domain.RoleAssistant,
		Content:       "We have our idea.",
		StageComplete: true,
	}
	m, _ := v.Update(turnResultMsg{out: &service.TurnOutcome{
		Message: reply,
		Project: v.project,
		State:   coach.TurnState{Phase: coach.PhaseReady},
	}})
	cv := m.(*chatView)

	assert.Equal(t, coach.PhaseReady, cv.state.Phase)
	assert.Contains(t, cv.View(), "We have our idea.")
	assert.Contains(t, cv.View(), "ctrl+a")
}

func TestChatView_AdvanceRefusedWhenNotReady(t *testing.T) {
	v, _ := chatFixture(nil)

	m, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	cv := m.(*chatView)
	assert.Nil(t, cmd)
	assert.Contains(t, cv.View(), "hasn't marked this stage complete")
}

func TestChatView_InputIgnoredWhileAwaiting(t *testing.T) {
	v, _ := chatFixture(nil)
	v.state = coach.TurnState{Phase: coach.PhaseAwaitingModel}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestChatView_StageChangeSwapsTranscript(t *testing.T) {
	v, _ := chatFixture(nil)
	v.state = coach.TurnState{Phase: coach.PhaseAwaitingModel}

	next := &domain.Project{ID: v.project.ID, Title: "Creek Watchers", Stage: domain.StageCurriculum}
	m, _ := v.Update(stageChangeMsg{
		view: &service.SessionView{
			Project:  next,
			Messages: []*domain.ChatMessage{{Role: domain.RoleAssistant, Content: "Welcome to curriculum design"}},
			State:    coach.TurnState{Phase: coach.PhaseIdle},
		},
		p: next,
	})
	cv := m.(*chatView)

	out := cv.View()
	assert.Contains(t, out, "CURRICULUM")
	assert.Contains(t, out, "Welcome to curriculum design")
	assert.NotContains(t, out, "Welcome!")
}
