package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alfcoach/alfcoach/internal/cli/formatter"
	"github.com/alfcoach/alfcoach/internal/coach"
	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages delivered by async commands.
type turnResultMsg struct {
	out *service.TurnOutcome
	err error
}

type stageChangeMsg struct {
	view *service.SessionView // nil when the project completed
	p    *domain.Project
	err  error
}

type chatKeyMap struct {
	Send    key.Binding
	Advance key.Binding
	Quit    key.Binding
}

var chatKeys = chatKeyMap{
	Send:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Advance: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "advance")),
	Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// chatView is the per-stage coaching conversation. One instance covers
// the whole session: advancing or finalizing swaps in the next stage's
// transcript in place.
type chatView struct {
	app     *App
	project *domain.Project

	input textinput.Model
	spin  spinner.Model

	state       coach.TurnState
	lines       []string
	suggestions []string
	status      string
	done        bool
}

func newChatView(app *App, view *service.SessionView) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	v := &chatView{
		app:     app,
		project: view.Project,
		input:   ti,
		spin:    sp,
	}
	v.loadTranscript(view)
	return v
}

// loadTranscript replaces the rendered conversation with the given
// session view (used on open and after every stage change).
func (v *chatView) loadTranscript(view *service.SessionView) {
	v.project = view.Project
	v.state = view.State
	v.lines = []string{formatter.FormatStageBanner(view.Project), ""}
	v.suggestions = nil
	for _, m := range view.Messages {
		v.lines = append(v.lines, formatter.FormatChatMessage(m))
	}
	if n := len(view.Messages); n > 0 {
		last := view.Messages[n-1]
		if last.Role == domain.RoleAssistant && !last.Failed {
			v.suggestions = last.Suggestions
		}
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case spinner.TickMsg:
		if v.state.Phase != coach.PhaseAwaitingModel {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case turnResultMsg:
		return v.handleTurnResult(msg)

	case stageChangeMsg:
		return v.handleStageChange(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, chatKeys.Quit):
		v.done = true
		return v, tea.Quit

	case key.Matches(msg, chatKeys.Advance):
		if v.state.Phase != coach.PhaseReady {
			v.status = formatter.Dim("The coach hasn't marked this stage complete yet.")
			return v, nil
		}
		return v.startStageChange()

	case key.Matches(msg, chatKeys.Send):
		if v.state.Phase == coach.PhaseAwaitingModel {
			return v, nil
		}
		content := strings.TrimSpace(v.input.Value())
		v.input.Reset()
		if content == "" {
			return v, nil
		}
		return v.send(content)
	}

	// A bare digit with an empty input picks the matching suggestion.
	if v.state.Phase != coach.PhaseAwaitingModel && v.input.Value() == "" && len(v.suggestions) > 0 {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(v.suggestions) {
			return v.send(v.suggestions[n-1])
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) send(content string) (tea.Model, tea.Cmd) {
	v.state = coach.Reduce(v.state, coach.UserSubmitted{})
	v.status = ""
	v.suggestions = nil
	v.lines = append(v.lines, formatter.Dim("You: ")+formatter.StyleFg.Render(content))

	projectID := v.project.ID
	turn := func() tea.Msg {
		out, err := v.app.Sessions.Send(context.Background(), projectID, content)
		return turnResultMsg{out: out, err: err}
	}
	return v, tea.Batch(v.spin.Tick, turn)
}

func (v *chatView) handleTurnResult(msg turnResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		v.state = coach.Reduce(v.state, coach.TurnFailed{})
		v.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
		return v, nil
	}

	v.state = msg.out.State
	v.project = msg.out.Project
	v.lines = append(v.lines, formatter.FormatChatMessage(msg.out.Message))
	if !msg.out.Message.Failed {
		v.suggestions = msg.out.Message.Suggestions
	}
	return v, nil
}

// startStageChange advances (or, from ideation, finalizes) and reloads
// the session for the next stage.
func (v *chatView) startStageChange() (tea.Model, tea.Cmd) {
	v.state = coach.Reduce(v.state, coach.UserSubmitted{})
	v.status = ""
	if v.project.Stage == domain.StageIdeation {
		v.lines = append(v.lines, "", formatter.Dim("Summarizing your ideation conversation..."))
	}

	app := v.app
	projectID := v.project.ID
	fromIdeation := v.project.Stage == domain.StageIdeation

	change := func() tea.Msg {
		ctx := context.Background()
		var (
			p   *domain.Project
			err error
		)
		if fromIdeation {
			p, err = app.Sessions.FinalizeIdeation(ctx, projectID)
		} else {
			p, err = app.Sessions.Advance(ctx, projectID)
		}
		if err != nil {
			return stageChangeMsg{err: err}
		}
		if !p.Stage.HasChat() {
			return stageChangeMsg{p: p}
		}
		view, err := app.Sessions.Open(ctx, projectID)
		return stageChangeMsg{view: view, p: p, err: err}
	}
	return v, tea.Batch(v.spin.Tick, change)
}

func (v *chatView) handleStageChange(msg stageChangeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		v.state = coach.Reduce(v.state, coach.TurnFailed{})
		v.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
		return v, nil
	}

	if msg.view == nil {
		// The project just completed.
		v.project = msg.p
		v.state = coach.TurnState{Phase: coach.PhaseIdle}
		v.lines = append(v.lines, "", formatter.StyleGreen.Render("Project complete! Review it with `alfcoach show "+msg.p.DisplayID()+"`"))
		v.done = true
		return v, tea.Quit
	}

	v.loadTranscript(msg.view)
	return v, nil
}

func (v *chatView) View() string {
	var b strings.Builder

	for _, line := range v.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if v.status != "" {
		b.WriteString(v.status + "\n")
	}

	if v.done {
		return b.String()
	}

	if v.state.Phase == coach.PhaseAwaitingModel {
		b.WriteString("\n" + v.spin.View() + formatter.Dim(" thinking..."))
		return b.String()
	}

	if v.state.Phase == coach.PhaseReady {
		label := "advance to " + v.nextStageLabel()
		b.WriteString("\n" + formatter.StyleGreen.Render("✔ Stage complete") + formatter.Dim(" — ctrl+a to "+label+", or keep chatting") + "\n")
	}

	b.WriteString("\n" + formatter.StylePurple.Render(strings.ToLower(v.project.Stage.Label())) + formatter.Dim("> ") + v.input.View())
	b.WriteString("\n" + v.helpLine())
	return b.String()
}

func (v *chatView) nextStageLabel() string {
	if v.project.Stage == domain.StageIdeation {
		return "curriculum (summarizes first)"
	}
	if next, ok := v.project.Stage.Next(); ok {
		return strings.ToLower(next.Label())
	}
	return "the next stage"
}

func (v *chatView) helpLine() string {
	parts := []string{
		chatKeys.Send.Help().Key + " " + chatKeys.Send.Help().Desc,
		chatKeys.Advance.Help().Key + " " + chatKeys.Advance.Help().Desc,
		chatKeys.Quit.Help().Key + " " + chatKeys.Quit.Help().Desc,
	}
	if len(v.suggestions) > 0 {
		parts = append([]string{fmt.Sprintf("1-%d pick suggestion", len(v.suggestions))}, parts...)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
