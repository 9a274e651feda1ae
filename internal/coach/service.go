package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alfcoach/alfcoach/internal/domain"
	"github.com/alfcoach/alfcoach/internal/llm"
	"github.com/alfcoach/alfcoach/internal/prompt"
	"github.com/google/uuid"
)

// Coach runs single chat turns against the model. It owns prompt
// assembly, transcript serialization, and contract extraction; it never
// touches storage, so callers decide what to persist and when.
type Coach struct {
	client llm.LLMClient
}

func NewCoach(client llm.LLMClient) *Coach {
	return &Coach{client: client}
}

// Turn runs one chat turn for the project's current stage and returns
// the assistant reply as an unsaved message. The assignments slice is
// only consulted in the assignments stage.
func (c *Coach) Turn(ctx context.Context, p *domain.Project, assignments []*domain.Assignment, history []*domain.ChatMessage, userMessage string) (*domain.ChatMessage, error) {
	switch p.Stage {
	case domain.StageIdeation:
		return c.IdeationTurn(ctx, p, history, userMessage)
	case domain.StageCurriculum:
		return c.CurriculumTurn(ctx, p, history, userMessage)
	case domain.StageAssignments:
		return c.AssignmentTurn(ctx, p, assignments, history, userMessage)
	default:
		return nil, fmt.Errorf("stage %s has no chat", p.Stage)
	}
}

// IdeationTurn runs one ideation turn.
func (c *Coach) IdeationTurn(ctx context.Context, p *domain.Project, history []*domain.ChatMessage, userMessage string) (*domain.ChatMessage, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskIdeation,
		SystemPrompt: prompt.BuildIdeationPrompt(p),
		UserPrompt:   serializeHistory(history, userMessage),
	})
	if err != nil {
		return nil, err
	}
	reply, err := llm.ExtractJSON[IdeationReply](resp.Text, ValidateIdeationReply)
	if err != nil {
		return nil, err
	}
	m := newAssistantMessage(p, reply.ChatResponse)
	m.Suggestions = reply.Suggestions
	m.StageComplete = reply.StageComplete
	return m, nil
}

// CurriculumTurn runs one curriculum turn.
func (c *Coach) CurriculumTurn(ctx context.Context, p *domain.Project, history []*domain.ChatMessage, userMessage string) (*domain.ChatMessage, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCurriculum,
		SystemPrompt: prompt.BuildCurriculumPrompt(p),
		UserPrompt:   serializeHistory(history, userMessage),
	})
	if err != nil {
		return nil, err
	}
	reply, err := llm.ExtractJSON[CurriculumReply](resp.Text, ValidateCurriculumReply)
	if err != nil {
		return nil, err
	}
	m := newAssistantMessage(p, reply.ChatResponse)
	m.CurriculumAppend = reply.CurriculumAppend
	m.StageComplete = reply.StageComplete
	return m, nil
}

// AssignmentTurn runs one assignments turn. Existing assignments are
// listed in the prompt so the model does not repeat itself.
func (c *Coach) AssignmentTurn(ctx context.Context, p *domain.Project, existing []*domain.Assignment, history []*domain.ChatMessage, userMessage string) (*domain.ChatMessage, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAssignment,
		SystemPrompt: prompt.BuildAssignmentPrompt(p, existing),
		UserPrompt:   serializeHistory(history, userMessage),
	})
	if err != nil {
		return nil, err
	}
	reply, err := llm.ExtractJSON[AssignmentReply](resp.Text, ValidateAssignmentReply)
	if err != nil {
		return nil, err
	}
	m := newAssistantMessage(p, reply.ChatResponse)
	m.NewAssignment = reply.NewAssignment
	m.StageComplete = reply.StageComplete
	return m, nil
}

// Summarize condenses the ideation transcript into the structured
// fields that seed the rest of the project. It is a one-shot call, not
// a chat turn, so nothing here is persisted as a message.
func (c *Coach) Summarize(ctx context.Context, p *domain.Project, history []*domain.ChatMessage) (domain.Summary, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: prompt.BuildSummaryPrompt(p),
		UserPrompt:   transcript(history),
	})
	if err != nil {
		return domain.Summary{}, err
	}
	reply, err := llm.ExtractJSON[SummaryReply](resp.Text, ValidateSummaryReply)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{
		Title:     reply.Title,
		CoreIdea:  reply.CoreIdea,
		Challenge: reply.Challenge,
	}, nil
}

// Opening asks the model to open the conversation when the educator
// enters a stage with an empty transcript. If the model is unavailable
// or returns garbage, a deterministic greeting is synthesized instead
// so the stage never opens onto a blank screen.
func (c *Coach) Opening(ctx context.Context, p *domain.Project) *domain.ChatMessage {
	openers := map[domain.Stage]string{
		domain.StageIdeation:    "(The educator has just started this project. Open the conversation: welcome them and ask your first question about what they want students to explore.)",
		domain.StageCurriculum:  "(The educator has just entered curriculum design. Open the conversation: propose how to begin structuring the learning journey.)",
		domain.StageAssignments: "(The educator has just entered assignment design. Open the conversation: suggest the first deliverable to define.)",
	}
	opener, ok := openers[p.Stage]
	if ok {
		m, err := c.Turn(ctx, p, nil, nil, opener)
		if err == nil {
			m.Synthesized = true
			return m
		}
	}
	return GreetingMessage(p)
}

// ApologyMessage returns the canned assistant message persisted when a
// turn fails. It carries the Failed flag, so it renders in the
// transcript but never reaches the model.
func ApologyMessage(p *domain.Project) *domain.ChatMessage {
	m := newAssistantMessage(p, "I'm sorry, I wasn't able to respond just now. Your message is saved; please try again in a moment.")
	m.Failed = true
	return m
}

// RecapMessage returns a synthesized assistant message appended when
// the educator revises back into a stage, so the resumed conversation
// has an anchor instead of ending on a stale turn.
func RecapMessage(p *domain.Project) *domain.ChatMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome back to the %s stage. Here's where we left off:\n", strings.ToLower(p.Stage.Label()))
	if p.CoreIdea != "" {
		fmt.Fprintf(&b, "\nCore idea: %s\n", p.CoreIdea)
	}
	if p.Challenge != "" {
		fmt.Fprintf(&b, "Challenge: %s\n", p.Challenge)
	}
	if p.Stage == domain.StageCurriculum && p.CurriculumDraft != "" {
		b.WriteString("\nThe curriculum draft so far is kept; anything we add now appends to it.\n")
	}
	b.WriteString("\nWhat would you like to change?")
	m := newAssistantMessage(p, b.String())
	m.Synthesized = true
	return m
}

func newAssistantMessage(p *domain.Project, content string) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        uuid.New().String(),
		ProjectID: p.ID,
		Stage:     p.Stage,
		Role:      domain.RoleAssistant,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// serializeHistory flattens prior turns plus the pending message into
// the user prompt. Failed messages are skipped, so the model never
// sees its own apologies.
func serializeHistory(history []*domain.ChatMessage, userMessage string) string {
	var b strings.Builder
	b.WriteString(transcript(history))
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("User: ")
	b.WriteString(userMessage)
	return b.String()
}

func transcript(history []*domain.ChatMessage) string {
	parts := make([]string, 0, len(history))
	for _, m := range history {
		if !m.InHistory() {
			continue
		}
		label := "User"
		if m.Role == domain.RoleAssistant {
			label = "Assistant"
		}
		parts = append(parts, label+": "+m.Content)
	}
	return strings.Join(parts, "\n\n")
}

// GreetingMessage is the deterministic stage opener used when no model
// is available (or a model opening turn fails).
func GreetingMessage(p *domain.Project) *domain.ChatMessage {
	var content string
	switch p.Stage {
	case domain.StageCurriculum:
		content = fmt.Sprintf("Welcome to curriculum design for %q. We'll build the learning journey phase by phase, starting from your core idea. Where would you like to begin: the launch, the milestones, or the final exhibition?", p.Title)
	case domain.StageAssignments:
		content = fmt.Sprintf("Time to design assignments for %q. We'll define the student deliverables one at a time, each with a description and a rubric. What should students produce first?", p.Title)
	default:
		content = fmt.Sprintf("Welcome! Let's shape the big idea behind %q together. To start: what do you most want your students to walk away understanding?", p.Title)
	}
	m := newAssistantMessage(p, content)
	m.Synthesized = true
	return m
}
