package domain

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{"user": true, "assistant": true}

// ChatMessage is one turn in a project's per-stage conversation.
// Structured fields are only populated on assistant messages; they carry
// the model's contract output verbatim so the transcript stays replayable.
type ChatMessage struct {
	ID            string
	ProjectID     string
	Stage         Stage
	Role          Role
	Content       string
	Suggestions   []string
	StageComplete bool
	// CurriculumAppend and NewAssignment record what was merged into the
	// project when this message arrived.
	CurriculumAppend string
	NewAssignment    *AssignmentDraft
	// Failed marks the locally synthesized apology appended after a model
	// failure. Failed turns never re-enter model history.
	Failed bool
	// Synthesized marks locally generated recap/greeting messages that did
	// not come from the model.
	Synthesized bool
	CreatedAt   time.Time
}

// InHistory reports whether the message should be included in the
// serialized history sent to the model.
func (m *ChatMessage) InHistory() bool {
	return !m.Failed
}

// LatestAssistantComplete scans a stage transcript and reports whether
// the most recent successful assistant message was flagged stage-complete.
// This is the single advance guard: failed and synthesized messages are
// skipped, and any later successful assistant reply resets the flag.
func LatestAssistantComplete(messages []*ChatMessage) bool {
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.Role != RoleAssistant || m.Failed || m.Synthesized {
			continue
		}
		return m.StageComplete
	}
	return false
}
