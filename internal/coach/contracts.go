package coach

import (
	"fmt"
	"strings"

	"github.com/alfcoach/alfcoach/internal/domain"
)

// Per-stage reply contracts. The model must return exactly these key
// sets; each has a validator run at extraction time so malformed output
// surfaces as llm.ErrInvalidOutput instead of leaking into the project.

// IdeationReply is the JSON object the model returns on ideation turns.
type IdeationReply struct {
	ChatResponse  string   `json:"chatResponse"`
	Suggestions   []string `json:"suggestions,omitempty"`
	StageComplete bool     `json:"isStageComplete"`
}

// CurriculumReply is the JSON object the model returns on curriculum turns.
type CurriculumReply struct {
	ChatResponse     string `json:"chatResponse"`
	CurriculumAppend string `json:"curriculumAppend,omitempty"`
	StageComplete    bool   `json:"isStageComplete"`
}

// AssignmentReply is the JSON object the model returns on assignment turns.
type AssignmentReply struct {
	ChatResponse  string                  `json:"chatResponse"`
	NewAssignment *domain.AssignmentDraft `json:"newAssignment,omitempty"`
	StageComplete bool                    `json:"isStageComplete"`
}

// SummaryReply is the JSON object returned by the one-shot ideation
// summarization call.
type SummaryReply struct {
	Title     string `json:"title,omitempty"`
	CoreIdea  string `json:"coreIdea"`
	Challenge string `json:"challenge"`
}

func ValidateIdeationReply(r IdeationReply) error {
	if strings.TrimSpace(r.ChatResponse) == "" {
		return fmt.Errorf("chatResponse is required")
	}
	if len(r.Suggestions) > 0 {
		for i, s := range r.Suggestions {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("suggestion %d is empty", i+1)
			}
		}
	}
	return nil
}

func ValidateCurriculumReply(r CurriculumReply) error {
	if strings.TrimSpace(r.ChatResponse) == "" {
		return fmt.Errorf("chatResponse is required")
	}
	return nil
}

func ValidateAssignmentReply(r AssignmentReply) error {
	if strings.TrimSpace(r.ChatResponse) == "" {
		return fmt.Errorf("chatResponse is required")
	}
	if r.NewAssignment != nil {
		if strings.TrimSpace(r.NewAssignment.Title) == "" {
			return fmt.Errorf("newAssignment.title is required")
		}
		if strings.TrimSpace(r.NewAssignment.Description) == "" {
			return fmt.Errorf("newAssignment.description is required")
		}
	}
	return nil
}

func ValidateSummaryReply(r SummaryReply) error {
	if strings.TrimSpace(r.CoreIdea) == "" {
		return fmt.Errorf("coreIdea is required")
	}
	if strings.TrimSpace(r.Challenge) == "" {
		return fmt.Errorf("challenge is required")
	}
	return nil
}
