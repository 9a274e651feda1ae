package domain

import "fmt"

// Stage is the coarse linear progress marker of a project:
// ideation -> curriculum -> assignments -> completed.
type Stage string

const (
	StageIdeation    Stage = "ideation"
	StageCurriculum  Stage = "curriculum"
	StageAssignments Stage = "assignments"
	StageCompleted   Stage = "completed"
)

// stageOrder defines the forward progression. Completed is terminal.
var stageOrder = []Stage{StageIdeation, StageCurriculum, StageAssignments, StageCompleted}

// ValidStages is the canonical set of accepted stage strings.
var ValidStages = map[string]bool{
	"ideation": true, "curriculum": true, "assignments": true, "completed": true,
}

// ParseStage converts a string into a Stage, rejecting unknown values.
func ParseStage(s string) (Stage, error) {
	if !ValidStages[s] {
		return "", fmt.Errorf("unknown stage %q (expected ideation, curriculum, assignments, or completed)", s)
	}
	return Stage(s), nil
}

// Index returns the position of the stage in the linear progression,
// or -1 for an unknown stage.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the stage that follows s. Completed has no successor.
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i >= len(stageOrder)-1 {
		return "", false
	}
	return stageOrder[i+1], true
}

// Before reports whether s precedes other in the linear progression.
func (s Stage) Before(other Stage) bool {
	si, oi := s.Index(), other.Index()
	return si >= 0 && oi >= 0 && si < oi
}

// HasChat reports whether the stage carries a conversation. Completed
// is a terminal marker with no chat of its own.
func (s Stage) HasChat() bool {
	return s == StageIdeation || s == StageCurriculum || s == StageAssignments
}

// Label returns the display name for the stage.
func (s Stage) Label() string {
	switch s {
	case StageIdeation:
		return "Ideation"
	case StageCurriculum:
		return "Curriculum"
	case StageAssignments:
		return "Assignments"
	case StageCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
