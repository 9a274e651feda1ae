package service

import "errors"

var (
	// ErrStageNotComplete is returned when an advance is requested but
	// the latest assistant reply has not flagged the stage complete.
	ErrStageNotComplete = errors.New("current stage is not marked complete")

	// ErrProjectCompleted is returned when a chat operation targets a
	// project that has finished all stages.
	ErrProjectCompleted = errors.New("project is completed; no stage chat remains")

	// ErrUseFinalize is returned when a plain advance is requested on
	// the ideation stage, which only advances through finalization.
	ErrUseFinalize = errors.New("ideation advances by finalizing, not by a plain advance")

	// ErrNotIdeation is returned when finalization is requested outside
	// the ideation stage.
	ErrNotIdeation = errors.New("project is past ideation")

	// ErrInvalidRevision is returned when the revision target is not an
	// earlier chat stage of the project.
	ErrInvalidRevision = errors.New("revision target must be an earlier stage")

	// ErrCoachDisabled is returned when a model-backed operation runs
	// without a configured coach.
	ErrCoachDisabled = errors.New("coaching requires a configured model; set ANTHROPIC_API_KEY or run Ollama")

	// ErrDeleteGuarded is returned when deleting an unfinished project
	// without force.
	ErrDeleteGuarded = errors.New("project is not completed; pass force to delete anyway")
)
