package domain

import "time"

// Assignment is one deliverable in a project's ordered assignment list.
type Assignment struct {
	ID          string
	ProjectID   string
	Position    int // 1-based order within the project
	Title       string
	Description string
	Rubric      string
	CreatedAt   time.Time
}

// AssignmentDraft is the model-proposed shape of a new assignment before
// it is appended to the project.
type AssignmentDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Rubric      string `json:"rubric,omitempty"`
}
