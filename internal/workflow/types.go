package workflow

import "time"

// Phase is one of the four workflow phases, executed in order.
type Phase string

const (
	PhaseConstitute Phase = "constitute"
	PhaseSpecify    Phase = "specify"
	PhasePlan       Phase = "plan"
	PhaseImplement  Phase = "implement"
)

// Phases returns the workflow phases in execution order.
func Phases() []Phase {
	return []Phase{PhaseConstitute, PhaseSpecify, PhasePlan, PhaseImplement}
}

// Title returns the phase name for display, e.g. "Constitute".
func (p Phase) Title() string {
	switch p {
	case PhaseConstitute:
		return "Constitute"
	case PhaseSpecify:
		return "Specify"
	case PhasePlan:
		return "Plan"
	case PhaseImplement:
		return "Implement"
	}
	return string(p)
}

// Status is the progress state of a single phase.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// PhaseState tracks one phase's progress and its generated artifact.
type PhaseState struct {
	Status      Status     `json:"status"`
	Artifact    string     `json:"artifact,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
