// Package workflow tracks progress through the four-phase specification
// workflow (Constitute → Specify → Plan → Implement), persisting state as
// JSON in the project's workspace directory and generating the markdown
// artifacts each phase produces.
package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StateFileName is the state file within the workspace directory.
const StateFileName = "state.json"

// ErrNotInitialized is returned by Load when no state file exists yet.
var ErrNotInitialized = errors.New("workspace not initialized (run 'specforge init' first)")

// State is the persisted workflow state for one project.
type State struct {
	Version   int                   `json:"version"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	Phases    map[Phase]*PhaseState `json:"phases"`
}

// NewState returns a fresh state with every phase pending.
func NewState() *State {
	now := time.Now()
	s := &State{
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		Phases:    make(map[Phase]*PhaseState),
	}
	for _, p := range Phases() {
		s.Phases[p] = &PhaseState{Status: StatusPending}
	}
	return s
}

// Load reads the state file from the workspace directory.
func Load(dir string) (*State, error) {
	data, err := os.ReadFile(filepath.Join(dir, StateFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	// Older or hand-edited state files may miss phases.
	if s.Phases == nil {
		s.Phases = make(map[Phase]*PhaseState)
	}
	for _, p := range Phases() {
		if s.Phases[p] == nil {
			s.Phases[p] = &PhaseState{Status: StatusPending}
		}
	}
	return &s, nil
}

// Save writes the state file atomically: marshal to a temp file in the same
// directory, sync, then rename over the target.
func (s *State) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	s.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, StateFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, StateFileName)); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// PhaseStatus returns the status of the given phase.
func (s *State) PhaseStatus(p Phase) Status {
	if ps := s.Phases[p]; ps != nil {
		return ps.Status
	}
	return StatusPending
}

// CanStart reports whether the given phase may begin: every earlier phase
// must be complete.
func (s *State) CanStart(p Phase) bool {
	for _, prior := range Phases() {
		if prior == p {
			return true
		}
		if s.PhaseStatus(prior) != StatusComplete {
			return false
		}
	}
	return false
}

// Start marks a phase in progress. Unless force is set, the phase ordering
// is enforced and an error names the first incomplete prerequisite.
func (s *State) Start(p Phase, force bool) error {
	if !force && !s.CanStart(p) {
		for _, prior := range Phases() {
			if prior == p {
				break
			}
			if s.PhaseStatus(prior) != StatusComplete {
				return fmt.Errorf("cannot start %s phase: %s phase is not complete", p, prior)
			}
		}
	}

	now := time.Now()
	ps := s.Phases[p]
	ps.Status = StatusInProgress
	if ps.StartedAt == nil {
		ps.StartedAt = &now
	}
	return nil
}

// Complete marks a phase complete and records its artifact path.
func (s *State) Complete(p Phase, artifact string) {
	now := time.Now()
	ps := s.Phases[p]
	ps.Status = StatusComplete
	ps.Artifact = artifact
	ps.CompletedAt = &now
	if ps.StartedAt == nil {
		ps.StartedAt = &now
	}
}
