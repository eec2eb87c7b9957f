package workflow

import (
	"errors"
	"strings"
	"testing"
)

func TestNewState_AllPhasesPending(t *testing.T) {
	s := NewState()
	for _, p := range Phases() {
		if got := s.PhaseStatus(p); got != StatusPending {
			t.Errorf("phase %s should start pending, got %s", p, got)
		}
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := NewState()
	s.Complete(PhaseConstitute, "constitution.md")
	if err := s.Start(PhaseSpecify, false); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.PhaseStatus(PhaseConstitute) != StatusComplete {
		t.Errorf("constitute phase should be complete after reload")
	}
	if loaded.Phases[PhaseConstitute].Artifact != "constitution.md" {
		t.Errorf("artifact path lost in round trip: %+v", loaded.Phases[PhaseConstitute])
	}
	if loaded.PhaseStatus(PhaseSpecify) != StatusInProgress {
		t.Errorf("specify phase should be in progress after reload")
	}
	if loaded.PhaseStatus(PhaseImplement) != StatusPending {
		t.Errorf("implement phase should still be pending")
	}
}

func TestLoad_NotInitialized(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestStart_EnforcesPhaseOrder(t *testing.T) {
	s := NewState()

	err := s.Start(PhasePlan, false)
	if err == nil {
		t.Fatal("starting plan before constitute should fail")
	}
	if !strings.Contains(err.Error(), "constitute") {
		t.Errorf("error should name the first incomplete prerequisite: %v", err)
	}
}

func TestStart_ForceBypassesOrder(t *testing.T) {
	s := NewState()
	if err := s.Start(PhaseImplement, true); err != nil {
		t.Fatalf("forced start should succeed: %v", err)
	}
	if s.PhaseStatus(PhaseImplement) != StatusInProgress {
		t.Errorf("forced phase should be in progress")
	}
}

func TestCanStart(t *testing.T) {
	s := NewState()

	if !s.CanStart(PhaseConstitute) {
		t.Error("first phase should always be startable")
	}
	if s.CanStart(PhaseSpecify) {
		t.Error("specify should be blocked until constitute completes")
	}

	s.Complete(PhaseConstitute, "")
	if !s.CanStart(PhaseSpecify) {
		t.Error("specify should unblock once constitute completes")
	}
	if s.CanStart(PhaseImplement) {
		t.Error("implement should still be blocked")
	}
}
