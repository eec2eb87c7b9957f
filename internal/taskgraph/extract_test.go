package taskgraph

import (
	"reflect"
	"testing"
)

const samplePlan = `# Project Plan

Some introductory prose that belongs to no task.

## TASK-001: Set up repository
Create the repository and CI pipeline.
**Dependencies**: none
**Estimated Time**: 1 hour

## TASK-002: Define schema
Write the initial schema.
Covers both entities and indexes.
**Dependencies:** TASK-001
**Estimated Time:** 30 minutes

## T3 Wire endpoints
Dependencies: TASK-001 (blocking), TASK-002
Estimated Time: 1.5 hours
`

func TestExtract(t *testing.T) {
	g := Extract(samplePlan)

	if g.Len() != 3 {
		t.Fatalf("expected 3 tasks, got %d", g.Len())
	}

	if got := g.IDs(); !reflect.DeepEqual(got, []string{"TASK-001", "TASK-002", "T3"}) {
		t.Fatalf("unexpected task order: %v", got)
	}

	first := g.Get("TASK-001")
	if first.Name != "Set up repository" {
		t.Errorf("expected title 'Set up repository', got %q", first.Name)
	}
	if len(first.Dependencies) != 0 {
		t.Errorf("'none' should yield no dependencies, got %v", first.Dependencies)
	}
	if first.EstimatedTime == nil || *first.EstimatedTime != 60 {
		t.Errorf("expected 60 minute estimate, got %v", first.EstimatedTime)
	}
	if first.Description != "Create the repository and CI pipeline." {
		t.Errorf("unexpected description: %q", first.Description)
	}
}

func TestExtract_BoldFieldVariants(t *testing.T) {
	second := Extract(samplePlan).Get("TASK-002")

	if !reflect.DeepEqual(second.Dependencies, []string{"TASK-001"}) {
		t.Errorf("expected [TASK-001], got %v", second.Dependencies)
	}
	if second.EstimatedTime == nil || *second.EstimatedTime != 30 {
		t.Errorf("expected 30 minute estimate, got %v", second.EstimatedTime)
	}
	if second.Description != "Write the initial schema.\nCovers both entities and indexes." {
		t.Errorf("description should accumulate lines before the first field, got %q", second.Description)
	}
}

func TestExtract_ShortIDAndAnnotations(t *testing.T) {
	third := Extract(samplePlan).Get("T3")

	if third == nil {
		t.Fatal("short-form id T3 not extracted")
	}
	if third.Name != "Wire endpoints" {
		t.Errorf("expected title 'Wire endpoints', got %q", third.Name)
	}
	// The parenthetical annotation on TASK-001 must not leak into the id.
	if !reflect.DeepEqual(third.Dependencies, []string{"TASK-001", "TASK-002"}) {
		t.Errorf("expected [TASK-001 TASK-002], got %v", third.Dependencies)
	}
	if third.EstimatedTime == nil || *third.EstimatedTime != 90 {
		t.Errorf("expected 90 minutes for 1.5 hours, got %v", third.EstimatedTime)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	if got := Extract("").Len(); got != 0 {
		t.Errorf("empty document should yield an empty graph, got %d tasks", got)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	a := Extract(samplePlan)
	b := Extract(samplePlan)

	if !reflect.DeepEqual(a.IDs(), b.IDs()) {
		t.Fatalf("id order differs between parses: %v vs %v", a.IDs(), b.IDs())
	}
	for _, id := range a.IDs() {
		if !reflect.DeepEqual(a.Get(id), b.Get(id)) {
			t.Errorf("task %s differs between parses", id)
		}
	}
}

func TestExtract_UnparseableEstimate(t *testing.T) {
	doc := `## TASK-001: A task
**Estimated Time**: a while
`
	task := Extract(doc).Get("TASK-001")
	if task.EstimatedTime != nil {
		t.Errorf("unparseable estimate should be nil, got %v", *task.EstimatedTime)
	}
}

func TestExtract_DependencyEntryWithoutID(t *testing.T) {
	doc := `## TASK-001: A task
Dependencies: TASK-002, the other thing, T9
`
	task := Extract(doc).Get("TASK-001")
	if !reflect.DeepEqual(task.Dependencies, []string{"TASK-002", "T9"}) {
		t.Errorf("entries without a recognizable id should be dropped, got %v", task.Dependencies)
	}
}

func TestExtract_DescriptionStopsAtFirstField(t *testing.T) {
	doc := `## TASK-001: A task
Line before fields.
Dependencies: none
Line after fields should be ignored.
`
	task := Extract(doc).Get("TASK-001")
	if task.Description != "Line before fields." {
		t.Errorf("unexpected description: %q", task.Description)
	}
}

func TestParseEstimate(t *testing.T) {
	cases := []struct {
		input string
		want  *int
	}{
		{"2 hours", intPtr(120)},
		{"1 hour", intPtr(60)},
		{"45 minutes", intPtr(45)},
		{"45 min", intPtr(45)},
		{"90m", intPtr(90)},
		{"3h", intPtr(180)},
		{"1.5 hrs", intPtr(90)},
		{"soon", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := parseEstimate(tc.input)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("parseEstimate(%q) = %d, want nil", tc.input, *got)
		case tc.want != nil && got == nil:
			t.Errorf("parseEstimate(%q) = nil, want %d", tc.input, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Errorf("parseEstimate(%q) = %d, want %d", tc.input, *got, *tc.want)
		}
	}
}

func intPtr(v int) *int { return &v }
