package taskgraph

import (
	"strings"
	"testing"
)

// buildGraph assembles a graph directly, bypassing the extractor, for
// validator and scheduler tests.
func buildGraph(t *testing.T, tasks ...*Task) *Graph {
	t.Helper()
	g := NewGraph()
	for _, task := range tasks {
		if task.Dependencies == nil {
			task.Dependencies = []string{}
		}
		g.add(task)
	}
	return g
}

func TestValidate_ValidGraph(t *testing.T) {
	g := buildGraph(t,
		&Task{ID: "T1"},
		&Task{ID: "T2", Dependencies: []string{"T1"}},
		&Task{ID: "T3", Dependencies: []string{"T1", "T2"}},
	)

	result := Validate(g)
	if !result.Valid {
		t.Fatalf("expected valid graph, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	result := Validate(NewGraph())
	if !result.Valid || len(result.Errors) != 0 {
		t.Errorf("empty graph should be valid with zero errors, got %+v", result)
	}
}

func TestValidate_MissingReference(t *testing.T) {
	g := buildGraph(t,
		&Task{ID: "T1", Dependencies: []string{"T9"}},
		&Task{ID: "T2", Dependencies: []string{"T1"}},
	)

	result := Validate(g)
	if result.Valid {
		t.Fatal("graph with a missing reference should be invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "T1") || !strings.Contains(result.Errors[0], "T9") {
		t.Errorf("error should name the dependent task and the missing id: %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "non-existent task") {
		t.Errorf("unexpected error wording: %q", result.Errors[0])
	}
}

func TestValidate_OneErrorPerMissingReference(t *testing.T) {
	g := buildGraph(t,
		&Task{ID: "T1", Dependencies: []string{"T8", "T9"}},
	)

	result := Validate(g)
	if len(result.Errors) != 2 {
		t.Errorf("expected one error per missing reference, got %v", result.Errors)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := buildGraph(t,
		&Task{ID: "A", Dependencies: []string{"B"}},
		&Task{ID: "B", Dependencies: []string{"C"}},
		&Task{ID: "C", Dependencies: []string{"A"}},
	)

	result := Validate(g)
	if result.Valid {
		t.Fatal("cyclic graph should be invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected a single cycle error, got %v", result.Errors)
	}
	for _, id := range []string{"A", "B", "C"} {
		if !strings.Contains(result.Errors[0], id) {
			t.Errorf("cycle error should mention %s: %q", id, result.Errors[0])
		}
	}
	if !strings.Contains(result.Errors[0], "→") {
		t.Errorf("cycle ids should be joined by an arrow: %q", result.Errors[0])
	}
}

func TestValidate_TwoNodeCycleAmongIndependentTasks(t *testing.T) {
	g := buildGraph(t,
		&Task{ID: "T1"},
		&Task{ID: "T2"},
		&Task{ID: "T3"},
		&Task{ID: "T4", Dependencies: []string{"T5"}},
		&Task{ID: "T5", Dependencies: []string{"T4"}},
	)

	result := Validate(g)
	if result.Valid {
		t.Fatal("expected invalid graph")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one cycle error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "T4") || !strings.Contains(result.Errors[0], "T5") {
		t.Errorf("cycle error should reference T4 and T5: %q", result.Errors[0])
	}
}

func TestValidate_BothChecksReported(t *testing.T) {
	// A missing reference and a cycle in the same graph: both surface.
	g := buildGraph(t,
		&Task{ID: "T1", Dependencies: []string{"T9"}},
		&Task{ID: "T2", Dependencies: []string{"T3"}},
		&Task{ID: "T3", Dependencies: []string{"T2"}},
	)

	result := Validate(g)
	if len(result.Errors) != 2 {
		t.Fatalf("expected a referential error and a cycle error, got %v", result.Errors)
	}
}

func TestValidate_MissingDependencyIsDeadEndForCycleSearch(t *testing.T) {
	// Cycle detection must skip dangling references rather than crash.
	g := buildGraph(t,
		&Task{ID: "T1", Dependencies: []string{"GHOST-1"}},
		&Task{ID: "T2", Dependencies: []string{"T1"}},
	)

	result := Validate(g)
	if len(result.Errors) != 1 {
		t.Fatalf("expected only the referential error, got %v", result.Errors)
	}
}

func TestValidate_SelfDependency(t *testing.T) {
	g := buildGraph(t, &Task{ID: "T1", Dependencies: []string{"T1"}})

	result := Validate(g)
	if result.Valid {
		t.Fatal("self-dependency should be reported as a cycle")
	}
}
