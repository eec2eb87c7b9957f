package taskgraph

import (
	"fmt"
	"strings"
)

// Result is the outcome of validating a Graph. Errors holds one
// human-readable message per problem found, in a stable order.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a graph for referential integrity and dependency cycles.
// Both checks always run so all errors are reported together: one error per
// dependency on a task ID missing from the graph, plus one error for the
// first cycle found. The graph itself is never mutated.
func Validate(g *Graph) Result {
	result := Result{Valid: true, Errors: []string{}}

	for _, id := range g.IDs() {
		task := g.Get(id)
		for _, depID := range task.Dependencies {
			if !g.Has(depID) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("task %s depends on non-existent task %s", id, depID))
			}
		}
	}

	if cycle := findCycle(g); cycle != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("circular dependency detected: %s", strings.Join(cycle, " → ")))
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// findCycle runs a depth-first search from every task, tracking a recursion
// stack. On the first back-edge into the stack it reconstructs the cycle as
// the ordered sequence of IDs from the closing point back to the repeated
// node, e.g. [A B C A]. Dependencies absent from the graph are dead ends,
// not errors here; the referential check reports those separately.
func findCycle(g *Graph) []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	parent := make(map[string]string)

	var dfs func(id string) []string
	dfs = func(id string) []string {
		visited[id] = true
		recStack[id] = true
		defer func() { recStack[id] = false }()

		for _, depID := range g.Get(id).Dependencies {
			if !g.Has(depID) {
				continue
			}
			if !visited[depID] {
				parent[depID] = id
				if cycle := dfs(depID); cycle != nil {
					return cycle
				}
			} else if recStack[depID] {
				// Back-edge: walk parents from id back to depID.
				cycle := []string{depID}
				for current := id; current != depID; current = parent[current] {
					cycle = append([]string{current}, cycle...)
				}
				return append([]string{depID}, cycle...)
			}
		}
		return nil
	}

	for _, id := range g.IDs() {
		if !visited[id] {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
