package taskgraph

// Task is one unit of work extracted from a plan document.
type Task struct {
	// ID is the unique task identifier, e.g. "TASK-001" or "T1".
	// It is the sole join key for dependency edges.
	ID string `json:"id"`
	// Name is the free-text title from the task heading.
	Name string `json:"name"`
	// Dependencies lists the IDs of tasks that must complete first.
	// Declaration order is preserved for display.
	Dependencies []string `json:"dependencies"`
	// EstimatedTime is the estimated duration in minutes. Nil when the
	// document gave no estimate or the estimate couldn't be parsed.
	EstimatedTime *int `json:"estimated_time,omitempty"`
	// Description accumulates the task's free text, one source line each.
	Description string `json:"description,omitempty"`
}

// Graph is an immutable mapping of task ID to Task built by Extract.
// It preserves document order so that scheduling output is deterministic;
// Go map iteration alone would not be.
type Graph struct {
	tasks map[string]*Task
	order []string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{tasks: make(map[string]*Task)}
}

// add inserts a task, tracking insertion order. A duplicate ID replaces the
// earlier task's fields but keeps its original position.
func (g *Graph) add(t *Task) {
	if _, exists := g.tasks[t.ID]; !exists {
		g.order = append(g.order, t.ID)
	}
	g.tasks[t.ID] = t
}

// Get returns the task with the given ID, or nil if absent.
func (g *Graph) Get(id string) *Task {
	return g.tasks[id]
}

// Has reports whether the graph contains a task with the given ID.
func (g *Graph) Has(id string) bool {
	_, ok := g.tasks[id]
	return ok
}

// IDs returns the task IDs in document order. The caller must not modify
// the returned slice.
func (g *Graph) IDs() []string {
	return g.order
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Tasks returns the tasks in document order.
func (g *Graph) Tasks() []*Task {
	tasks := make([]*Task, 0, len(g.order))
	for _, id := range g.order {
		tasks = append(tasks, g.tasks[id])
	}
	return tasks
}
