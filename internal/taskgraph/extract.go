package taskgraph

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Task identifiers are an uppercase alphabetic prefix plus digits. Both the
// hyphenated long form ("TASK-001") and the short form ("T1") are accepted,
// and both denote the same identifier type.
var idPattern = regexp.MustCompile(`[A-Z]+-?[0-9]+`)

// A task section starts at a heading whose text leads with a task identifier,
// optionally followed by a separator and a title.
var headingPattern = regexp.MustCompile(`^#{1,6}\s+([A-Z]+-?[0-9]+)\s*[:.\-]?\s*(.*)$`)

// Field lines tolerate bold or plain emphasis around the label, and emphasis
// closing after the colon ("**Dependencies:** ...").
var (
	dependenciesPattern  = regexp.MustCompile(`(?i)^(?:\*\*|\*|__|_)?dependencies(?:\*\*|\*|__|_)?\s*:\s*(?:\*\*|\*|__|_)?\s*(.*)$`)
	estimatedTimePattern = regexp.MustCompile(`(?i)^(?:\*\*|\*|__|_)?estimated\s+time(?:\*\*|\*|__|_)?\s*:\s*(?:\*\*|\*|__|_)?\s*(.*)$`)
	durationPattern      = regexp.MustCompile(`(?i)^~?\s*([0-9]+(?:\.[0-9]+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)
)

// Extract parses the full text of a plan document into a Graph.
//
// The parser is a small line-oriented state machine: outside any task section
// it looks only for task headings; inside one it recognizes the Dependencies
// and Estimated Time fields and accumulates other non-empty, non-heading
// lines occurring before the first recognized field into the description.
// Malformed field values degrade to empty or nil values rather than failing;
// an empty document yields an empty graph.
func Extract(text string) *Graph {
	g := NewGraph()

	var current *Task
	fieldSeen := false

	flush := func() {
		if current != nil {
			g.add(current)
			current = nil
		}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &Task{
				ID:           m[1],
				Name:         strings.TrimSpace(strings.Trim(m[2], "*_ ")),
				Dependencies: []string{},
			}
			fieldSeen = false
			continue
		}

		if current == nil {
			continue
		}

		if m := dependenciesPattern.FindStringSubmatch(line); m != nil {
			current.Dependencies = parseDependencies(m[1])
			fieldSeen = true
			continue
		}

		if m := estimatedTimePattern.FindStringSubmatch(line); m != nil {
			current.EstimatedTime = parseEstimate(m[1])
			fieldSeen = true
			continue
		}

		// Non-task headings never contribute to the description.
		if line == "" || strings.HasPrefix(line, "#") || fieldSeen {
			continue
		}

		if current.Description == "" {
			current.Description = line
		} else {
			current.Description += "\n" + line
		}
	}

	flush()
	return g
}

// parseDependencies splits a Dependencies field value into task IDs.
// The literal "none" (any case) means no dependencies. Otherwise the value is
// split on commas and each entry contributes the task ID it contains;
// trailing annotations such as parenthetical notes are ignored, and entries
// with no recognizable ID are dropped.
func parseDependencies(value string) []string {
	value = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*_"))
	if value == "" || strings.EqualFold(value, "none") {
		return []string{}
	}

	deps := []string{}
	for _, entry := range strings.Split(value, ",") {
		if id := idPattern.FindString(entry); id != "" {
			deps = append(deps, id)
		}
	}
	return deps
}

// parseEstimate converts an Estimated Time field value to minutes.
// A number with an hour unit is scaled by 60; a minute unit is taken as-is.
// Anything else returns nil, which downstream treats as "no estimate".
func parseEstimate(value string) *int {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return nil
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	var minutes int
	switch strings.ToLower(m[2])[0] {
	case 'h':
		minutes = int(math.Round(amount * 60))
	default:
		minutes = int(math.Round(amount))
	}
	return &minutes
}
