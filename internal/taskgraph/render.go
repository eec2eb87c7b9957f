package taskgraph

import (
	"fmt"
	"strings"
)

// Render formats a wave schedule and its metrics into a human-readable
// report. Presentation only: it reproduces the computed data faithfully and
// adds nothing.
func Render(g *Graph, waves [][]string, metrics Metrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Execution Plan\n")
	fmt.Fprintf(&b, "  Tasks: %d\n", g.Len())
	fmt.Fprintf(&b, "  Waves: %d\n", len(waves))
	fmt.Fprintf(&b, "  Parallelization score: %d/100\n", metrics.Score)
	fmt.Fprintf(&b, "  Sequential time: %s\n", FormatMinutes(metrics.SequentialMinutes))
	fmt.Fprintf(&b, "  Parallel time:   %s\n", FormatMinutes(metrics.ParallelMinutes))
	fmt.Fprintf(&b, "  Time saved:      %s (%.1f%%)\n", FormatMinutes(metrics.SavedMinutes), metrics.SavedPercent)

	for i, wave := range waves {
		fmt.Fprintf(&b, "\nWave %d (%d task", i+1, len(wave))
		if len(wave) != 1 {
			b.WriteString("s")
		}
		b.WriteString(")\n")

		for _, id := range wave {
			task := g.Get(id)
			fmt.Fprintf(&b, "  - %s: %s", id, task.Name)
			if task.EstimatedTime != nil {
				fmt.Fprintf(&b, " (%s)", FormatMinutes(*task.EstimatedTime))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatMinutes renders a duration in minutes as "Xh Ym", dropping the
// minutes component when it is zero, or as "Ym" alone under an hour.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
