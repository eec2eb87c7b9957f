package taskgraph

import "math"

// Metrics summarizes how much a wave schedule parallelizes a plan.
type Metrics struct {
	// Score is a 0-100 heuristic combining how few waves are needed and
	// how many tasks pack into each wave.
	Score int `json:"score"`
	// SequentialMinutes is the total estimated time running one task at a
	// time. Tasks without an estimate contribute zero.
	SequentialMinutes int `json:"sequential_minutes"`
	// ParallelMinutes is the critical-path time running wave by wave: the
	// sum over waves of each wave's largest estimate.
	ParallelMinutes int `json:"parallel_minutes"`
	// SavedMinutes is sequential minus parallel.
	SavedMinutes int `json:"saved_minutes"`
	// SavedPercent is the saving as a percentage of the sequential time,
	// zero when there are no estimates at all.
	SavedPercent float64 `json:"saved_percent"`
}

// ComputeMetrics derives the parallelization score and time savings from a
// validated graph and its wave schedule.
func ComputeMetrics(g *Graph, waves [][]string) Metrics {
	return Metrics{
		Score: parallelizationScore(g.Len(), len(waves)),
	}.withTimeSavings(g, waves)
}

// parallelizationScore maps (task count, wave count) to 0-100. Half the
// score rewards needing few waves relative to task count, half rewards
// average wave width. A single-task plan scores the full wave component by
// convention; an empty plan scores zero.
func parallelizationScore(tasks, waves int) int {
	if tasks == 0 {
		return 0
	}

	waveScore := 50.0
	if tasks > 1 {
		waveScore = float64(tasks-waves) / float64(tasks-1) * 50
	}

	parallelismBonus := math.Min(float64(tasks)/float64(waves)*10, 50)

	return int(math.Round(waveScore + parallelismBonus))
}

func (m Metrics) withTimeSavings(g *Graph, waves [][]string) Metrics {
	for _, task := range g.Tasks() {
		if task.EstimatedTime != nil {
			m.SequentialMinutes += *task.EstimatedTime
		}
	}

	for _, wave := range waves {
		longest := 0
		for _, id := range wave {
			if t := g.Get(id); t != nil && t.EstimatedTime != nil && *t.EstimatedTime > longest {
				longest = *t.EstimatedTime
			}
		}
		m.ParallelMinutes += longest
	}

	m.SavedMinutes = m.SequentialMinutes - m.ParallelMinutes
	if m.SequentialMinutes > 0 {
		m.SavedPercent = float64(m.SavedMinutes) / float64(m.SequentialMinutes) * 100
	}
	return m
}
