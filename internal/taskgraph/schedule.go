package taskgraph

import "fmt"

// Schedule groups the graph's tasks into ordered execution waves. Each wave
// holds every not-yet-scheduled task whose dependencies are all satisfied by
// earlier waves, so each wave is maximal and tasks in one wave can run in
// parallel. Within a wave, tasks appear in document order.
//
// Callers must validate the graph first. Schedule does not re-check the
// graph's semantics; it only guards against non-termination: if a sweep finds
// no ready task while tasks remain, it returns an error instead of looping.
func Schedule(g *Graph) ([][]string, error) {
	waves := [][]string{}
	completed := make(map[string]bool)

	for len(completed) < g.Len() {
		var wave []string

		for _, id := range g.IDs() {
			if completed[id] {
				continue
			}
			ready := true
			for _, depID := range g.Get(id).Dependencies {
				if !completed[depID] {
					ready = false
					break
				}
			}
			if ready {
				wave = append(wave, id)
			}
		}

		if len(wave) == 0 {
			return nil, fmt.Errorf("cannot schedule: circular or invalid dependency among remaining tasks (%d left)",
				g.Len()-len(completed))
		}

		waves = append(waves, wave)
		for _, id := range wave {
			completed[id] = true
		}
	}

	return waves, nil
}
