package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/core"
)

// reachableArea estimates how many empty cells can be reached from start
// with a breadth-first walk over the arena. The budget caps the number of
// visited cells so the estimate stays cheap on large arenas; once the
// budget is hit the region is "big enough" and the exact size no longer
// changes the move ranking.
func reachableArea(arena *Arena, start core.Point, budget int) int {
	if arena.At(start).State != CellEmpty {
		return 0
	}
	if budget <= 0 {
		budget = arena.Width() * arena.Height()
	}

	visited := make(map[core.Point]bool, budget)
	queue := []core.Point{start}
	visited[start] = true
	count := 0

	for len(queue) > 0 && count < budget {
		p := queue[0]
		queue = queue[1:]
		count++

		for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			next := p.Add(d.Vector())
			if visited[next] {
				continue
			}
			if arena.At(next).State != CellEmpty {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return count
}
