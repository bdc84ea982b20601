// Package pathfind implements the board-geometry helpers shared by the
// heuristic evaluator: reachable-area flood-fill, BFS shortest distance,
// and a sampled Voronoi control approximation.
package pathfind

import "github.com/basiliskbot/basilisk/game"

// FloodFillCount returns the number of cells reachable from start via
// 4-connected passable cells (in-bounds, not blocked by a non-tail body
// segment). The result is deterministic for a given (board, start) pair
// and is at most Width*Height.
//
// Callers evaluating many heuristics against the same state should
// compute this once and reuse it, as the heuristic package's evalContext
// does.
func FloodFillCount(b game.Board, blocked map[game.Coord]bool, start game.Coord) int {
	if !b.InBounds(start) {
		return 0
	}

	// start is enqueued unconditionally: the starting cell (our own head
	// after a move) is never treated as blocked by our own body, since
	// it is the frontier the caller wants to measure from.
	visited := make(map[game.Coord]bool, b.Width*b.Height)
	queue := make([]game.Coord, 0, b.Width*b.Height)
	visited[start] = true
	queue = append(queue, start)

	count := 0
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		count++
		for _, d := range game.AllDirections {
			next := cur.Add(d.Delta())
			if visited[next] {
				continue
			}
			if !b.InBounds(next) || blocked[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return count
}
