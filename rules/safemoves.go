package rules

import "github.com/basiliskbot/basilisk/game"

// SafeMoves returns the subset of the four directions whose resulting
// head is in-bounds and off every snake's non-tail body cell. The
// order is deterministic: up, down, left, right. An empty result is a
// legal outcome and signals "no safe move" to the caller.
func SafeMoves(state *game.GameState) []game.Direction {
	you := state.You()
	if you == nil || len(you.Body) == 0 {
		return nil
	}

	blocked := BlockedCells(state.Board)
	head := you.Head()

	out := make([]game.Direction, 0, 4)
	for _, d := range game.AllDirections {
		next := head.Add(d.Delta())
		if IsPassable(state.Board, blocked, next) {
			out = append(out, d)
		}
	}
	return out
}
