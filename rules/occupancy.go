// Package rules implements the move-decision core's simplified game
// mechanics: safe-move generation and the two simulator variants consumed
// by search. It deliberately does not model food consumption or growth.
// The full-rules engine used for self-play lives in the sibling engine
// package.
package rules

import "github.com/basiliskbot/basilisk/game"

// BlockedCells returns the set of cells occupied by a non-tail body
// segment of some live snake on the board. The tail segment of every
// snake is deliberately excluded: it vacates on the next turn and is
// therefore passable.
//
// A snake's tail can still end up blocked if another snake's body (or
// its own stacked starting segments) occupies the same cell; that
// occurrence is captured by the non-tail segments of the overlapping
// body, so no special-casing is needed here.
func BlockedCells(b game.Board) map[game.Coord]bool {
	blocked := make(map[game.Coord]bool, b.Width*b.Height/2+4)
	for _, s := range b.Snakes {
		if len(s.Body) == 0 {
			continue
		}
		nonTail := s.Body
		if len(nonTail) > 1 {
			nonTail = nonTail[:len(nonTail)-1]
		}
		for _, c := range nonTail {
			blocked[c] = true
		}
	}
	return blocked
}

// IsPassable reports whether c is in-bounds and not blocked by a
// non-tail body segment. This is the single passability rule shared by
// safe-move generation and pathfinding.
func IsPassable(b game.Board, blocked map[game.Coord]bool, c game.Coord) bool {
	return b.InBounds(c) && !blocked[c]
}
