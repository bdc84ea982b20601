package search

import (
	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/heuristic"
)

// DynamicDepth picks a search depth guideline from the live snake count
// and board density. The deadline remains authoritative: this is a
// starting point, not a guarantee.
func DynamicDepth(state *game.GameState) int {
	total := len(state.Board.Snakes)
	switch {
	case total <= 1:
		return 10
	case total == 2:
		return 8
	case heuristic.Density(state.Board) > 40:
		return 5
	default:
		return 6
	}
}
