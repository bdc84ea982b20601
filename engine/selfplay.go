package engine

import (
	"math/rand"

	"github.com/basiliskbot/basilisk/game"
)

// Chooser picks a move for a snake given the current state viewed from
// that snake's perspective. cmd/bench wires this to search.ChooseMove;
// tests can wire in a fixed or scripted policy.
type Chooser func(view *game.GameState) game.Direction

// Outcome is the terminal result of one self-play game.
type Outcome struct {
	Turns    int
	Survived map[string]bool
}

// PlayGame runs state to completion (or maxTurns, whichever comes
// first), calling choosers[id] for every living snake each turn and
// advancing with Step. It never mutates the state passed in.
func PlayGame(state *game.GameState, choosers map[string]Chooser, settings RulesetSettings, rng *rand.Rand, maxTurns int) (*game.GameState, Outcome) {
	current := state.Clone()

	for turn := 0; turn < maxTurns && !IsOver(current); turn++ {
		moves := make(map[string]game.Direction, len(current.Board.Snakes))
		for _, s := range current.Board.Snakes {
			choose, ok := choosers[s.ID]
			if !ok {
				continue
			}
			view := current.Clone()
			view.YouID = s.ID
			moves[s.ID] = choose(view)
		}
		current = Step(current, moves, settings)
		SpawnFood(current, settings, rng)
	}

	survived := make(map[string]bool, len(current.Board.Snakes))
	for _, s := range current.Board.Snakes {
		survived[s.ID] = true
	}
	return current, Outcome{Turns: current.Turn, Survived: survived}
}
