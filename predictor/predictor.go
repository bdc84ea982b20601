// Package predictor implements a one-ply opponent-move estimate. The
// search does not call it: its opponent-branching plies enumerate every
// safe move of the nearest opponent directly.
package predictor

import (
	"math"

	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/heuristic"
	"github.com/basiliskbot/basilisk/rules"
)

// Prediction is the opponent's estimated best move and the score that
// justified it, from the opponent's own perspective.
type Prediction struct {
	Move  game.Direction
	Score float64
}

// Predict re-views state from oppID's perspective and returns the
// highest-scoring safe move under the fixed cheap predictor profile. If
// the opponent has no safe moves, it reports Up with -Inf, meaning the
// opponent is forced.
func Predict(state *game.GameState, oppID string) Prediction {
	view := state.Clone()
	view.YouID = oppID

	safe := rules.SafeMoves(view)
	if len(safe) == 0 {
		return Prediction{Move: game.Up, Score: math.Inf(-1)}
	}

	profile := heuristic.PredictorProfile()
	best := Prediction{Move: safe[0], Score: math.Inf(-1)}
	for _, move := range safe {
		child := rules.ApplyMoveFrozen(view, move)
		score := heuristic.Evaluate(child, profile).Score
		if score > best.Score {
			best = Prediction{Move: move, Score: score}
		}
	}
	return best
}
