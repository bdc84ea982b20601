// Package search implements the bounded-depth, deadline-aware minimax
// search over simulated game states.
package search

import (
	"math"
	"sort"
	"time"

	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/heuristic"
	"github.com/basiliskbot/basilisk/pathfind"
	"github.com/basiliskbot/basilisk/rules"
)

// MoveDecision is the chosen direction and the minimax score that
// justified it.
type MoveDecision struct {
	Move  game.Direction
	Score float64
}

type scored struct {
	move  game.Direction
	score float64
}

// ChooseMove runs the pre-search filters and, if more than one
// candidate survives, a deadline-aware alpha-beta minimax to pick the
// best move for state.You(). depth0Scores is the caller's once-per-decision
// evaluator score per safe move, consulted only for tie-breaking.
func ChooseMove(state *game.GameState, maxDepth int, profile heuristic.WeightProfile, depth0Scores map[game.Direction]float64, deadline time.Time) MoveDecision {
	safe := rules.SafeMoves(state)
	if len(safe) == 0 {
		return MoveDecision{Move: game.Up, Score: math.Inf(-1)}
	}
	if len(safe) == 1 {
		score, ok := depth0Scores[safe[0]]
		if !ok {
			score = heuristic.Evaluate(rules.ApplyMoveFrozen(state, safe[0]), profile).Score
		}
		return MoveDecision{Move: safe[0], Score: score}
	}

	candidates := spaceFilter(state, safe)
	if len(candidates) == 0 {
		candidates = safe
	}

	oppHorizon := minInt(maxDepth, 3)
	nearest, hasOpp := state.NearestOpponent()

	results := make([]scored, 0, len(candidates))
	alpha := math.Inf(-1)
	beta := math.Inf(1)

	for _, move := range candidates {
		if pastDeadline(deadline) {
			child := rules.ApplyMoveFrozen(state, move)
			results = append(results, scored{move, heuristic.Evaluate(child, heuristic.Cheap()).Score})
			continue
		}

		var value float64
		if oppHorizon > 0 && hasOpp {
			value = minOverOpponentMoves(state, move, nearest.ID, maxDepth, oppHorizon, profile, alpha, beta, deadline)
		} else {
			child := rules.ApplyMoveFrozen(state, move)
			value = minimax(child, maxDepth-1, false, alpha, beta, profile, 0, deadline)
		}

		results = append(results, scored{move, value})
		if value > alpha {
			alpha = value
		}
	}

	you := state.You()
	snakeID := state.YouID
	if you != nil {
		snakeID = you.ID
	}

	sort.SliceStable(results, func(i, j int) bool {
		return betterCandidate(results[i], results[j], depth0Scores, snakeID, state.Turn)
	})

	best := results[0]
	return MoveDecision{Move: best.move, Score: best.score}
}

// minimax evaluates state from the perspective described by maximizing,
// stopping early at depth 0 or once the deadline has passed. Opponent
// branching (via minOverOpponentMoves) only happens while oppHorizon is
// positive and only at maximizing plies; the minimizing ply alternates
// purely for alpha-beta bookkeeping over our own continuations and does
// not model an opponent turn.
func minimax(state *game.GameState, depth int, maximizing bool, alpha, beta float64, profile heuristic.WeightProfile, oppHorizon int, deadline time.Time) float64 {
	if pastDeadline(deadline) {
		return heuristic.Evaluate(state, heuristic.Cheap()).Score
	}
	if depth <= 0 {
		return heuristic.Evaluate(state, profile).Score
	}

	safe := rules.SafeMoves(state)
	if len(safe) == 0 {
		return heuristic.Evaluate(state, profile).Score
	}

	if maximizing {
		nearest, hasOpp := state.NearestOpponent()
		best := math.Inf(-1)
		for _, move := range safe {
			if pastDeadline(deadline) {
				break
			}
			var value float64
			if oppHorizon > 0 && hasOpp {
				value = minOverOpponentMoves(state, move, nearest.ID, depth, oppHorizon, profile, alpha, beta, deadline)
			} else {
				child := rules.ApplyMoveFrozen(state, move)
				value = minimax(child, depth-1, false, alpha, beta, profile, 0, deadline)
			}
			if value > best {
				best = value
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range safe {
		if pastDeadline(deadline) {
			break
		}
		child := rules.ApplyMoveFrozen(state, move)
		value := minimax(child, depth-1, true, alpha, beta, profile, oppHorizon, deadline)
		if value < best {
			best = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// minOverOpponentMoves branches on the nearest opponent's own safe
// moves (from its perspective) and takes the minimum resulting value —
// the worst case for us. An opponent with no safe move is treated as
// forced into Up, matching predictor's degenerate case.
func minOverOpponentMoves(state *game.GameState, ourMove game.Direction, oppID string, depth, oppHorizon int, profile heuristic.WeightProfile, alpha, beta float64, deadline time.Time) float64 {
	oppView := state.Clone()
	oppView.YouID = oppID
	oppSafe := rules.SafeMoves(oppView)
	if len(oppSafe) == 0 {
		oppSafe = []game.Direction{game.Up}
	}

	best := math.Inf(1)
	for _, oppMove := range oppSafe {
		if pastDeadline(deadline) {
			break
		}
		child := rules.ApplyMoveWithOpponent(state, ourMove, oppID, oppMove)
		value := minimax(child, depth-1, false, alpha, beta, profile, oppHorizon-1, deadline)
		if value < best {
			best = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// spaceFilter drops candidate moves that trap us in a pocket smaller
// than our own length, as a pre-search filtering step. Callers fall
// back to the unfiltered set if this empties it.
func spaceFilter(state *game.GameState, safe []game.Direction) []game.Direction {
	you := state.You()
	if you == nil {
		return safe
	}
	ourLen := you.Length()

	out := make([]game.Direction, 0, len(safe))
	for _, move := range safe {
		child := rules.ApplyMoveFrozen(state, move)
		childYou := child.You()
		if childYou == nil || len(childYou.Body) == 0 {
			continue
		}
		blocked := rules.BlockedCells(child.Board)
		area := pathfind.FloodFillCount(child.Board, blocked, childYou.Head())
		if area >= ourLen {
			out = append(out, move)
		}
	}
	return out
}

func pastDeadline(deadline time.Time) bool {
	return !time.Now().Before(deadline)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
