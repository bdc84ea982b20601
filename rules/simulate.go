package rules

import "github.com/basiliskbot/basilisk/game"

// advanceSnake mechanically applies one move to a snake: the new head is
// prepended and the tail is dropped. Growth is never modeled here — the
// search treats food geometrically via the heuristic evaluator instead
// of updating length mid-tree.
func advanceSnake(s *game.Snake, move game.Direction) {
	head := s.Head()
	newHead := head.Add(move.Delta())

	newBody := make([]game.Coord, len(s.Body))
	newBody[0] = newHead
	copy(newBody[1:], s.Body[:len(s.Body)-1])
	s.Body = newBody
	s.Health--
}

// ApplyMoveFrozen applies move to our snake and decrements every other
// snake's health while leaving their positions untouched. This is
// simulator variant (a), used at every ply once the opponent-prediction
// horizon has been exhausted.
func ApplyMoveFrozen(state *game.GameState, move game.Direction) *game.GameState {
	next := state.Clone()
	next.Turn++

	you := next.You()
	if you == nil || len(you.Body) == 0 {
		return next
	}
	advanceSnake(you, move)

	for i := range next.Board.Snakes {
		s := &next.Board.Snakes[i]
		if s.ID == next.YouID {
			continue
		}
		s.Health--
	}
	return next
}

// ApplyMoveWithOpponent applies move to our snake and oppMove to the
// snake identified by oppID, freezing every other opponent (variant b).
// It is used only for the first opponent-prediction plies of search
// where opponent prediction is active.
func ApplyMoveWithOpponent(state *game.GameState, move game.Direction, oppID string, oppMove game.Direction) *game.GameState {
	next := state.Clone()
	next.Turn++

	you := next.You()
	if you == nil || len(you.Body) == 0 {
		return next
	}
	advanceSnake(you, move)

	for i := range next.Board.Snakes {
		s := &next.Board.Snakes[i]
		switch {
		case s.ID == next.YouID:
			continue
		case s.ID == oppID && len(s.Body) > 0:
			advanceSnake(s, oppMove)
		default:
			s.Health--
		}
	}
	return next
}
