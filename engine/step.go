package engine

import (
	"github.com/basiliskbot/basilisk/game"
)

// Step advances state by one turn under the full ruleset: every living
// snake with a move in moves advances, food is consumed and grows
// snakes, hazard damage is applied, and simultaneous collisions
// (wall, body, head-to-head) are resolved before dead snakes are
// dropped. A living snake missing from moves is treated as forced and
// dies, mirroring a client that failed to respond in time.
func Step(state *game.GameState, moves map[string]game.Direction, settings RulesetSettings) *game.GameState {
	next := state.Clone()
	next.Turn++

	newHeads := make(map[string]game.Coord, len(next.Board.Snakes))
	for i := range next.Board.Snakes {
		s := &next.Board.Snakes[i]
		if s.Health <= 0 || len(s.Body) == 0 {
			continue
		}
		move, ok := moves[s.ID]
		if !ok {
			s.Health = 0
			continue
		}
		newHeads[s.ID] = s.Head().Add(move.Delta())
	}

	ate := make(map[string]bool, len(newHeads))
	eatenFood := make(map[game.Coord]bool)
	for id, head := range newHeads {
		for _, f := range next.Board.Food {
			if f == head {
				ate[id] = true
				eatenFood[f] = true
			}
		}
	}
	if len(eatenFood) > 0 {
		remaining := next.Board.Food[:0]
		for _, f := range next.Board.Food {
			if !eatenFood[f] {
				remaining = append(remaining, f)
			}
		}
		next.Board.Food = remaining
	}

	for i := range next.Board.Snakes {
		s := &next.Board.Snakes[i]
		head, moved := newHeads[s.ID]
		if !moved {
			continue
		}

		body := make([]game.Coord, 0, len(s.Body)+1)
		body = append(body, head)
		body = append(body, s.Body...)

		if ate[s.ID] {
			s.Health = 100
		} else {
			s.Health--
			if next.Board.IsHazard(head) {
				s.Health -= settings.HazardDamagePerTurn
			}
			body = body[:len(body)-1]
		}
		s.Body = body
	}

	dead := make(map[string]bool)
	for _, s := range next.Board.Snakes {
		if s.Health <= 0 {
			dead[s.ID] = true
			continue
		}
		head := s.Head()
		if !next.Board.InBounds(head) {
			dead[s.ID] = true
			continue
		}
		for _, other := range next.Board.Snakes {
			if other.Health <= 0 || len(other.Body) == 0 {
				continue
			}
			for i, seg := range other.Body {
				if i == 0 {
					continue // heads are resolved separately below
				}
				if seg == head {
					dead[s.ID] = true
				}
			}
		}
	}

	for i := 0; i < len(next.Board.Snakes); i++ {
		s1 := next.Board.Snakes[i]
		if dead[s1.ID] || len(s1.Body) == 0 {
			continue
		}
		for j := i + 1; j < len(next.Board.Snakes); j++ {
			s2 := next.Board.Snakes[j]
			if dead[s2.ID] || len(s2.Body) == 0 {
				continue
			}
			if s1.Head() != s2.Head() {
				continue
			}
			switch {
			case s1.Length() > s2.Length():
				dead[s2.ID] = true
			case s2.Length() > s1.Length():
				dead[s1.ID] = true
			default:
				dead[s1.ID] = true
				dead[s2.ID] = true
			}
		}
	}

	alive := make([]game.Snake, 0, len(next.Board.Snakes))
	for _, s := range next.Board.Snakes {
		if !dead[s.ID] {
			alive = append(alive, s)
		}
	}
	next.Board.Snakes = alive

	return next
}

// IsOver reports whether the game has ended: zero or one snake left
// alive.
func IsOver(state *game.GameState) bool {
	return len(state.Board.Snakes) <= 1
}
