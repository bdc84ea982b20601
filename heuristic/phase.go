package heuristic

import "github.com/basiliskbot/basilisk/game"

// Phase is Early, Mid, or Late, determined by turn, opponent count, and
// board occupancy.
type Phase int

const (
	PhaseEarly Phase = iota
	PhaseMid
	PhaseLate
)

func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	case PhaseLate:
		return "late"
	default:
		return "late"
	}
}

// Density is Σ snake lengths × 100 / (width × height).
func Density(b game.Board) float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	total := 0
	for _, s := range b.Snakes {
		total += len(s.Body)
	}
	return float64(total) * 100 / float64(b.Width*b.Height)
}

// DetectPhase implements the phase table. Late is checked first
// because "≤2 opponents, or occupancy > 40%" overrides what would
// otherwise look like an early or mid game.
func DetectPhase(turn int, opponentCount int, density float64) Phase {
	if opponentCount <= 2 || density > 40 {
		return PhaseLate
	}
	if turn <= 75 {
		return PhaseEarly
	}
	return PhaseMid
}

// SelectProfile picks the phase-appropriate profile for state and
// applies the food-competition rewrite when it detects scarce, contested
// food.
func SelectProfile(state *game.GameState) WeightProfile {
	opponents := state.Opponents()
	density := Density(state.Board)
	phase := DetectPhase(state.Turn, len(opponents), density)

	var profile WeightProfile
	switch phase {
	case PhaseEarly:
		profile = Early()
	case PhaseMid:
		profile = Mid()
	default:
		profile = Late()
	}

	if isFoodCompetition(state, opponents) {
		profile = ApplyFoodCompetition(profile)
	}
	return profile
}

// isFoodCompetition detects food-per-snake < 1.5 with opponents
// disproportionately closer to food than we are.
func isFoodCompetition(state *game.GameState, opponents []game.Snake) bool {
	food := state.Board.Food
	if len(food) == 0 {
		return false
	}

	foodPerSnake := float64(len(food)) / float64(len(opponents)+1)
	if foodPerSnake >= 1.5 {
		return false
	}

	you := state.You()
	if you == nil || len(you.Body) == 0 {
		return false
	}
	ourBest := nearestFoodManhattan(you.Head(), food)
	if ourBest < 0 {
		return false
	}

	closer := 0
	for _, opp := range opponents {
		if len(opp.Body) == 0 {
			continue
		}
		d := nearestFoodManhattan(opp.Head(), food)
		if d >= 0 && d < ourBest {
			closer++
		}
	}
	return closer*2 > len(opponents)
}

func nearestFoodManhattan(head game.Coord, food []game.Coord) int {
	best := -1
	for _, f := range food {
		d := head.Manhattan(f)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
