package engine

import (
	"math/rand"

	"github.com/basiliskbot/basilisk/game"
)

// SpawnFood tops the board up to settings.MinimumFood and, with
// probability settings.FoodSpawnChance out of 100, spawns one extra
// piece on top of that minimum, at a uniformly random unoccupied cell.
// rng is required — the self-play harness that owns this package
// always has one on hand, so unlike the search tree there is no need
// for a deterministic-hash fallback for a missing RNG.
func SpawnFood(state *game.GameState, settings RulesetSettings, rng *rand.Rand) {
	if state.Board.Width <= 0 || state.Board.Height <= 0 {
		return
	}
	if settings.MinimumFood < 0 {
		settings.MinimumFood = 0
	}
	chance := settings.FoodSpawnChance
	if chance < 0 {
		chance = 0
	}
	if chance > 100 {
		chance = 100
	}

	deficit := settings.MinimumFood - len(state.Board.Food)
	if deficit < 0 {
		deficit = 0
	}
	spawnExtra := chance > 0 && rng.Intn(100) < chance

	toSpawn := deficit
	if spawnExtra {
		toSpawn++
	}
	if toSpawn == 0 {
		return
	}

	available := unoccupiedCells(state.Board)
	for i := 0; i < toSpawn && len(available) > 0; i++ {
		idx := rng.Intn(len(available))
		state.Board.Food = append(state.Board.Food, available[idx])
		available[idx] = available[len(available)-1]
		available = available[:len(available)-1]
	}
}

func unoccupiedCells(b game.Board) []game.Coord {
	occupied := make(map[game.Coord]bool, b.Width*b.Height)
	for _, s := range b.Snakes {
		if s.Health <= 0 {
			continue
		}
		for _, seg := range s.Body {
			occupied[seg] = true
		}
	}
	for _, f := range b.Food {
		occupied[f] = true
	}

	available := make([]game.Coord, 0, b.Width*b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := game.Coord{X: x, Y: y}
			if !occupied[c] {
				available = append(available, c)
			}
		}
	}
	return available
}
