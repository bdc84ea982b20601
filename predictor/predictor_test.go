package predictor

import (
	"math"
	"testing"

	"github.com/basiliskbot/basilisk/game"
)

func TestPredict_NoSafeMovesReportsForced(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  3,
			Height: 3,
			Snakes: []game.Snake{
				{ID: "me", Health: 100, Body: []game.Coord{{X: 1, Y: 1}}},
				// The tail (1,0) is stacked, as after eating, so it does not
				// vacate and the opponent's only in-bounds exit stays blocked.
				{ID: "opp", Health: 100, Body: []game.Coord{
					{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0},
				}},
			},
		},
	}
	got := Predict(state, "opp")
	if !math.IsInf(got.Score, -1) {
		t.Fatalf("expected -Inf score when forced, got %.1f", got.Score)
	}
}

func TestPredict_PicksASafeMoveWhenAvailable(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 100, Body: []game.Coord{{X: 0, Y: 0}}},
				{ID: "opp", Health: 100, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			},
		},
	}
	got := Predict(state, "opp")
	if math.IsInf(got.Score, -1) {
		t.Fatalf("expected a real move to be chosen on an open board")
	}
	switch got.Move {
	case game.Up, game.Down, game.Left, game.Right:
	default:
		t.Fatalf("unexpected move %v", got.Move)
	}
}
