package heuristic

import (
	"testing"

	"github.com/basiliskbot/basilisk/game"
)

func TestEvaluate_WallViolationIsSeverelyNegative(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 90, Body: []game.Coord{{X: 11, Y: 5}, {X: 10, Y: 5}, {X: 9, Y: 5}}},
			},
		},
	}
	got := Evaluate(state, Default())
	if got.Score > -1000 {
		t.Fatalf("wall violation score=%.1f want <= -1000", got.Score)
	}
}

func TestEvaluate_SelfCollisionIsSeverelyNegative(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 90, Body: []game.Coord{
					{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6},
				}},
			},
		},
	}
	got := Evaluate(state, Default())
	if got.Score > -1000 {
		t.Fatalf("self collision score=%.1f want <= -1000", got.Score)
	}
}

func TestEvaluate_LosingHeadToHeadIsSeverelyNegative(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 90, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}}},
				{ID: "opp", Health: 90, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}},
			},
		},
	}
	got := Evaluate(state, Default())
	if got.Score > -1000 {
		t.Fatalf("losing head-to-head score=%.1f want <= -1000", got.Score)
	}
}

func TestEvaluate_WinningHeadToHeadIsPositiveContribution(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 90, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
				{ID: "opp", Health: 90, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 6}}},
			},
		},
	}
	got := Evaluate(state, Default())
	if got.Terms["safety_head_to_head"] <= 0 {
		t.Fatalf("winning head-to-head term=%.1f want > 0", got.Terms["safety_head_to_head"])
	}
}

func TestEvaluate_SafeOpenSpaceMoveIsPositive(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 90, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			},
		},
	}
	got := Evaluate(state, Default())
	if got.Score <= 0 {
		t.Fatalf("open space score=%.1f want > 0", got.Score)
	}
}

func TestDetectPhase_MatchesSpecTable(t *testing.T) {
	cases := []struct {
		turn, opponents int
		density         float64
		want            Phase
	}{
		{10, 4, 15, PhaseEarly},
		{100, 3, 30, PhaseMid},
		{50, 2, 25, PhaseLate},
		{90, 4, 45, PhaseLate},
	}
	for _, c := range cases {
		got := DetectPhase(c.turn, c.opponents, c.density)
		if got != c.want {
			t.Fatalf("DetectPhase(%d,%d,%.0f)=%s want %s", c.turn, c.opponents, c.density, got, c.want)
		}
	}
}

func TestFloodFillReuse_ComputedOncePerEvaluation(t *testing.T) {
	state := &game.GameState{
		Turn:  0,
		YouID: "me",
		Board: game.Board{
			Width:  11,
			Height: 11,
			Snakes: []game.Snake{
				{ID: "me", Health: 20, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}}},
			},
			Food: []game.Coord{{X: 6, Y: 5}},
		},
	}
	c := &evalContext{state: state, profile: Default(), you: state.You(), blocked: map[game.Coord]bool{}}
	first := c.ourFloodFill()
	second := c.ourFloodFill()
	if first != second {
		t.Fatalf("flood fill cache mismatch: %d vs %d", first, second)
	}
	if !c.floodFilled {
		t.Fatalf("expected floodFilled flag to be set after first call")
	}
}
