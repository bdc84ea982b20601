package engine

import (
	"testing"

	"github.com/basiliskbot/basilisk/game"
)

func TestStep_EatingFoodGrowsAndRestoresHealth(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Food: []game.Coord{{X: 5, Y: 6}},
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"a": game.Up}, DefaultRulesetSettings)
	a := next.Board.SnakeByID("a")
	if a == nil {
		t.Fatalf("snake a should have survived")
	}
	if a.Health != 100 {
		t.Fatalf("health after eating = %d want 100", a.Health)
	}
	if a.Length() != 3 {
		t.Fatalf("length after eating = %d want 3 (grew)", a.Length())
	}
	if len(next.Board.Food) != 0 {
		t.Fatalf("food should have been consumed")
	}
}

func TestStep_NoFoodShrinksTailAndDecrementsHealth(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"a": game.Up}, DefaultRulesetSettings)
	a := next.Board.SnakeByID("a")
	if a.Health != 49 {
		t.Fatalf("health = %d want 49", a.Health)
	}
	if a.Length() != 3 {
		t.Fatalf("length = %d want unchanged 3", a.Length())
	}
}

func TestStep_HazardDamageStacksWithTurnCost(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Hazards: []game.Coord{{X: 5, Y: 6}},
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"a": game.Up}, RulesetSettings{HazardDamagePerTurn: 14})
	a := next.Board.SnakeByID("a")
	if a.Health != 50-1-14 {
		t.Fatalf("hazard health = %d want %d", a.Health, 50-1-14)
	}
}

func TestStep_WallCollisionKillsSnake(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 5, Height: 5,
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 4, Y: 4}, {X: 3, Y: 4}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"a": game.Right}, DefaultRulesetSettings)
	if next.Board.SnakeByID("a") != nil {
		t.Fatalf("expected snake a to die hitting the wall")
	}
}

func TestStep_HeadToHeadLongerSnakeWins(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Snakes: []game.Snake{
				{ID: "long", Health: 50, Body: []game.Coord{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}},
				{ID: "short", Health: 50, Body: []game.Coord{{X: 6, Y: 5}, {X: 7, Y: 5}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"long": game.Right, "short": game.Left}, DefaultRulesetSettings)
	if next.Board.SnakeByID("long") == nil {
		t.Fatalf("longer snake should survive a head-to-head")
	}
	if next.Board.SnakeByID("short") != nil {
		t.Fatalf("shorter snake should die in a head-to-head")
	}
}

func TestStep_EqualLengthHeadToHeadBothDie(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 4, Y: 5}, {X: 3, Y: 5}}},
				{ID: "b", Health: 50, Body: []game.Coord{{X: 6, Y: 5}, {X: 7, Y: 5}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{"a": game.Right, "b": game.Left}, DefaultRulesetSettings)
	if len(next.Board.Snakes) != 0 {
		t.Fatalf("expected both snakes to die, got %d survivors", len(next.Board.Snakes))
	}
}

func TestStep_MissingMoveKillsSnake(t *testing.T) {
	state := &game.GameState{
		Turn: 0,
		Board: game.Board{
			Width: 11, Height: 11,
			Snakes: []game.Snake{
				{ID: "a", Health: 50, Body: []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}}},
			},
		},
	}
	next := Step(state, map[string]game.Direction{}, DefaultRulesetSettings)
	if next.Board.SnakeByID("a") != nil {
		t.Fatalf("expected snake with no move to die")
	}
}
