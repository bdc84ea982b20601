package heuristic

import (
	"github.com/basiliskbot/basilisk/game"
	"github.com/basiliskbot/basilisk/pathfind"
	"github.com/basiliskbot/basilisk/rules"
)

// Breakdown is the per-heuristic contribution to a score, exposed for
// diagnostics. Score is the sum of Terms.
type Breakdown struct {
	Score float64
	Terms map[string]float64
}

// evalContext holds everything a single Evaluate call computes once and
// shares across heuristics — most importantly the flood-fill count from
// our own head, which must be computed at most once per evaluated
// state.
type evalContext struct {
	state   *game.GameState
	profile WeightProfile
	you     *game.Snake
	blocked map[game.Coord]bool

	floodFilled bool
	floodCount  int
}

func (c *evalContext) ourFloodFill() int {
	if c.floodFilled {
		return c.floodCount
	}
	c.floodFilled = true
	if c.you == nil || len(c.you.Body) == 0 || !c.state.Board.InBounds(c.you.Head()) {
		c.floodCount = 0
		return 0
	}
	c.floodCount = pathfind.FloodFillCount(c.state.Board, c.blocked, c.you.Head())
	return c.floodCount
}

type heuristicEntry struct {
	name    string
	compute func(c *evalContext) float64
}

// Evaluate returns score = Σ (enabled heuristic_i × weight_i) plus a
// detailed breakdown for diagnostics. It is a pure function of state
// and profile: no I/O, no shared mutable state, safe to call from any
// search node.
func Evaluate(state *game.GameState, profile WeightProfile) Breakdown {
	you := state.You()
	c := &evalContext{
		state:   state,
		profile: profile,
		you:     you,
		blocked: rules.BlockedCells(state.Board),
	}

	entries := []heuristicEntry{
		{"safety_wall", wallSafety},
		{"safety_self", selfSafety},
		{"safety_head_to_head", headToHeadSafety},
		{"reachable_area", reachableArea},
		{"adjacent_head_caution", adjacentHeadCaution},
		{"head_collision_danger", headCollisionDanger},
		{"center_control", centerControl},
		{"food_urgency", foodUrgency},
		{"food_safety_penalty", foodSafetyPenalty},
		{"tail_chase", tailChase},
		{"voronoi_control", voronoiControl},
		{"competitive_length", competitiveLength},
		{"hazard_caution", hazardCaution},
	}

	out := Breakdown{Terms: make(map[string]float64, len(entries))}
	for _, e := range entries {
		v := e.compute(c)
		out.Terms[e.name] = v
		out.Score += v
	}
	return out
}

func wallSafety(c *evalContext) float64 {
	if c.you == nil || len(c.you.Body) == 0 {
		return c.profile.WallPenalty
	}
	if !c.state.Board.InBounds(c.you.Head()) {
		return c.profile.WallPenalty
	}
	return 0
}

func selfSafety(c *evalContext) float64 {
	if c.you == nil || len(c.you.Body) < 3 {
		return 0
	}
	head := c.you.Head()
	// Non-tail interior segments: everything except the head itself and
	// the tail, which vacates and is therefore passable.
	interior := c.you.Body[1 : len(c.you.Body)-1]
	for _, seg := range interior {
		if seg == head {
			return c.profile.SelfCollisionPenalty
		}
	}
	return 0
}

func headToHeadSafety(c *evalContext) float64 {
	if c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	head := c.you.Head()
	total := 0.0
	for _, opp := range c.state.Opponents() {
		if len(opp.Body) == 0 || opp.Head() != head {
			continue
		}
		if c.you.Length() > opp.Length() {
			total += c.profile.HeadToHeadWinBonus
		} else {
			total += c.profile.HeadToHeadLossPenalty
		}
	}
	return total
}

func reachableArea(c *evalContext) float64 {
	if !c.profile.EnableFloodFill {
		return 0
	}
	return float64(c.ourFloodFill()) * c.profile.FloodFillWeight
}

func adjacentHeadCaution(c *evalContext) float64 {
	if !c.profile.EnableAdjacentHeadCaution || c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	head := c.you.Head()
	total := 0.0
	for _, opp := range c.state.Opponents() {
		if len(opp.Body) == 0 || head.Manhattan(opp.Head()) != 1 {
			continue
		}
		if c.you.Length() > opp.Length() {
			total += c.profile.AdjacentHeadWinBonus
		} else {
			total -= c.profile.AdjacentHeadLossPenalty
		}
	}
	return total
}

func headCollisionDanger(c *evalContext) float64 {
	if !c.profile.EnableHeadCollisionDanger || c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	head := c.you.Head()
	total := 0.0
	for _, opp := range c.state.Opponents() {
		if len(opp.Body) == 0 {
			continue
		}
		oppHead := opp.Head()
		for _, d := range game.AllDirections {
			next := oppHead.Add(d.Delta())
			if !c.state.Board.InBounds(next) || next != head {
				continue
			}
			if c.you.Length() > opp.Length() {
				total += c.profile.HeadCollisionWinBonus
			} else {
				total -= c.profile.HeadCollisionLossPenalty
			}
			break
		}
	}
	return total
}

func centerControl(c *evalContext) float64 {
	if !c.profile.EnableCenterControl || c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	head := c.you.Head()
	early := c.state.Turn <= c.profile.EarlyTurnThreshold
	multiOpponent := len(c.state.Opponents()) >= 2

	if early && multiOpponent {
		cx, cy := c.state.Board.Width/2, c.state.Board.Height/2
		if absInt(head.X-cx) <= 2 && absInt(head.Y-cy) <= 2 {
			return c.profile.CenterControlBonus
		}
		return 0
	}

	if head.X == 0 || head.X == c.state.Board.Width-1 || head.Y == 0 || head.Y == c.state.Board.Height-1 {
		return -c.profile.WallTouchPenalty
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func nearestFoodDistance(c *evalContext) int {
	if c.you == nil || len(c.you.Body) == 0 || len(c.state.Board.Food) == 0 {
		return -1
	}
	head := c.you.Head()
	best := -1
	for _, f := range c.state.Board.Food {
		d := pathfind.BFSDistance(c.state.Board, c.blocked, head, f)
		if d < 0 {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func foodUrgency(c *evalContext) float64 {
	if !c.profile.EnableFoodUrgency || c.you == nil {
		return 0
	}
	if c.you.Health >= c.profile.HealthThreshold || len(c.state.Board.Food) == 0 {
		return 0
	}
	d := nearestFoodDistance(c)
	if d < 0 {
		return 0
	}
	return c.profile.FoodUrgencyWeight * (1.0 / (1.0 + float64(d)))
}

func foodSafetyPenalty(c *evalContext) float64 {
	if !c.profile.EnableFoodSafetyPenalty || c.you == nil {
		return 0
	}
	if c.you.Health >= c.profile.HealthThreshold || len(c.state.Board.Food) == 0 {
		return 0
	}
	head := c.you.Head()
	var nearest game.Coord
	best := -1
	for _, f := range c.state.Board.Food {
		d := head.Manhattan(f)
		if best < 0 || d < best {
			best = d
			nearest = f
		}
	}
	if best < 0 {
		return 0
	}
	ourArea := c.ourFloodFill()
	foodArea := pathfind.FloodFillCount(c.state.Board, c.blocked, nearest)
	if ourArea > 0 && foodArea*2 < ourArea {
		return -c.profile.FoodSafetyPenalty
	}
	return 0
}

func tailChase(c *evalContext) float64 {
	if !c.profile.EnableTailChase || c.you == nil || len(c.you.Body) < 2 {
		return 0
	}
	if c.you.Health < c.profile.HealthThreshold {
		return 0
	}
	if c.ourFloodFill() >= c.profile.ConstrainedSpaceThreshold {
		return 0
	}
	d := pathfind.BFSDistance(c.state.Board, c.blocked, c.you.Head(), c.you.Tail())
	if d < 0 {
		return 0
	}
	return c.profile.TailChaseWeight * (1.0 / (1.0 + float64(d)))
}

func voronoiControl(c *evalContext) float64 {
	if !c.profile.EnableVoronoi || c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	opponents := c.state.Opponents()
	heads := make([]game.Coord, 0, len(opponents))
	for _, opp := range opponents {
		if len(opp.Body) > 0 {
			heads = append(heads, opp.Head())
		}
	}
	won, total := pathfind.SampledVoronoiControl(c.state.Board, c.you.Head(), heads)
	if total == 0 {
		return 0
	}
	return (float64(won) / float64(total)) * c.profile.VoronoiWeight
}

func competitiveLength(c *evalContext) float64 {
	if !c.profile.EnableCompetitiveLength || c.you == nil {
		return 0
	}
	if c.you.Health < c.profile.HealthThreshold || len(c.state.Board.Food) == 0 {
		return 0
	}

	longestOpp := 0
	for _, opp := range c.state.Opponents() {
		if opp.Length() > longestOpp {
			longestOpp = opp.Length()
		}
	}
	lengthDiff := c.you.Length() - longestOpp
	if lengthDiff >= c.profile.LengthAdvantageCutoff {
		return 0
	}

	d := nearestFoodDistance(c)
	if d < 0 {
		return 0
	}
	weight := c.profile.CompetitiveLengthWeight
	if lengthDiff < 0 {
		weight = c.profile.CompetitiveCriticalBonus
	}
	return weight * (1.0 / (1.0 + float64(d)))
}

// hazardCaution is a minor open-space penalty for sitting on a hazard
// tile. Hazard tiles are still legal to move into — there is no
// separate blocked/hazard distinction — so this is purely additive
// scoring, not a change to the safe-move contract.
func hazardCaution(c *evalContext) float64 {
	if !c.profile.EnableHazardCaution || c.you == nil || len(c.you.Body) == 0 {
		return 0
	}
	if c.state.Board.IsHazard(c.you.Head()) {
		return -c.profile.HazardPenalty
	}
	return 0
}
