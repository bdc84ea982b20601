// Package engine implements the full Battlesnake ruleset — food
// consumption and growth, hazard damage, and simultaneous multi-snake
// move resolution — used by the self-play benchmarking harness
// (cmd/bench) and this package's own tests. It is deliberately kept separate
// from the rules package: the search tree only ever needs the
// simplified, no-growth simulation in rules, while a realistic self-play
// game needs the whole ruleset.
package engine

// RulesetSettings mirrors the Battlesnake engine's per-game ruleset
// knobs, carried in the game.ruleset.settings envelope field.
type RulesetSettings struct {
	FoodSpawnChance     int
	MinimumFood         int
	HazardDamagePerTurn int
}

// DefaultRulesetSettings matches the official Battlesnake server's
// standard ruleset defaults.
var DefaultRulesetSettings = RulesetSettings{
	FoodSpawnChance:     15,
	MinimumFood:         1,
	HazardDamagePerTurn: 14,
}
