package heuristic

// base returns the fully-populated set of safety weights and default
// thresholds shared by every profile; phase profiles start here and
// override only what the phase changes.
func base(name string) WeightProfile {
	return WeightProfile{
		Name: name,

		EnableFloodFill:           true,
		EnableAdjacentHeadCaution: true,
		EnableHeadCollisionDanger: true,
		EnableCenterControl:       true,
		EnableFoodUrgency:         true,
		EnableFoodSafetyPenalty:   true,
		EnableTailChase:           true,
		EnableVoronoi:             true,
		EnableCompetitiveLength:   true,
		EnableHazardCaution:       true,

		WallPenalty:              -2000,
		SelfCollisionPenalty:     -2000,
		HeadToHeadWinBonus:       300,
		HeadToHeadLossPenalty:    -1500,
		FloodFillWeight:          1.0,
		AdjacentHeadWinBonus:     200,
		AdjacentHeadLossPenalty:  400,
		HeadCollisionWinBonus:    150,
		HeadCollisionLossPenalty: 900,
		CenterControlBonus:       15,
		WallTouchPenalty:         5,
		FoodUrgencyWeight:        120,
		FoodSafetyPenalty:        60,
		TailChaseWeight:          40,
		VoronoiWeight:            80,
		CompetitiveLengthWeight:  30,
		CompetitiveCriticalBonus: 90,
		HazardPenalty:            25,

		HealthThreshold:           35,
		EarlyTurnThreshold:        75,
		ConstrainedSpaceThreshold: 20,
		LengthAdvantageCutoff:     2,
	}
}

// Default is the base profile with no phase adjustments. It is used
// wherever a caller wants the full heuristic set without phase
// detection, e.g. in tests.
func Default() WeightProfile {
	return base("default")
}

// Early favors food and growth; Voronoi is disabled since territorial
// control barely matters before opponents have grown.
func Early() WeightProfile {
	p := base("early")
	p.EnableVoronoi = false
	p.FoodUrgencyWeight = 160
	p.HealthThreshold = 60
	p.CompetitiveLengthWeight = 45
	return p
}

// Mid emphasises positioning and Voronoi control once the board is
// crowded; food is pursued only when hungry.
func Mid() WeightProfile {
	p := base("mid")
	p.VoronoiWeight = 130
	p.CenterControlBonus = 25
	p.HealthThreshold = 30
	return p
}

// Late is the survival profile: high reachable-area weight, high
// tail-chase weight, competitive length pursuit turned off entirely.
func Late() WeightProfile {
	p := base("late")
	p.FloodFillWeight = 2.2
	p.TailChaseWeight = 90
	p.EnableCompetitiveLength = false
	p.ConstrainedSpaceThreshold = 30
	return p
}

// Cheap disables the expensive/strategic heuristics (flood-fill,
// Voronoi, tail-chase, center control, competitive length) and is used
// as the search's deadline-escape evaluator.
func Cheap() WeightProfile {
	p := base("cheap")
	p.EnableFloodFill = false
	p.EnableVoronoi = false
	p.EnableTailChase = false
	p.EnableCenterControl = false
	p.EnableCompetitiveLength = false
	return p
}

// PredictorProfile is the fixed cheap profile used by the opponent
// predictor: safeties on, flood-fill on, food urgency on with a
// slightly higher threshold, a strong anti-collision-with-us term
// (modeled as a stronger head-collision-loss penalty), all other
// strategic heuristics off.
func PredictorProfile() WeightProfile {
	p := base("predictor")
	p.EnableVoronoi = false
	p.EnableCenterControl = false
	p.EnableTailChase = false
	p.EnableCompetitiveLength = false
	p.EnableFoodSafetyPenalty = false
	p.HealthThreshold = 45
	p.HeadCollisionLossPenalty = 1400
	p.AdjacentHeadLossPenalty = 700
	return p
}

// ApplyFoodCompetition rewrites a profile when food is scarce and
// contested: disables Voronoi and center control, raises food and
// length weights, raises the health threshold so urgency kicks in
// earlier.
func ApplyFoodCompetition(p WeightProfile) WeightProfile {
	p.Name += "+food-competition"
	p.EnableVoronoi = false
	p.EnableCenterControl = false
	p.FoodUrgencyWeight *= 1.6
	p.CompetitiveLengthWeight *= 1.6
	p.CompetitiveCriticalBonus *= 1.4
	p.HealthThreshold += 15
	return p
}
