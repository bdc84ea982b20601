// Package diagnostics writes per-move decision records to columnar
// parquet files for offline inspection: search depth, chosen move, and
// the full heuristic breakdown, one row per /move call.
package diagnostics

// DecisionRow is a single /move decision, flattened for parquet. The
// heuristic breakdown is stored as two parallel slices rather than a
// map, since a map has no stable columnar encoding.
type DecisionRow struct {
	GameID   string  `parquet:"game_id,dict"`
	Turn     int32   `parquet:"turn"`
	YouID    string  `parquet:"you_id,dict"`
	Phase    string  `parquet:"phase,dict"`
	Move     string  `parquet:"move,dict"`
	Score    float64 `parquet:"score"`
	Depth    int32   `parquet:"depth"`
	TookMs   int64   `parquet:"took_ms"`
	Deadline bool    `parquet:"deadline_hit"`

	HeuristicNames  []string  `parquet:"heuristic_names"`
	HeuristicValues []float64 `parquet:"heuristic_values"`
}
