package search

import (
	"hash/fnv"
	"strconv"

	"github.com/basiliskbot/basilisk/game"
)

// scoreTieWindow is how close two minimax scores must be before the
// depth-0 pre-score and then the deterministic bias are consulted.
const scoreTieWindow = 50.0

// betterCandidate reports whether a should be preferred over b:
// minimax score first (outside the tie window), then depth-0 pre-score,
// then a deterministic per-move bias so that otherwise identical
// candidates still resolve the same way every time they're compared.
func betterCandidate(a, b scored, depth0 map[game.Direction]float64, snakeID string, turn int) bool {
	if diff := a.score - b.score; diff >= scoreTieWindow || diff <= -scoreTieWindow {
		return a.score > b.score
	}

	da, aok := depth0[a.move]
	db, bok := depth0[b.move]
	if aok && bok && da != db {
		return da > db
	}

	return tieBias(snakeID, turn, a.move) > tieBias(snakeID, turn, b.move)
}

// tieBias hashes the snake ID, turn number, and candidate move together
// into a bucket in [0,100), so the bias genuinely varies per move rather
// than being a per-comparison constant with a fixed move-ordering tacked
// on. Two snakes facing an identical position get different per-move
// buckets (different snakeID), which usually but not always rank the
// moves differently: two ids can still prefer the same move (snake-a and
// snake-b at turn 42 both rank down highest). The small direction-ordered
// increment only breaks the rare case of two moves landing in the same
// bucket.
func tieBias(snakeID string, turn int, move game.Direction) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(snakeID))
	_, _ = h.Write([]byte(strconv.Itoa(turn)))
	_, _ = h.Write([]byte(move.String()))
	bucket := int(h.Sum32() % 100)
	return float64(bucket)/100.0 + directionIncrement(move)
}

func directionIncrement(d game.Direction) float64 {
	switch d {
	case game.Up:
		return 0.0001
	case game.Down:
		return 0.0002
	case game.Left:
		return 0.0003
	case game.Right:
		return 0.0004
	default:
		return 0
	}
}
