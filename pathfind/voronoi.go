package pathfind

import "github.com/basiliskbot/basilisk/game"

// SampleTiles returns a fixed, board-derived sample of strategic tiles:
// a center cross plus an even-stride grid, filtered to in-bounds cells.
// The sample is 17 tiles on a 7x7 board, 37 on 11x11 and 45 on 19x19. The sample is deterministic given board dimensions —
// it depends only on Width/Height, never on game state.
func SampleTiles(b game.Board) []game.Coord {
	cx, cy := b.Width/2, b.Height/2

	seen := make(map[game.Coord]bool, 32)
	out := make([]game.Coord, 0, 32)
	add := func(c game.Coord) {
		if !b.InBounds(c) || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	strideCrossX := maxInt(1, b.Width/8)
	for x := 0; x < b.Width; x += strideCrossX {
		add(game.Coord{X: x, Y: cy})
	}
	strideCrossY := maxInt(1, b.Height/8)
	for y := 0; y < b.Height; y += strideCrossY {
		add(game.Coord{X: cx, Y: y})
	}

	strideX := maxInt(2, b.Width/4)
	strideY := maxInt(2, b.Height/4)
	for y := strideY / 2; y < b.Height; y += strideY {
		for x := strideX / 2; x < b.Width; x += strideX {
			add(game.Coord{X: x, Y: y})
		}
	}

	return out
}

// SampledVoronoiControl counts, over SampleTiles(b), how many tiles our
// head is strictly closer to (Manhattan distance) than every opponent
// head. It returns (won, total). Manhattan distance is used without a
// passability check — exact multi-source BFS over the whole board is
// too slow for the deadline.
func SampledVoronoiControl(b game.Board, ourHead game.Coord, opponentHeads []game.Coord) (won int, total int) {
	tiles := SampleTiles(b)
	total = len(tiles)

	for _, t := range tiles {
		ourDist := ourHead.Manhattan(t)
		win := true
		for _, oh := range opponentHeads {
			if oh.Manhattan(t) <= ourDist {
				win = false
				break
			}
		}
		if win {
			won++
		}
	}
	return won, total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
