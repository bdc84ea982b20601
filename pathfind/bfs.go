package pathfind

import "github.com/basiliskbot/basilisk/game"

// BFSDistance returns the shortest move-count from a to b under the same
// passability rule used by flood-fill, or -1 if b is unreachable from a.
func BFSDistance(b game.Board, blocked map[game.Coord]bool, from, to game.Coord) int {
	if !b.InBounds(from) || !b.InBounds(to) {
		return -1
	}
	if from == to {
		return 0
	}

	visited := make(map[game.Coord]bool, b.Width*b.Height)
	type frame struct {
		c game.Coord
		d int
	}
	queue := make([]frame, 0, b.Width*b.Height)
	visited[from] = true
	queue = append(queue, frame{c: from, d: 0})

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, d := range game.AllDirections {
			next := cur.c.Add(d.Delta())
			if visited[next] {
				continue
			}
			if !b.InBounds(next) || blocked[next] {
				continue
			}
			if next == to {
				return cur.d + 1
			}
			visited[next] = true
			queue = append(queue, frame{c: next, d: cur.d + 1})
		}
	}
	return -1
}
