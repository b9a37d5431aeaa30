package maze

import "github.com/gammazero/deque"

// IsSolvable reports whether goal can be reached from start by moving
// up, down, left or right through Path cells only.
//
// It runs a breadth-first search with a FIFO frontier and a visited set
// indexed by cell, so both time and memory are O(width*height).
func IsSolvable(g *Grid, start, goal Point) bool {
	if g == nil || !g.IsPath(start) || !g.IsPath(goal) {
		return false
	}

	visited := make([]bool, g.width*g.height)
	visited[g.index(start)] = true

	var frontier deque.Deque[Point]
	frontier.PushBack(start)

	for frontier.Len() > 0 {
		cur := frontier.PopFront()
		if cur == goal {
			return true
		}

		for _, d := range Directions {
			next := cur.Step(d)
			if !g.IsPath(next) {
				continue
			}
			i := g.index(next)
			if visited[i] {
				continue
			}
			visited[i] = true
			frontier.PushBack(next)
		}
	}

	return false
}
