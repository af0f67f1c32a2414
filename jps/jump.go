package jps

import "github.com/arcway/jpsgrid/grid"

// jump scans from `from` in direction `d` until it finds a jump point:
// the goal, a cell with a forced neighbor, or (for diagonal scans) a
// cell whose axial offshoots contain a jump point. Returns (-1,false)
// if the scan runs off the grid or into an obstacle before finding one.
//
// The straight-line advance (spec §4.C step 5, "continue stepping") is
// an explicit loop rather than tail recursion, so a long empty corridor
// does not grow the call stack; only the diagonal-offshoot probes
// recurse, and each of those bottoms out in its own axial loop.
func jump(g *grid.Grid, from int, d grid.Direction, end int) (int, bool) {
	cur := from
	for {
		if d.IsDiagonal() && !cornerOK(g, cur, d) {
			return -1, false
		}
		next, ok := g.Neighbor(cur, d)
		if !ok || !g.Walkable(next) {
			return -1, false
		}
		if next == end {
			return next, true
		}
		if hasForcedNeighbor(g, next, d) {
			return next, true
		}
		if d.IsDiagonal() {
			c1 := (d + 7) % 8
			c2 := (d + 1) % 8
			if _, ok := jump(g, next, c1, end); ok {
				return next, true
			}
			if _, ok := jump(g, next, c2, end); ok {
				return next, true
			}
		}
		cur = next
	}
}
