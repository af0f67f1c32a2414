package pathbuilder

import "github.com/arcway/jpsgrid/grid"

// Build walks comeFrom from end back to start, emitting every jump
// point in start-to-end order with a mid-jump bend point spliced in
// wherever a parent link compresses a diagonal-then-axial run into one
// step. If start == end, it returns the single-element path [start].
//
// comeFrom must be the parent array produced by a successful
// jps.Searcher.Search(g, start, end) call; Build does not itself
// validate that end is reachable from start.
func Build(g *grid.Grid, comeFrom []int, start, end int) []int {
	if start == end {
		return []int{start}
	}

	// Walk end -> start, collecting jump points (and any bend points)
	// in reverse (end-to-start) order, then flip and prepend start.
	var reversed []int
	cur := end
	for cur != start {
		reversed = append(reversed, cur)
		par := comeFrom[cur]
		if bend, ok := midJumpBend(g, cur, par); ok {
			reversed = append(reversed, bend)
		}
		cur = par
	}

	out := make([]int, 0, len(reversed)+1)
	out = append(out, start)
	for i := len(reversed) - 1; i >= 0; i-- {
		out = append(out, reversed[i])
	}

	return out
}

// midJumpBend computes the bend point between a child and its
// jump-point parent, per spec §4.D: when (dx,dy) between cur and par is
// neither purely axial (one of dx,dy zero) nor a perfect diagonal
// (|dx| == |dy|), the true turning point is span = min(|dx|,|dy|) steps
// diagonally from par toward cur, where the signs come from cur - par.
func midJumpBend(g *grid.Grid, cur, par int) (bend int, ok bool) {
	cx, cy := g.XY(cur)
	px, py := g.XY(par)
	dx, dy := cx-px, cy-py

	if dx == 0 || dy == 0 {
		return 0, false
	}

	adx, ady := abs(dx), abs(dy)
	if adx == ady {
		return 0, false
	}

	span := adx
	if ady < adx {
		span = ady
	}

	bx := px + sign(dx)*span
	by := py + sign(dy)*span

	return g.Pos(bx, by), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}

	return 1
}
