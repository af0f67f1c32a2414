package jps

import "github.com/arcway/jpsgrid/grid"

// allDirections is the natural successor set for the start node, which
// has no arrival direction (grid.NoDirection).
var allDirections = [8]grid.Direction{
	grid.North, grid.Northeast, grid.East, grid.Southeast,
	grid.South, grid.Southwest, grid.West, grid.Northwest,
}

// blockedOrOffGrid reports whether the cell one step from at in
// direction d is either outside the grid or an obstacle. The grid
// boundary is treated the same as a wall for pruning purposes, matching
// map_walkable's conflation of bounds and obstacle checks in the
// original implementation.
func blockedOrOffGrid(g *grid.Grid, at int, d grid.Direction) bool {
	cell, ok := g.Neighbor(at, d)

	return !ok || !g.Walkable(cell)
}

// cornerOK reports whether moving from at in diagonal direction d is
// permitted under the no-corner-cutting rule: at least one of the two
// axial components of d must be walkable from at. Axial directions are
// always permitted (the rule only constrains diagonal movement).
func cornerOK(g *grid.Grid, at int, d grid.Direction) bool {
	if !d.IsDiagonal() {
		return true
	}
	dx, dy := d.Delta()
	compA := grid.DirectionFromDelta(dx, 0)
	compB := grid.DirectionFromDelta(0, dy)
	cellA, okA := g.Neighbor(at, compA)
	cellB, okB := g.Neighbor(at, compB)

	return (okA && g.Walkable(cellA)) || (okB && g.Walkable(cellB))
}

// naturalDirections returns the directions a node must always expand
// toward given its arrival direction: all eight for the start node, the
// two component axials plus the diagonal itself for diagonal arrivals,
// or just the direction itself for axial arrivals.
func naturalDirections(arrived grid.Direction) []grid.Direction {
	if arrived == grid.NoDirection {
		out := make([]grid.Direction, 8)
		copy(out, allDirections[:])

		return out
	}
	if arrived.IsDiagonal() {
		return []grid.Direction{(arrived + 7) % 8, (arrived + 1) % 8, arrived}
	}

	return []grid.Direction{arrived}
}

// forcedDirections returns the forced-neighbor directions at cell `at`
// given arrival direction `arrived`, per spec §4.C:
//
//   - Axial arrival: for each perpendicular side (arrived±2), a forced
//     neighbor exists if that side is blocked but the diagonal between
//     the arrival direction and that side is walkable.
//   - Diagonal arrival: for each axial component c of arrived, the cell
//     directly behind c (the opposite of c) is checked; if it is
//     blocked and the diagonal between that behind-cell and the
//     forward axial is walkable, that diagonal is forced.
//
// The start node (grid.NoDirection) has no forced neighbors: every
// direction is already a natural successor.
func forcedDirections(g *grid.Grid, at int, arrived grid.Direction) []grid.Direction {
	if arrived == grid.NoDirection {
		return nil
	}

	var out []grid.Direction
	if !arrived.IsDiagonal() {
		adx, ady := arrived.Delta()
		sides := [2]grid.Direction{(arrived + 2) % 8, (arrived + 6) % 8}
		for _, side := range sides {
			if !blockedOrOffGrid(g, at, side) {
				continue
			}
			sdx, sdy := side.Delta()
			diag := grid.DirectionFromDelta(adx+sdx, ady+sdy)
			if cell, ok := g.Neighbor(at, diag); ok && g.Walkable(cell) {
				out = append(out, diag)
			}
		}

		return out
	}

	// Diagonal arrival: check both axial components' "behind" cells.
	dx, dy := arrived.Delta()
	behindX := grid.DirectionFromDelta(-dx, 0)
	behindY := grid.DirectionFromDelta(0, -dy)
	if blockedOrOffGrid(g, at, behindX) {
		diag := grid.DirectionFromDelta(-dx, dy)
		if cell, ok := g.Neighbor(at, diag); ok && g.Walkable(cell) {
			out = append(out, diag)
		}
	}
	if blockedOrOffGrid(g, at, behindY) {
		diag := grid.DirectionFromDelta(dx, -dy)
		if cell, ok := g.Neighbor(at, diag); ok && g.Walkable(cell) {
			out = append(out, diag)
		}
	}

	return out
}

// hasForcedNeighbor reports whether `at` (reached via `arrived`) has at
// least one forced neighbor, which makes it a jump point regardless of
// whether it is the search goal.
func hasForcedNeighbor(g *grid.Grid, at int, arrived grid.Direction) bool {
	return len(forcedDirections(g, at, arrived)) > 0
}

// successors returns the pruned, deduplicated set of directions to jump
// from `at`, given its arrival direction. This is natural ∪ forced;
// jump() is responsible for rejecting any diagonal among them that
// fails the no-corner-cutting rule.
func successors(g *grid.Grid, at int, arrived grid.Direction) []grid.Direction {
	var seen [8]bool
	var out []grid.Direction
	add := func(d grid.Direction) {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, d := range naturalDirections(arrived) {
		add(d)
	}
	for _, d := range forcedDirections(g, at, arrived) {
		add(d)
	}

	return out
}
