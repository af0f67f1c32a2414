package connectivity

import (
	"fmt"

	"github.com/arcway/jpsgrid/grid"
)

// Labels assigns every walkable cell a component id; unwalkable cells
// carry id -1. Two walkable cells share a component id if and only if
// some path of 4-directional (N/E/S/W) steps through walkable cells
// joins them.
type Labels struct {
	ids   []int
	count int
}

// ComponentOf reports the component id of pos, or ErrNotLabelled if pos
// is out of bounds. A blocked cell reports id -1, nil.
func (l *Labels) ComponentOf(pos int) (int, error) {
	if pos < 0 || pos >= len(l.ids) {
		return 0, fmt.Errorf("%w: %d", ErrNotLabelled, pos)
	}

	return l.ids[pos], nil
}

// Connected reports whether a and b carry the same non-negative
// component id. Two blocked cells (both id -1) are never connected.
func (l *Labels) Connected(a, b int) bool {
	if a < 0 || a >= len(l.ids) || b < 0 || b >= len(l.ids) {
		return false
	}

	return l.ids[a] >= 0 && l.ids[a] == l.ids[b]
}

// Count returns the number of distinct components found.
func (l *Labels) Count() int { return l.count }

// axialDirections is the 4-connected neighbor set flood fill expands
// across: N/E/S/W only, matching spec.md §4.F and the original
// flood_mark's pos±1/pos±width recursion.
var axialDirections = [4]grid.Direction{grid.North, grid.East, grid.South, grid.West}

// Label runs an iterative 4-directional flood fill over every walkable
// cell in g and returns the resulting Labels. Call it once after
// constructing or editing a grid's obstacles, before relying on
// Connected to short circuit doomed searches.
//
// Complexity: O(W*H) time and space; the explicit stack holds at most
// W*H cells, so depth is bounded by heap allocation rather than the
// call stack.
func Label(g *grid.Grid) *Labels {
	ids := make([]int, g.Len())
	for i := range ids {
		ids[i] = -1
	}

	l := &Labels{ids: ids}
	stack := make([]int, 0, 64)

	for start := 0; start < g.Len(); start++ {
		if !g.Walkable(start) || ids[start] != -1 {
			continue
		}

		id := l.count
		l.count++
		ids[start] = id
		stack = append(stack, start)

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, d := range axialDirections {
				next, ok := g.Neighbor(cur, d)
				if !ok || !g.Walkable(next) || ids[next] != -1 {
					continue
				}
				ids[next] = id
				stack = append(stack, next)
			}
		}
	}

	return l
}
