package los

import "github.com/arcway/jpsgrid/grid"

// Smooth reduces a waypoint sequence (as produced by pathbuilder.Build)
// to the shortest sub-sequence reaching the same endpoints without
// crossing any obstacle. Starting from the last waypoint, it greedily
// looks for the smallest index j whose waypoint is mutually visible
// with the current anchor, splicing out everything in between, then
// continues the search from j. Every consecutive pair in the input is
// visible by construction (jps only links cells it walked a clear
// straight line between), so the inner scan always finds some earlier
// visible anchor and the reduction always terminates.
//
// Complexity: O(n^2) worst case over n waypoints.
func Smooth(g *grid.Grid, waypoints []int) []int {
	if len(waypoints) <= 2 {
		out := make([]int, len(waypoints))
		copy(out, waypoints)

		return out
	}

	reversed := make([]int, 0, len(waypoints))
	i := len(waypoints) - 1
	reversed = append(reversed, waypoints[i])

	for i > 0 {
		j := 0
		for j < i-1 {
			if visible(g, waypoints, j, i) {
				break
			}
			j++
		}
		reversed = append(reversed, waypoints[j])
		i = j
	}

	out := make([]int, len(reversed))
	for k, p := range reversed {
		out[len(reversed)-1-k] = p
	}

	return out
}

func visible(g *grid.Grid, waypoints []int, j, i int) bool {
	x1, y1 := g.XY(waypoints[j])
	x2, y2 := g.XY(waypoints[i])

	return SegmentWalkable(g, float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
}
