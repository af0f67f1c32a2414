package los

import "github.com/arcway/jpsgrid/grid"

// SegmentWalkable reports whether the straight segment from (x1,y1) to
// (x2,y2) never passes through a blocked or out-of-grid cell. Both
// endpoints are cell-center coordinates or any fractional point on the
// grid's continuous plane; the test walks both the x-scan and the
// y-scan of the segment so a corner cell the line only grazes is still
// checked.
//
// This corrects a bug present in the original C smoothing routine: the
// y-scan bound (max_y) must come from comparing y1 and y2, not x1 and
// x2. Using the wrong axis to bound the y-scan lets the loop silently
// skip cells on segments where that axis picks the wrong endpoint
// ordering, accepting a line that actually clips an obstacle.
func SegmentWalkable(g *grid.Grid, x1, y1, x2, y2 float64) bool {
	cx1, cy1 := cellOf(x1, y1)
	cx2, cy2 := cellOf(x2, y2)
	if !g.WalkableXY(cx1, cy1) || !g.WalkableXY(cx2, cy2) {
		return false
	}

	if x1 == x2 {
		return verticalScan(g, cx1, cy1, cy2)
	}

	k := (y2 - y1) / (x2 - x1)

	minX, maxX := minInt(cx1, cx2), maxInt(cx1, cx2)
	for cx := minX + 1; cx < maxX; cx++ {
		x := float64(cx)
		y := k*(x-x1) + y1
		if !g.WalkableXY(cx, int(floor(y))) {
			return false
		}
	}

	if k == 0 {
		return true
	}

	minY, maxY := minInt(cy1, cy2), maxInt(cy1, cy2)
	for cy := minY + 1; cy < maxY; cy++ {
		y := float64(cy)
		x := (y-y1)/k + x1
		if !g.WalkableXY(int(floor(x)), cy) {
			return false
		}
	}

	return true
}

func verticalScan(g *grid.Grid, cx, cy1, cy2 int) bool {
	minY, maxY := minInt(cy1, cy2), maxInt(cy1, cy2)
	for cy := minY; cy <= maxY; cy++ {
		if !g.WalkableXY(cx, cy) {
			return false
		}
	}

	return true
}
