package los

import (
	"testing"

	"github.com/arcway/jpsgrid/grid"
)

func TestSegmentWalkable_OpenDiagonal(t *testing.T) {
	g, _ := grid.New(5, 5)
	if !SegmentWalkable(g, 0.5, 0.5, 4.5, 4.5) {
		t.Error("expected an open diagonal to be walkable")
	}
}

func TestSegmentWalkable_BlockedEndpoint(t *testing.T) {
	g, _ := grid.New(5, 5)
	_ = g.SetBlocked(4, 4)
	if SegmentWalkable(g, 0.5, 0.5, 4.5, 4.5) {
		t.Error("expected a segment ending on a blocked cell to be rejected")
	}
}

func TestSegmentWalkable_VerticalLine(t *testing.T) {
	g, _ := grid.New(3, 5)
	_ = g.SetBlocked(1, 2)
	if SegmentWalkable(g, 1.5, 0.5, 1.5, 4.5) {
		t.Error("expected a vertical line through a blocked cell to be rejected")
	}
	if !SegmentWalkable(g, 0.5, 0.5, 0.5, 4.5) {
		t.Error("expected a clear vertical line to be walkable")
	}
}

func TestSegmentWalkable_HorizontalLine(t *testing.T) {
	g, _ := grid.New(5, 3)
	_ = g.SetBlocked(2, 1)
	if SegmentWalkable(g, 0.5, 1.5, 4.5, 1.5) {
		t.Error("expected a horizontal line through a blocked cell to be rejected")
	}
}

func TestSegmentWalkable_GrazedCorner(t *testing.T) {
	// A shallow line from (0.5,0.9) to (4.5,0.1) stays inside row 0 and
	// passes through the blocked cell (2,0); the x-scan samples that
	// cell at x=2 and must reject the line.
	g, _ := grid.New(5, 2)
	_ = g.SetBlocked(2, 0)
	if SegmentWalkable(g, 0.5, 0.9, 4.5, 0.1) {
		t.Error("expected the line to be rejected when it clips a blocked cell on the x-scan")
	}
}

func TestSegmentWalkable_OutOfGridEndpoint(t *testing.T) {
	g, _ := grid.New(3, 3)
	if SegmentWalkable(g, 0.5, 0.5, 10.5, 10.5) {
		t.Error("expected an out-of-grid endpoint to be rejected")
	}
}
