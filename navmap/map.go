package navmap

import (
	"fmt"
	"strings"

	"github.com/arcway/jpsgrid/connectivity"
	"github.com/arcway/jpsgrid/grid"
	"github.com/arcway/jpsgrid/jps"
	"github.com/arcway/jpsgrid/los"
	"github.com/arcway/jpsgrid/pathbuilder"
)

// Map is the opaque external handle: a grid plus the search scratch
// that plans over it, and the optional connectivity labels MarkConnected
// populates.
type Map struct {
	g        *grid.Grid
	searcher *jps.Searcher
	labels   *connectivity.Labels
	lastPath []int // last reconstructed path, for DumpConnected's overlay
	opts     Options
}

// New constructs a Map of the given dimensions, optionally pre-blocking
// the cells in obstacles. Returns ErrConfigInvalid if W or H <= 0, or if
// any obstacle coordinate lies outside the grid.
func New(width, height int, obstacles []GridPoint, opts ...Option) (*Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("navmap: new: %w", ErrConfigInvalid)
	}

	m := &Map{
		g:        g,
		searcher: jps.NewSearcher(g.Len()),
		opts:     o,
	}

	for _, p := range obstacles {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("navmap: new: obstacle (%d,%d): %w", p.X, p.Y, ErrConfigInvalid)
		}
		_ = g.SetBlocked(p.X, p.Y)
	}

	if o.AutoConnect {
		m.MarkConnected()
	}

	return m, nil
}

// AddBlock marks (x,y) as an obstacle. Returns ErrOutOfBounds if (x,y)
// lies outside the map. Invalidates any previously computed
// connectivity labels; call MarkConnected again before relying on them.
func (m *Map) AddBlock(x, y int) error {
	if err := m.g.SetBlocked(x, y); err != nil {
		return fmt.Errorf("navmap: add block: %w", ErrOutOfBounds)
	}
	m.labels = nil

	return nil
}

// AddBlockset marks every cell in pts as an obstacle. It validates all
// points before mutating the grid: either every cell is blocked, or
// none are and ErrOutOfBounds is returned for the first offending point.
func (m *Map) AddBlockset(pts []GridPoint) error {
	for _, p := range pts {
		if !m.g.InBounds(p.X, p.Y) {
			return fmt.Errorf("navmap: add blockset: (%d,%d): %w", p.X, p.Y, ErrOutOfBounds)
		}
	}
	for _, p := range pts {
		_ = m.g.SetBlocked(p.X, p.Y)
	}
	m.labels = nil

	return nil
}

// ClearBlock removes the obstacle at (x,y), if any. Returns
// ErrOutOfBounds if (x,y) lies outside the map.
func (m *Map) ClearBlock(x, y int) error {
	if err := m.g.ClearBlocked(x, y); err != nil {
		return fmt.Errorf("navmap: clear block: %w", ErrOutOfBounds)
	}
	m.labels = nil

	return nil
}

// ClearAllBlocks removes every obstacle from the map.
func (m *Map) ClearAllBlocks() {
	m.g.ClearAllBlocked()
	m.labels = nil
}

// MarkConnected computes (or refreshes) connectivity component labels
// over the current obstacle layout. FindPath and FindPathByGrid consult
// these labels, when present, to short-circuit a doomed search.
func (m *Map) MarkConnected() {
	m.labels = connectivity.Label(m.g)
}

// FindPathByGrid finds a path between integer grid cells, returning the
// smoothed waypoint list as integer GridPoints, or an empty slice if no
// path exists. Returns ErrOutOfBounds or ErrBlockedEndpoint for invalid
// endpoints.
func (m *Map) FindPathByGrid(sx, sy, ex, ey int) ([]GridPoint, error) {
	start, end, err := m.resolveEndpoints(sx, sy, ex, ey)
	if err != nil {
		return nil, err
	}

	path, ok := m.search(start, end)
	if !ok {
		return []GridPoint{}, nil
	}

	out := make([]GridPoint, len(path))
	for i, pos := range path {
		x, y := m.g.XY(pos)
		out[i] = GridPoint{X: x, Y: y}
	}

	return out, nil
}

// FindPath finds a path between fractional endpoints. The result begins
// with exactly (sx,sy) and ends with exactly (ex,ey); interior waypoints
// are integer cell coordinates from the smoothed grid path. If the
// fractional endpoint is not LOS-visible from the nearest interior
// waypoint, an integer bend point is inserted per spec.md §6.
func (m *Map) FindPath(sx, sy, ex, ey float64) ([]Point, error) {
	scx, scy := int(sx), int(sy)
	ecx, ecy := int(ex), int(ey)
	start, end, err := m.resolveEndpoints(scx, scy, ecx, ecy)
	if err != nil {
		return nil, err
	}

	path, ok := m.search(start, end)
	if !ok {
		return []Point{}, nil
	}

	interior := make([]Point, len(path))
	for i, pos := range path {
		x, y := m.g.XY(pos)
		interior[i] = Point{X: float64(x), Y: float64(y)}
	}

	out := make([]Point, 0, len(interior)+4)
	out = append(out, Point{X: sx, Y: sy})
	first, last := interior[0], interior[len(interior)-1]
	if !los.SegmentWalkable(m.g, sx, sy, first.X, first.Y) {
		out = append(out, bendToward(m.g, sx, sy, first))
	}
	out = append(out, interior...)
	if !los.SegmentWalkable(m.g, last.X, last.Y, ex, ey) {
		out = append(out, bendToward(m.g, ex, ey, last))
	}
	out = append(out, Point{X: ex, Y: ey})

	return out, nil
}

// bendToward computes an integer bend point between a fractional
// endpoint and the interior waypoint it failed to see directly: floor
// or ceiling of the endpoint in each axis, chosen by the direction of
// the segment toward the interior point.
func bendToward(g *grid.Grid, ex, ey float64, toward Point) Point {
	bx := int(ex)
	if toward.X >= ex {
		bx = int(ex) + 1
	}
	by := int(ey)
	if toward.Y >= ey {
		by = int(ey) + 1
	}
	if bx < 0 {
		bx = 0
	}
	if bx >= g.Width {
		bx = g.Width - 1
	}
	if by < 0 {
		by = 0
	}
	if by >= g.Height {
		by = g.Height - 1
	}

	return Point{X: float64(bx), Y: float64(by)}
}

// CheckLineWalkable reports whether the straight segment between two
// fractional points never crosses a blocked or out-of-grid cell.
func (m *Map) CheckLineWalkable(x1, y1, x2, y2 float64) bool {
	return los.SegmentWalkable(m.g, x1, y1, x2, y2)
}

// search runs the jump-point search and, on success, smooths and
// records the result for DumpConnected's overlay.
func (m *Map) search(start, end int) ([]int, bool) {
	if m.labels != nil {
		c1, _ := m.labels.ComponentOf(start)
		c2, _ := m.labels.ComponentOf(end)
		if c1 < 0 || c2 < 0 || c1 != c2 {
			return nil, false
		}
	}

	comeFrom, found := m.searcher.Search(m.g, start, end)
	if !found {
		return nil, false
	}

	raw := pathbuilder.Build(m.g, comeFrom, start, end)
	smoothed := los.Smooth(m.g, raw)
	m.lastPath = smoothed

	return smoothed, true
}

// resolveEndpoints validates (sx,sy) and (ex,ey) against the grid's
// bounds and obstacle layout and converts them to cell positions.
func (m *Map) resolveEndpoints(sx, sy, ex, ey int) (start, end int, err error) {
	if !m.g.InBounds(sx, sy) || !m.g.InBounds(ex, ey) {
		return 0, 0, fmt.Errorf("navmap: find path: %w", ErrOutOfBounds)
	}
	if !m.g.WalkableXY(sx, sy) || !m.g.WalkableXY(ex, ey) {
		return 0, 0, fmt.Errorf("navmap: find path: %w", ErrBlockedEndpoint)
	}

	return m.g.Pos(sx, sy), m.g.Pos(ex, ey), nil
}

// Dump renders the map as a fixed-width ASCII grid: '*' for obstacles,
// '.' for walkable cells.
func (m *Map) Dump() string {
	var b strings.Builder
	for y := 0; y < m.g.Height; y++ {
		for x := 0; x < m.g.Width; x++ {
			if m.g.Blocked(m.g.Pos(x, y)) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// DumpConnected renders the map the way Dump does, but overlays '0' on
// each waypoint cell of the most recently found (smoothed) path. Cells
// the path crosses between two waypoints are not marked.
func (m *Map) DumpConnected() string {
	visited := make(map[int]bool, len(m.lastPath))
	for _, pos := range m.lastPath {
		visited[pos] = true
	}

	var b strings.Builder
	for y := 0; y < m.g.Height; y++ {
		for x := 0; x < m.g.Width; x++ {
			pos := m.g.Pos(x, y)
			switch {
			case visited[pos]:
				b.WriteByte('0')
			case m.g.Blocked(pos):
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
