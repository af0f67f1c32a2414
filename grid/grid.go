package grid

import "fmt"

// Grid is the bit-packed walkability store. Width and Height are fixed
// at construction; blocked bits toggle between searches; closed bits
// are per-search scratch reset by ResetClosed before each run.
//
// Concurrency: a Grid is not safe for concurrent searches. The closed
// bitset is mutated during Search, so two goroutines running a search
// against the same Grid at once will corrupt each other's state.
type Grid struct {
	Width, Height int
	blocked       bitset
	closed        bitset
}

// New constructs an empty (fully walkable) Grid of the given dimensions.
// Returns ErrConfigInvalid if either dimension is not positive.
// Complexity: O(Width*Height) to allocate the bit arrays.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrConfigInvalid, width, height)
	}

	n := width * height

	return &Grid{
		Width:   width,
		Height:  height,
		blocked: newBitset(n),
		closed:  newBitset(n),
	}, nil
}

// Len returns the total number of cells (Width*Height).
func (g *Grid) Len() int { return g.Width * g.Height }

// Pos maps (x,y) to the row-major cell identifier y*Width+x.
// The caller must ensure (x,y) is in bounds; Pos performs no validation.
func (g *Grid) Pos(x, y int) int { return y*g.Width + x }

// XY maps a cell identifier back to (x,y).
func (g *Grid) XY(pos int) (x, y int) { return pos % g.Width, pos / g.Width }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// InBoundsPos reports whether pos is a valid cell identifier.
func (g *Grid) InBoundsPos(pos int) bool {
	return pos >= 0 && pos < g.Len()
}

// Walkable reports whether pos is in bounds and not blocked. Out-of-bounds
// positions are reported unwalkable rather than probed, so callers never
// need to bounds-check before calling Walkable.
func (g *Grid) Walkable(pos int) bool {
	return g.InBoundsPos(pos) && !g.blocked.test(pos)
}

// WalkableXY is Walkable for (x,y) coordinates.
func (g *Grid) WalkableXY(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	return !g.blocked.test(g.Pos(x, y))
}

// SetBlocked marks (x,y) as an obstacle. Returns ErrOutOfBounds if (x,y)
// lies outside the grid.
func (g *Grid) SetBlocked(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.blocked.set(g.Pos(x, y))

	return nil
}

// ClearBlocked removes the obstacle at (x,y), if any. Returns
// ErrOutOfBounds if (x,y) lies outside the grid.
func (g *Grid) ClearBlocked(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.blocked.clear(g.Pos(x, y))

	return nil
}

// ClearAllBlocked removes every obstacle from the grid.
func (g *Grid) ClearAllBlocked() {
	g.blocked.clearAll()
}

// Blocked reports whether pos is marked as an obstacle, ignoring bounds.
// The caller must ensure pos is in range.
func (g *Grid) Blocked(pos int) bool {
	return g.blocked.test(pos)
}

// IsClosed reports whether pos has been finalized by the current search.
func (g *Grid) IsClosed(pos int) bool {
	return g.closed.test(pos)
}

// MarkClosed finalizes pos for the current search.
func (g *Grid) MarkClosed(pos int) {
	g.closed.set(pos)
}

// ResetClosed clears the closed set. Called once at the start of every
// search; search engines must never reopen a cell within a single run.
func (g *Grid) ResetClosed() {
	g.closed.clearAll()
}

// Dist computes the octile distance between two cells using the 5/7
// integer step-cost weights: 7*min(dx,dy) + 5*(max(dx,dy)-min(dx,dy)).
// This is both the JPS heuristic h(pos,end) and the true cost of moving
// in a straight line between two cells with no obstacles between them.
func (g *Grid) Dist(a, b int) int {
	ax, ay := g.XY(a)
	bx, by := g.XY(b)
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		return dx*DiagonalCost + (dy-dx)*AxialCost
	}

	return dy*DiagonalCost + (dx-dy)*AxialCost
}

// Neighbor returns the cell one step from pos in direction d, and
// whether that cell lies within the grid. It does not check walkability.
func (g *Grid) Neighbor(pos int, d Direction) (next int, ok bool) {
	x, y := g.XY(pos)
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return -1, false
	}

	return g.Pos(nx, ny), true
}
