package jps

import (
	"github.com/arcway/jpsgrid/grid"
	"github.com/arcway/jpsgrid/openset"
)

// Searcher holds the per-search scratch state reused across calls to
// Search against grids of the capacity it was built for: the open set
// (component B) and the comefrom parent array (the sparse backbone
// pathbuilder walks back to reconstruct the full waypoint list).
type Searcher struct {
	open     *openset.OpenSet
	comeFrom []int
}

// NewSearcher allocates a Searcher with scratch sized for n cells.
func NewSearcher(n int) *Searcher {
	return &Searcher{
		open:     openset.New(n),
		comeFrom: make([]int, n),
	}
}

// Search runs Jump Point Search from start to end over g. It resets
// g's closed set and the Searcher's own scratch before running, so the
// same Searcher may be reused across many searches (even against
// different grids, as long as they are no larger than n).
//
// On success, found is true and comeFrom holds the jump-point parent
// chain: comeFrom[pos] is the parent of pos on the search tree, or -1
// for start. On failure (no path), found is false and comeFrom's
// contents are undefined for reconstruction purposes.
//
// Preconditions (caller's responsibility; Search does not validate
// them): start and end are in bounds and walkable. See navmap for the
// boundary validation that enforces this.
func (s *Searcher) Search(g *grid.Grid, start, end int) (comeFrom []int, found bool) {
	g.ResetClosed()
	s.open.Reset()
	for i := range s.comeFrom {
		s.comeFrom[i] = -1
	}

	if start == end {
		return s.comeFrom, true
	}

	s.comeFrom[start] = -1
	s.open.Push(start, 0, g.Dist(start, end), grid.NoDirection)

	for !s.open.IsEmpty() {
		cur := s.open.PopMin()
		if cur.Pos == end {
			return s.comeFrom, true
		}
		g.MarkClosed(cur.Pos)

		for _, d := range successors(g, cur.Pos, cur.From) {
			j, ok := jump(g, cur.Pos, d, end)
			if !ok || g.IsClosed(j) {
				continue
			}

			gPrime := cur.G + g.Dist(cur.Pos, j)
			switch {
			case !s.open.Has(j):
				s.comeFrom[j] = cur.Pos
				s.open.Push(j, gPrime, gPrime+g.Dist(j, end), d)
			case gPrime < s.open.G(j):
				s.comeFrom[j] = cur.Pos
				s.open.DecreaseKey(j, gPrime, gPrime+g.Dist(j, end), d)
			}
		}
	}

	return s.comeFrom, false
}
