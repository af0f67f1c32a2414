package openset

import "github.com/arcway/jpsgrid/grid"

// Node is a single open-set entry: a cell reached with accumulated
// cost G via arrival direction From, ranked in the heap by F = G + h.
type Node struct {
	Pos  int
	G    int
	F    int
	From grid.Direction

	index int // position in the heap slice; maintained by innerHeap.Swap
}
