// Package openset implements the JPS engine's priority queue: a binary
// min-heap of open-set nodes keyed by f = g + h, with O(log n)
// decrease-key support.
//
// Unlike the lazy "push a duplicate, skip stale entries on pop" pattern
// used elsewhere in this codebase's ancestry (e.g. dijkstra's nodePQ),
// openset tracks each live cell's heap slot directly so a cheaper g can
// update the existing entry in place instead of growing the heap. This
// mirrors the standard library's container/heap priority-queue example:
// each *Node carries its own heap index, kept current by Swap.
//
// Complexity: Push and Pop are O(log n); DecreaseKey is O(log n); Has
// and Len are O(1).
package openset
