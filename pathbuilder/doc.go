// Package pathbuilder reconstructs the full grid waypoint sequence from
// the sparse comefrom parent chain a jps.Searcher leaves behind.
//
// JPS only records jump-point ancestors. A parent link that spans a
// diagonal run followed by an axial run compresses two geometric
// segments into one link; Build restores the missing bend point for
// such a link so the emitted path never cuts a corner that the search
// itself did not actually cross. jps.Searcher's own links are always
// straight (its jump scan returns the diagonal cell itself once a
// downstream axial find succeeds), so they pass through unchanged.
//
// Complexity: O(path length) — one pass over the comefrom chain, each
// step doing O(1) arithmetic.
package pathbuilder
