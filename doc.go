// Package jpsgrid is a grid pathfinding library built around Jump
// Point Search: an A* optimization that skips the symmetric
// intermediate cells a uniform-cost grid search would otherwise
// enqueue one at a time.
//
// Everything is organized under focused subpackages:
//
//	grid/         — bit-packed walkability store, octile distance, direction arithmetic
//	openset/      — binary min-heap open set with O(log n) decrease-key
//	jps/          — pruned-neighbor rules, jump scan, the search loop itself
//	pathbuilder/  — comefrom trace-back with mid-jump bend reinsertion
//	los/          — line-of-sight segment test and waypoint smoothing
//	connectivity/ — iterative flood-fill component labelling
//	navmap/       — the external-facing map handle wiring all of the above
//	mapconfig/    — YAML map-definition loading
//
// A typical caller only imports navmap (and, for config-driven setup,
// mapconfig):
//
//	m, err := navmap.New(width, height, obstacles)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := m.FindPathByGrid(sx, sy, ex, ey)
package jpsgrid
