// Package jps implements Jump Point Search over a *grid.Grid: the
// neighbor-pruning rules, the recursive jump scan, and the main
// priority-queue-driven search loop that together find a shortest path
// under the 5/7 octile cost model while skipping the interior cells a
// plain A* would have to enqueue individually.
//
// Searcher owns the per-search scratch (the open set and the comefrom
// parent array) so repeated searches against the same grid reuse one
// allocation instead of paying for it on every call. A Searcher, like
// the Grid it searches, is not safe for concurrent use.
//
// Complexity: O(W*H*log(W*H)) worst case, dominated by heap operations;
// the jump scan itself visits at most every cell once per direction
// across the whole search.
package jps
