// Package navmap is the opaque map handle external callers use: it
// wires together grid, openset, jps, pathbuilder, los, and
// connectivity behind the operations spec'd as the module's
// external interface (New, AddBlock/AddBlockset, ClearBlock/
// ClearAllBlocks, MarkConnected, FindPathByGrid/FindPath,
// CheckLineWalkable, Dump/DumpConnected).
//
// A Map owns its search scratch buffers (the jps.Searcher's comefrom
// array and open set) exclusively; nothing outside this package
// aliases them, so there is no GC/lifetime story to manage beyond
// letting a *Map fall out of scope.
//
// Concurrency: a Map is not safe for concurrent use. FindPath and
// FindPathByGrid mutate the underlying grid's closed-set scratch and
// the Map's searcher state; callers needing concurrent pathfinding
// over the same obstacle layout should construct one Map per goroutine.
package navmap
