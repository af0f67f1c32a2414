// Package connectivity labels every walkable cell with the id of its
// connected component, using plain 4-directional (N/E/S/W) adjacency,
// per spec.md §4.F ("A flood-fill (4-connected) labels each walkable
// cell") and the original C flood_mark, which only ever recurses on
// pos±1/pos±width — no diagonal steps, no corner-cutting check.
//
// This 4-connected partition is not an approximation of the search
// engine's corner-rule-gated 8-directional reachability; it is exactly
// equal to it. Any diagonal step the search allows from A to B must
// have at least one of its two flanking axial cells walkable (the
// no-corner-cutting rule), and that flanking cell turns the diagonal
// step into a 2-step axial detour (A to the flank, the flank to B).
// So every legal diagonal step has an axial substitute, which means a
// 4-connected flood fill finds exactly the same components the search
// can actually traverse between — the cheap label lookup in navmap's
// search path is a sound short-circuit, not a heuristic.
//
// A FindPath caller can consult Labels once after a grid edit to reject
// unreachable endpoints in O(1) instead of running a full search that
// is doomed to explore every walkable cell before failing.
//
// Labelling uses an explicit stack rather than recursion. The original
// C flood_mark recurses one stack frame per visited cell, which risks
// overflow on a large open map; spec.md §9's design notes call for the
// iterative rewrite this package uses instead.
package connectivity
