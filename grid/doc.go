// Package grid provides the bit-packed walkability store shared by the
// rest of jpsgrid: bounds checking, obstacle bits, the closed-set bits
// a search marks as it finalizes cells, coordinate math, the eight
// compass directions used by jump point search, and octile distance.
//
// A Grid is immutable in shape (Width, Height fixed at construction)
// but mutable in content: obstacles can be toggled between searches,
// and the closed-set bits are scratch that every search resets before
// it starts. A single Grid is not safe for concurrent searches; see
// navmap for the owning type and its concurrency contract.
//
// Complexity:
//
//   - Bounds/obstacle/closed queries and mutations: O(1).
//   - Dist (octile distance): O(1).
package grid
