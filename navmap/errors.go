package navmap

import "errors"

// Sentinel errors for navmap operations, per the error taxonomy: every
// invalid-input error is surfaced at the boundary call that introduced
// it, wrapped with fmt.Errorf("navmap: ...: %w", ...). "No path found"
// is not an error — FindPath and FindPathByGrid report it as an empty
// result.
var (
	// ErrOutOfBounds indicates a coordinate violates 0<=x<W, 0<=y<H.
	ErrOutOfBounds = errors.New("navmap: coordinate out of bounds")

	// ErrBlockedEndpoint indicates a path's start or end sits on an
	// obstacle cell.
	ErrBlockedEndpoint = errors.New("navmap: start or end is blocked")

	// ErrConfigInvalid indicates W or H <= 0, or an out-of-bounds
	// obstacle list entry passed to New. AddBlockset reports
	// out-of-bounds points as ErrOutOfBounds instead.
	ErrConfigInvalid = errors.New("navmap: invalid map configuration")
)
