package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrConfigInvalid indicates Width or Height was not positive.
	ErrConfigInvalid = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate lies outside [0,Width) x [0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
