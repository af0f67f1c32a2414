package connectivity

import "errors"

// ErrNotLabelled is returned by Labels.ComponentOf for a position that
// has never been labelled, which only happens for an out-of-bounds pos.
var ErrNotLabelled = errors.New("connectivity: position not labelled")
