package navmap

// GridPoint is an integer grid coordinate, used by AddBlock,
// AddBlockset, and FindPathByGrid.
type GridPoint struct {
	X, Y int
}

// Point is a fractional coordinate on the grid's continuous plane,
// used by FindPath and CheckLineWalkable. A Point need not sit at a
// cell center; FindPath preserves the caller's exact fractional
// endpoints in its result.
type Point struct {
	X, Y float64
}

// Options configures a Map at construction time.
//
// AutoConnect – if true, New runs MarkConnected immediately so the
// first FindPath call can reject a disconnected endpoint pair without
// running a doomed search. Default false: connectivity labels are
// scratch the caller opts into, since AddBlock/ClearBlock invalidate
// them and MarkConnected must be called again to refresh.
type Options struct {
	AutoConnect bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithAutoConnect enables or disables automatic connectivity labelling
// at construction time. See Options.AutoConnect.
func WithAutoConnect(enabled bool) Option {
	return func(o *Options) {
		o.AutoConnect = enabled
	}
}

// DefaultOptions returns the default Options: AutoConnect disabled.
func DefaultOptions() Options {
	return Options{AutoConnect: false}
}
