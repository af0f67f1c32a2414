package mapconfig

import "errors"

// ErrMalformedObstacle indicates an obstacle entry in a Document is
// missing an X or Y coordinate.
var ErrMalformedObstacle = errors.New("mapconfig: obstacle entry missing x or y")
