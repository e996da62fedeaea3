package physics

import "errors"

// ErrInvalidElements marks orbital elements that cannot define a bound ellipse
var ErrInvalidElements = errors.New("invalid orbital elements")
