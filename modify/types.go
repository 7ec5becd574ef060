// Package modify defines sentinel errors and shared defaults for the
// modify subpackage of github.com/katalvlaran/noisegraph.
package modify

import "errors"

// ErrInvalidBounds indicates SetBounds was called with lower > upper.
var ErrInvalidBounds = errors.New("modify: lower bound must not exceed upper bound")

// Defaults for the configurable modifiers.
const (
	// DefaultLowerBound is Clamp's initial lower bound.
	DefaultLowerBound = -1.0
	// DefaultUpperBound is Clamp's initial upper bound.
	DefaultUpperBound = 1.0
	// DefaultScale leaves the source value unscaled.
	DefaultScale = 1.0
	// DefaultBias leaves the source value unshifted.
	DefaultBias = 0.0
	// DefaultExponent leaves the source curve unchanged.
	DefaultExponent = 1.0
)
