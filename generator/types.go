// Package generator defines the shared configuration constants for the
// generator subpackage of github.com/katalvlaran/noisegraph.
package generator

import "github.com/katalvlaran/noisegraph/coherent"

// Shared defaults for the fractal generators (Billow, Perlin,
// RidgedMulti). Constructors apply them; callers override fields or use
// the setters afterwards.
const (
	// DefaultFrequency pre-scales input coordinates before octave 0.
	DefaultFrequency = 1.0
	// DefaultLacunarity is the per-octave frequency multiplier.
	DefaultLacunarity = 2.0
	// DefaultPersistence is the per-octave amplitude multiplier.
	DefaultPersistence = 0.5
	// DefaultOctaveCount is the number of accumulated octaves.
	DefaultOctaveCount = 6
	// DefaultQuality is the interpolation kernel generators start with.
	DefaultQuality = coherent.Standard

	// MinOctaveCount and MaxOctaveCount bound SetOctaveCount: values
	// outside are clamped at the configuration boundary, never at
	// evaluation time.
	MinOctaveCount = 1
	MaxOctaveCount = 30
)

// clampOctaves folds any integer into [MinOctaveCount, MaxOctaveCount].
func clampOctaves(n int) int {
	if n < MinOctaveCount {
		return MinOctaveCount
	}
	if n > MaxOctaveCount {
		return MaxOctaveCount
	}

	return n
}
