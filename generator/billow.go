package generator

import (
	"math"

	"github.com/katalvlaran/noisegraph/coherent"
	"github.com/katalvlaran/noisegraph/modular"
)

// Billow — fractal octave accumulator with a billow fold.
//
// Description:
//
//	Billow sums OctaveCount octaves of gradient coherent noise. Each
//	octave's signal is folded by 2·|signal|−1 before accumulation, which
//	remaps smooth noise into a "billowy", always-creased shape with fold
//	lines at the zero-crossings of the underlying field, and the total is
//	biased by +0.5. Cloud banks and puffy terrain are the classic uses.
//
// Algorithm:
//  1. Scale the coordinate by Frequency.
//  2. For each octave: sample gradient noise at the per-octave seed
//     (Seed+octave, wrapped into the 32-bit seed domain), fold it,
//     accumulate it at the current amplitude, then multiply the
//     coordinate by Lacunarity and the amplitude by Persistence.
//  3. Add the +0.5 bias.
//
// The result is not clamped: for Persistence > 1 or constructive octave
// stacks it can exceed [-1,1]. That is documented behavior — wire a
// modify.Clamp downstream if a hard range is needed.
//
// Complexity: O(OctaveCount) per evaluation.
type Billow struct {
	modular.SourceBase

	// Frequency scales input coordinates before octave 0.
	Frequency float64
	// Lacunarity multiplies the frequency each octave (typically 1.5–3.5).
	Lacunarity float64
	// Persistence multiplies the amplitude each octave (typically 0–1).
	// Zero degenerates to a single effective octave — valid, not an error.
	Persistence float64
	// Seed perturbs the lattice hash; octave o samples at Seed+o.
	Seed uint32
	// Quality selects the interpolation kernel.
	Quality coherent.Quality

	octaveCount int
}

// NewBillow returns a Billow with the package defaults and the
// process-wide default seed captured at construction.
func NewBillow() *Billow {
	return &Billow{
		SourceBase:  modular.NewSourceBase(0),
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		Seed:        modular.DefaultSeed(),
		Quality:     DefaultQuality,
		octaveCount: DefaultOctaveCount,
	}
}

// OctaveCount reports the stored octave count, always within
// [MinOctaveCount, MaxOctaveCount].
func (b *Billow) OctaveCount() int {
	return b.octaveCount
}

// SetOctaveCount stores n clamped into [MinOctaveCount, MaxOctaveCount].
// Clamping happens here, at the configuration boundary; Evaluate trusts
// the stored value.
func (b *Billow) SetOctaveCount(n int) {
	b.octaveCount = clampOctaves(n)
}

// Evaluate returns the folded, biased octave sum at (x, y, z).
func (b *Billow) Evaluate(x, y, z float64) (float64, error) {
	x *= b.Frequency
	y *= b.Frequency
	z *= b.Frequency

	value := 0.0
	amplitude := 1.0
	for octave := 0; octave < b.octaveCount; octave++ {
		// Seed+octave wraps modulo 2³², staying inside the generator's
		// accepted seed domain.
		octaveSeed := b.Seed + uint32(octave)
		signal := coherent.GradientCoherent3D(x, y, z, octaveSeed, b.Quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * amplitude

		x *= b.Lacunarity
		y *= b.Lacunarity
		z *= b.Lacunarity
		amplitude *= b.Persistence
	}

	return value + 0.5, nil
}
