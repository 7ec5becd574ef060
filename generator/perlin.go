package generator

import (
	"github.com/katalvlaran/noisegraph/coherent"
	"github.com/katalvlaran/noisegraph/modular"
)

// Perlin — classic fractional Brownian motion.
//
// Perlin runs the same octave loop as Billow without the fold and
// without the bias: each octave's raw gradient-noise signal is
// accumulated at the current amplitude. The result is the familiar
// rolling-hills field, nominally in [-1,1] for Persistence ≤ 0.5 and
// unclamped beyond that.
//
// Complexity: O(OctaveCount) per evaluation.
type Perlin struct {
	modular.SourceBase

	// Frequency scales input coordinates before octave 0.
	Frequency float64
	// Lacunarity multiplies the frequency each octave.
	Lacunarity float64
	// Persistence multiplies the amplitude each octave.
	Persistence float64
	// Seed perturbs the lattice hash; octave o samples at Seed+o.
	Seed uint32
	// Quality selects the interpolation kernel.
	Quality coherent.Quality

	octaveCount int
}

// NewPerlin returns a Perlin with the package defaults and the
// process-wide default seed captured at construction.
func NewPerlin() *Perlin {
	return &Perlin{
		SourceBase:  modular.NewSourceBase(0),
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		Seed:        modular.DefaultSeed(),
		Quality:     DefaultQuality,
		octaveCount: DefaultOctaveCount,
	}
}

// OctaveCount reports the stored octave count.
func (p *Perlin) OctaveCount() int {
	return p.octaveCount
}

// SetOctaveCount stores n clamped into [MinOctaveCount, MaxOctaveCount].
func (p *Perlin) SetOctaveCount(n int) {
	p.octaveCount = clampOctaves(n)
}

// Evaluate returns the octave sum at (x, y, z).
func (p *Perlin) Evaluate(x, y, z float64) (float64, error) {
	x *= p.Frequency
	y *= p.Frequency
	z *= p.Frequency

	value := 0.0
	amplitude := 1.0
	for octave := 0; octave < p.octaveCount; octave++ {
		octaveSeed := p.Seed + uint32(octave)
		value += coherent.GradientCoherent3D(x, y, z, octaveSeed, p.Quality) * amplitude

		x *= p.Lacunarity
		y *= p.Lacunarity
		z *= p.Lacunarity
		amplitude *= p.Persistence
	}

	return value, nil
}
