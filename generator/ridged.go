package generator

import (
	"math"

	"github.com/katalvlaran/noisegraph/coherent"
	"github.com/katalvlaran/noisegraph/modular"
)

// Ridged-multifractal tuning constants (the Musgrave formulation).
const (
	// ridgedOffset recenters each octave's folded signal.
	ridgedOffset = 1.0
	// ridgedGain feeds one octave's signal into the next octave's weight,
	// sharpening crests where the previous octave was strong.
	ridgedGain = 2.0
)

// RidgedMulti — ridged multifractal generator.
//
// Description:
//
//	Each octave folds the gradient-noise signal into a ridge,
//	(offset − |signal|)², and weights it both by a spectral weight
//	derived from Lacunarity (amplitude falls as lacunarity⁻ᵒᶜᵗᵃᵛᵉ) and by
//	feedback from the previous octave's signal, clamped to [0,1]. The
//	sum is rescaled to land nominally in [-1,1]. The result is the
//	classic sharp-crested mountain field.
//
// There is no Persistence knob: the spectral-weight rule replaces it.
//
// Complexity: O(OctaveCount) per evaluation.
type RidgedMulti struct {
	modular.SourceBase

	// Frequency scales input coordinates before octave 0.
	Frequency float64
	// Lacunarity multiplies the frequency each octave and derives the
	// per-octave spectral weights.
	Lacunarity float64
	// Seed perturbs the lattice hash; octave o samples at Seed+o.
	Seed uint32
	// Quality selects the interpolation kernel.
	Quality coherent.Quality

	octaveCount int
}

// NewRidgedMulti returns a RidgedMulti with the package defaults and
// the process-wide default seed captured at construction.
func NewRidgedMulti() *RidgedMulti {
	return &RidgedMulti{
		SourceBase:  modular.NewSourceBase(0),
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Seed:        modular.DefaultSeed(),
		Quality:     DefaultQuality,
		octaveCount: DefaultOctaveCount,
	}
}

// OctaveCount reports the stored octave count.
func (r *RidgedMulti) OctaveCount() int {
	return r.octaveCount
}

// SetOctaveCount stores n clamped into [MinOctaveCount, MaxOctaveCount].
func (r *RidgedMulti) SetOctaveCount(n int) {
	r.octaveCount = clampOctaves(n)
}

// Evaluate returns the ridged octave sum at (x, y, z).
func (r *RidgedMulti) Evaluate(x, y, z float64) (float64, error) {
	x *= r.Frequency
	y *= r.Frequency
	z *= r.Frequency

	value := 0.0
	weight := 1.0
	spectral := 1.0 // lacunarity⁻ᵒᶜᵗᵃᵛᵉ, updated incrementally
	for octave := 0; octave < r.octaveCount; octave++ {
		octaveSeed := r.Seed + uint32(octave)
		signal := coherent.GradientCoherent3D(x, y, z, octaveSeed, r.Quality)

		// Fold into a ridge and square to sharpen the crest.
		signal = ridgedOffset - math.Abs(signal)
		signal *= signal
		signal *= weight

		// Next octave's weight feeds back this octave's signal.
		weight = signal * ridgedGain
		if weight > 1.0 {
			weight = 1.0
		}
		if weight < 0.0 {
			weight = 0.0
		}

		value += signal * spectral

		x *= r.Lacunarity
		y *= r.Lacunarity
		z *= r.Lacunarity
		spectral /= r.Lacunarity
	}

	return value*1.25 - 1.0, nil
}
