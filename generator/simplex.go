package generator

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/noisegraph/modular"
)

// Simplex emits single-band opensimplex noise: a differently-textured
// base signal than the gradient lattice, with fewer axis-aligned
// artifacts. Output is nominally in [-1, 1] and deterministic per seed.
//
// Simplex carries no octave loop of its own — feed it through the
// combiner and modifier nodes, or use the fractal generators when
// multi-octave detail is needed.
type Simplex struct {
	modular.SourceBase

	// Frequency scales input coordinates before sampling.
	Frequency float64

	noise opensimplex.Noise
	seed  int64
}

// NewSimplex returns a Simplex with DefaultFrequency and the
// process-wide default seed captured at construction.
func NewSimplex() *Simplex {
	seed := int64(modular.DefaultSeed())

	return &Simplex{
		SourceBase: modular.NewSourceBase(0),
		Frequency:  DefaultFrequency,
		noise:      opensimplex.New(seed),
		seed:       seed,
	}
}

// Seed reports the seed the lattice was built from.
func (s *Simplex) Seed() int64 {
	return s.seed
}

// SetSeed rebuilds the underlying lattice from seed. Like any
// reconfiguration, it must be serialized against in-flight evaluations.
func (s *Simplex) SetSeed(seed int64) {
	s.noise = opensimplex.New(seed)
	s.seed = seed
}

// Evaluate samples the opensimplex lattice at the scaled coordinate.
func (s *Simplex) Evaluate(x, y, z float64) (float64, error) {
	return s.noise.Eval3(x*s.Frequency, y*s.Frequency, z*s.Frequency), nil
}
