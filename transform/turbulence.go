package transform

import (
	"github.com/katalvlaran/noisegraph/generator"
	"github.com/katalvlaran/noisegraph/modular"
)

// Turbulence defaults.
const (
	// DefaultPower scales the displacement applied to the coordinate.
	DefaultPower = 1.0
	// DefaultRoughness is the octave count of the internal displacers.
	DefaultRoughness = 3
)

// Distinct fractional offsets keep the three displacement fields from
// sampling the same lattice points even though their domains overlap.
// The values are arbitrary but fixed: changing them changes every
// turbulent field.
var (
	turbOffsetX = modular.Vec3{X: 12414.0 / 65536.0, Y: 65124.0 / 65536.0, Z: 31337.0 / 65536.0}
	turbOffsetY = modular.Vec3{X: 26519.0 / 65536.0, Y: 18128.0 / 65536.0, Z: 60493.0 / 65536.0}
	turbOffsetZ = modular.Vec3{X: 53820.0 / 65536.0, Y: 11213.0 / 65536.0, Z: 44845.0 / 65536.0}
)

// Turbulence displaces the evaluation coordinate by three internal
// fractal fields — one per axis, seeded seed, seed+1, seed+2 — each
// scaled by Power, then delegates to its source. The result swirls the
// source's features organically; marble and flame textures are built
// this way.
type Turbulence struct {
	modular.SourceBase

	// Power scales the displacement added to each coordinate component.
	// Zero makes the node a passthrough.
	Power float64

	xDistort *generator.Perlin
	yDistort *generator.Perlin
	zDistort *generator.Perlin
}

// NewTurbulence returns a Turbulence with default power, frequency and
// roughness, displacer seeds derived from the process-wide default
// seed, and its slot unset.
func NewTurbulence() *Turbulence {
	t := &Turbulence{
		SourceBase: modular.NewSourceBase(1),
		Power:      DefaultPower,
		xDistort:   generator.NewPerlin(),
		yDistort:   generator.NewPerlin(),
		zDistort:   generator.NewPerlin(),
	}
	t.SetSeed(modular.DefaultSeed())
	t.SetRoughness(DefaultRoughness)

	return t
}

// Seed reports the base seed of the displacement fields.
func (t *Turbulence) Seed() uint32 {
	return t.xDistort.Seed
}

// SetSeed reseeds the displacement fields at seed, seed+1 and seed+2,
// wrapping in the 32-bit seed domain.
func (t *Turbulence) SetSeed(seed uint32) {
	t.xDistort.Seed = seed
	t.yDistort.Seed = seed + 1
	t.zDistort.Seed = seed + 2
}

// Frequency reports the displacement fields' frequency.
func (t *Turbulence) Frequency() float64 {
	return t.xDistort.Frequency
}

// SetFrequency sets how rapidly the displacement varies across space.
func (t *Turbulence) SetFrequency(frequency float64) {
	t.xDistort.Frequency = frequency
	t.yDistort.Frequency = frequency
	t.zDistort.Frequency = frequency
}

// Roughness reports the displacement fields' octave count.
func (t *Turbulence) Roughness() int {
	return t.xDistort.OctaveCount()
}

// SetRoughness sets the displacement fields' octave count, clamped like
// any generator octave count. Low values swirl gently; high values
// crinkle.
func (t *Turbulence) SetRoughness(octaves int) {
	t.xDistort.SetOctaveCount(octaves)
	t.yDistort.SetOctaveCount(octaves)
	t.zDistort.SetOctaveCount(octaves)
}

// Evaluate displaces (x, y, z) and delegates to the source.
func (t *Turbulence) Evaluate(x, y, z float64) (float64, error) {
	// The displacers are zero-source generators; their errors are
	// structurally impossible but propagate on principle.
	dx, err := t.xDistort.Evaluate(x+turbOffsetX.X, y+turbOffsetX.Y, z+turbOffsetX.Z)
	if err != nil {
		return 0, err
	}
	dy, err := t.yDistort.Evaluate(x+turbOffsetY.X, y+turbOffsetY.Y, z+turbOffsetY.Z)
	if err != nil {
		return 0, err
	}
	dz, err := t.zDistort.Evaluate(x+turbOffsetZ.X, y+turbOffsetZ.Y, z+turbOffsetZ.Z)
	if err != nil {
		return 0, err
	}

	return t.EvalSource(0, x+dx*t.Power, y+dy*t.Power, z+dz*t.Power)
}
