// Package generator provides the zero-source leaf nodes of a noisegraph
// composition graph: every generator derives its value directly from a
// noise primitive and node-local configuration, never from other nodes.
//
// 🚀 Generators:
//
//	Billow      — fractal octave accumulator with a billow fold
//	              (2·|signal|−1) and a +0.5 bias; puffy, creased fields.
//	Perlin      — classic fractional Brownian motion over the same loop.
//	RidgedMulti — Musgrave ridged multifractal; sharp mountain crests.
//	Const       — a fixed value; the unit of every combiner.
//	Simplex     — opensimplex lattice noise for a differently-textured
//	              base signal.
//
// The fractal generators share one configuration surface: Frequency
// pre-scales the input coordinate, Lacunarity multiplies the frequency
// each octave, Persistence (where applicable) multiplies the amplitude
// each octave, SetOctaveCount clamps into [MinOctaveCount,
// MaxOctaveCount] at the configuration boundary — evaluation trusts the
// stored value — and Seed plus the octave index derives each octave's
// noise seed, wrapped into the 32-bit seed domain.
//
// Degenerate configurations are valid, not errors: zero Persistence
// leaves a single effective octave, zero Frequency collapses the field
// to a constant. Fractal accumulation is deliberately unclamped, so
// extreme settings can leave the nominal [-1,1] band; wire a
// modify.Clamp downstream when a hard range is required.
//
// ⚙️ Usage:
//
//	b := generator.NewBillow()
//	b.Frequency = 2
//	b.SetOctaveCount(4)
//	v, err := b.Evaluate(1.5, 0.0, -2.25)
package generator
