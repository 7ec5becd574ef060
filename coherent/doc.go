// Package coherent computes deterministic, seeded gradient coherent
// noise over a 3D integer lattice — the numeric primitive every
// generator node in noisegraph is built on.
//
// 🚀 What is coherent noise?
//
//	A smooth pseudo-random function of space: nearby inputs yield nearby
//	outputs, yet the field looks organically random. It is the raw
//	material of:
//	  • terrain heightmaps & planet surfaces
//	  • cloud, marble, wood & fire textures
//	  • organic motion fields and dither masks
//
// ✨ Key features:
//   - seed-determinism: identical (x, y, z, seed, quality) ⇒ identical output
//   - uncorrelated fields per seed over the same coordinate domain
//   - three interpolation kernels (Fast, Standard, Best) trading
//     smoothness against cost
//   - seam-free: continuous across every integer cell boundary in every mode
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/noisegraph/coherent"
//
//	v := coherent.GradientCoherent3D(1.25, 0.75, 0.5, 42, coherent.Standard)
//	// v is nominally in [-1, 1]
//
// The output range is a design target, not a hard bound: gradient
// summation can exceed [-1,1] by a small margin. Callers that fold or
// accumulate the signal (see generator.Billow) must accept such
// excursions deliberately rather than clamp them silently.
//
// Performance:
//
//   - Fast     — linear blend, cheapest, C⁰ across cells
//   - Standard — cubic S-curve 3t²−2t³, C¹ across cells
//   - Best     — quintic S-curve 6t⁵−15t⁴+10t³, C² across cells
//
// See example_test.go for runnable determinism demos.
package coherent
