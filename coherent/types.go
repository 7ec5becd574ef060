// Package coherent defines the Quality kernel selector and lattice
// hashing constants for the coherent subpackage of
// github.com/katalvlaran/noisegraph.
package coherent

// Quality selects the interpolation kernel used to blend lattice-point
// gradients. Smoother kernels cost more per evaluation.
//
//   - Fast     — linear interpolation. Cheapest; the field is continuous
//     but its derivative jumps at cell boundaries.
//   - Standard — cubic S-curve 3t²−2t³. C¹-continuous; the usual default.
//   - Best     — quintic S-curve 6t⁵−15t⁴+10t³. C²-continuous; use when
//     the field's derivative feeds bump-mapping or normals.
type Quality int

const (
	// Fast uses linear interpolation between lattice gradients.
	Fast Quality = iota
	// Standard uses the cubic S-curve 3t²−2t³.
	Standard
	// Best uses the quintic S-curve 6t⁵−15t⁴+10t³.
	Best
)

// Lattice hashing constants. Large odd multipliers spread neighboring
// lattice coordinates and seeds across the 32-bit hash space; the exact
// values are arbitrary but fixed forever, since changing any of them
// changes every generated field.
const (
	xHashGen    uint32 = 1619
	yHashGen    uint32 = 31337
	zHashGen    uint32 = 6971
	seedHashGen uint32 = 1013
)
