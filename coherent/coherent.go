package coherent

// GradientCoherent3D — seeded gradient coherent noise.
//
// Description:
//
//	The value at (x, y, z) is a blend of pseudo-random gradients anchored
//	at the eight corners of the unit lattice cell containing the point.
//	Each corner gradient is chosen by hashing the corner's integer
//	coordinates together with the seed, so the field is a pure function
//	of its inputs: no tables are seeded, no state is retained.
//
// Algorithm Outline:
//  1. Locate the lattice cell: (x0,y0,z0) = floor of each coordinate.
//  2. Hash every corner (ix,iy,iz,seed) onto one of 16 fixed gradient
//     directions and dot it with the offset from that corner.
//  3. Remap the fractional position through the kernel selected by q
//     (linear, cubic or quintic S-curve).
//  4. Trilinearly blend the eight dot products.
//
// Properties:
//   - Deterministic: identical (x, y, z, seed, q) ⇒ identical output.
//   - Distinct seeds yield uncorrelated fields over the same domain.
//   - Continuous across every cell boundary in every quality mode;
//     C¹ for Standard, C² for Best.
//   - Output is nominally in [-1, 1]; small excursions are possible and
//     are the caller's to handle.
//
// Complexity: O(1) — eight hashes, eight dots, seven interpolations.
func GradientCoherent3D(x, y, z float64, seed uint32, q Quality) float64 {
	// Integer lattice cell containing (x, y, z).
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	z0 := fastFloor(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	// Fractional position inside the cell, remapped by the kernel.
	xs := kernel(x-float64(x0), q)
	ys := kernel(y-float64(y0), q)
	zs := kernel(z-float64(z0), q)

	// Corner gradient contributions.
	n000 := gradientDot(x0, y0, z0, seed, x, y, z)
	n100 := gradientDot(x1, y0, z0, seed, x, y, z)
	n010 := gradientDot(x0, y1, z0, seed, x, y, z)
	n110 := gradientDot(x1, y1, z0, seed, x, y, z)
	n001 := gradientDot(x0, y0, z1, seed, x, y, z)
	n101 := gradientDot(x1, y0, z1, seed, x, y, z)
	n011 := gradientDot(x0, y1, z1, seed, x, y, z)
	n111 := gradientDot(x1, y1, z1, seed, x, y, z)

	// Trilinear blend: x, then y, then z.
	ix0 := Lerp(n000, n100, xs)
	ix1 := Lerp(n010, n110, xs)
	ix2 := Lerp(n001, n101, xs)
	ix3 := Lerp(n011, n111, xs)
	iy0 := Lerp(ix0, ix1, ys)
	iy1 := Lerp(ix2, ix3, ys)

	return Lerp(iy0, iy1, zs)
}

// IntValue3D returns seeded value noise at an exact lattice point,
// uniformly distributed in (-1, 1]. It shares the lattice hash with
// GradientCoherent3D and is deterministic in the same way.
func IntValue3D(ix, iy, iz int32, seed uint32) float64 {
	n := latticeHash(ix, iy, iz, seed) & 0x7fffffff

	return 1.0 - float64(n)/1073741824.0
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SCurve3 is the cubic S-curve 3t²−2t³, mapping [0,1]→[0,1] with zero
// first derivative at both endpoints.
func SCurve3(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// SCurve5 is the quintic S-curve 6t⁵−15t⁴+10t³, mapping [0,1]→[0,1]
// with zero first and second derivatives at both endpoints.
func SCurve5(t float64) float64 {
	t3 := t * t * t
	t4 := t3 * t
	t5 := t4 * t

	return 6.0*t5 - 15.0*t4 + 10.0*t3
}

// kernel remaps a fractional lattice offset through the interpolation
// curve selected by q. Unknown values fall back to Standard.
func kernel(t float64, q Quality) float64 {
	switch q {
	case Fast:
		return t
	case Best:
		return SCurve5(t)
	default:
		return SCurve3(t)
	}
}

// fastFloor truncates toward negative infinity without calling
// math.Floor. Lattice indices wrap at the int32 boundary, which only
// matters for coordinates beyond ±2³¹ — far outside any usable domain.
func fastFloor(x float64) int32 {
	if x > 0 {
		return int32(x)
	}

	return int32(x) - 1
}

// latticeHash mixes a lattice corner and a seed into 32 bits. The
// multiply-fold constants avalanche single-bit input changes across the
// whole word so that adjacent corners and adjacent seeds decorrelate.
func latticeHash(ix, iy, iz int32, seed uint32) uint32 {
	n := xHashGen*uint32(ix) + yHashGen*uint32(iy) + zHashGen*uint32(iz) + seedHashGen*seed
	n = (n >> 13) ^ n

	return n*(n*n*60493+19990303) + 1376312589
}

// gradientDot hashes the corner (ix,iy,iz) and dots its gradient with
// the offset of (x,y,z) from that corner.
func gradientDot(ix, iy, iz int32, seed uint32, x, y, z float64) float64 {
	h := latticeHash(ix, iy, iz, seed)
	fx := x - float64(ix)
	fy := y - float64(iy)
	fz := z - float64(iz)

	return grad(h, fx, fy, fz)
}

// grad maps the low four hash bits onto one of 16 gradient directions
// (the edge/diagonal set of the unit cube) and returns its dot product
// with (x, y, z). The set is fixed: changing it changes every field.
func grad(h uint32, x, y, z float64) float64 {
	h &= 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}
