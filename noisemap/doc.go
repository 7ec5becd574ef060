// Package noisemap samples a noisegraph module graph over an
// axis-aligned plane into a row-major 2D grid — the step that turns an
// abstract field into heightmap-shaped data a host renderer can consume.
//
// 🚀 What it does:
//
//	Given any modular.Module and an (x,z) extent, Plane evaluates the
//	graph at every grid cell (y held constant) and returns the values in
//	a Grid. Because evaluation is a pure function of the coordinate,
//	rows may be filled concurrently: set Options.Parallel and Plane
//	spreads rows across goroutines with identical results.
//
// ⚙️ Usage:
//
//	opts := noisemap.DefaultOptions()
//	opts.Width, opts.Height = 512, 512
//	opts.Parallel = true
//	grid, err := noisemap.Plane(terrainGraph, opts)
//
// The sampling step for cell (ix, iz) is
//
//	x = LowerX + ix·(UpperX−LowerX)/Width
//	z = LowerZ + iz·(UpperZ−LowerZ)/Height
//
// so neighboring maps tile seamlessly when their extents abut.
//
// Persistence, image encoding and GPU upload stay with the host — this
// package stops at the grid of values.
package noisemap
