package noisemap_test

import (
	"testing"

	"github.com/katalvlaran/noisegraph/generator"
	"github.com/katalvlaran/noisegraph/noisemap"
)

// benchGraph is a default six-octave billow field.
func benchGraph() *generator.Billow {
	b := generator.NewBillow()
	b.Seed = 1
	return b
}

// BenchmarkPlane_Sequential measures single-goroutine sampling of a
// 128×128 grid.
func BenchmarkPlane_Sequential(b *testing.B) {
	g := benchGraph()
	opts := noisemap.DefaultOptions()
	opts.Width, opts.Height = 128, 128

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := noisemap.Plane(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPlane_Parallel measures the same grid with rows spread
// across goroutines.
func BenchmarkPlane_Parallel(b *testing.B) {
	g := benchGraph()
	opts := noisemap.DefaultOptions()
	opts.Width, opts.Height = 128, 128
	opts.Parallel = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := noisemap.Plane(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}
