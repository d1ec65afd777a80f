package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/outline"
)

// benchSegment returns a finalized-style segment outline which spans
// most of a size×size canvas.
func benchSegment(size int) *path.Data {
	s := float64(size)
	wp := func(x, y float64) outline.WeightedPoint {
		return outline.WeightedPoint{Pos: vec.Vec2{X: x * s, Y: y * s}, Weight: 0.08 * s}
	}
	return outline.BezierCurve(wp(0.1, 0.8), wp(0.3, 0.1), wp(0.6, 0.9), wp(0.9, 0.2))
}

func BenchmarkPainter(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			p := benchSegment(size)
			pt := NewPainter()

			b.ReportAllocs()
			for b.Loop() {
				_ = pt.Fill(dst, p, matrix.Identity, color.Black)
			}
		})
	}
}

func BenchmarkVectorPainter(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			p := benchSegment(size)
			vp := &VectorPainter{}

			b.ReportAllocs()
			for b.Loop() {
				_ = vp.Fill(dst, p, matrix.Identity, color.Black)
			}
		})
	}
}
