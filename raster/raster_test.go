// seehuhn.de/go/signature - variable-width signature strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/outline"
)

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(trianglePath, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-5
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestFillRules(t *testing.T) {
	// two overlapping squares with the same orientation
	p := square(0, 0, 6, 6)
	p.MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 9, Y: 3}).
		LineTo(vec.Vec2{X: 9, Y: 9}).
		LineTo(vec.Vec2{X: 3, Y: 9}).
		Close()

	clip := rect.Rect{URx: 10, URy: 10}
	collect := func(fill func(*path.Data, func(int, int, []float32))) [10][10]float32 {
		var res [10][10]float32
		fill(p, func(y, xMin int, cov []float32) {
			copy(res[y][xMin:], cov)
		})
		return res
	}

	r := NewRasteriser(clip)
	nz := collect(r.FillNonZero)
	eo := collect(r.FillEvenOdd)

	if nz[4][4] != 1 {
		t.Errorf("nonzero: overlap coverage %g, expected 1", nz[4][4])
	}
	if eo[4][4] != 0 {
		t.Errorf("even-odd: overlap coverage %g, expected 0", eo[4][4])
	}
	for _, c := range [][2]int{{1, 1}, {7, 7}} {
		x, y := c[0], c[1]
		if nz[y][x] != 1 || eo[y][x] != 1 {
			t.Errorf("pixel %v: expected full coverage, got %g/%g", c, nz[y][x], eo[y][x])
		}
	}
	if nz[8][1] != 0 || eo[8][1] != 0 {
		t.Errorf("pixel outside both squares is covered")
	}
}

func TestClipping(t *testing.T) {
	r := NewRasteriser(rect.Rect{LLx: 2, LLy: 2, URx: 5, URy: 5})
	r.FillNonZero(square(-10, -10, 10, 10), func(y, xMin int, cov []float32) {
		if y < 2 || y >= 5 || xMin < 2 || xMin+len(cov) > 5 {
			t.Errorf("row %d, x=%d..%d outside of clip", y, xMin, xMin+len(cov))
		}
	})

	called := false
	r.FillNonZero(square(20, 20, 30, 30), func(int, int, []float32) { called = true })
	if called {
		t.Error("emit called for path outside the clip rectangle")
	}
	r.FillNonZero(nil, func(int, int, []float32) { called = true })
	if called {
		t.Error("emit called for nil path")
	}
}

// TestFarAwayEdge checks coverage for an edge which extends far beyond the
// clip rectangle on both sides.  The work per scanline must only depend on
// the width of the clip rectangle.
func TestFarAwayEdge(t *testing.T) {
	const far = 1e9
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: -far, Y: 0}).
		LineTo(vec.Vec2{X: far, Y: 10}).
		LineTo(vec.Vec2{X: -far, Y: 10}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	var got [10][10]float32
	r.FillNonZero(p, func(y, xMin int, cov []float32) {
		copy(got[y][xMin:], cov)
	})

	// the edge crosses the clip rectangle at y = 5, almost horizontally
	const epsilon = 1e-3
	for y := range 10 {
		want := float32(0)
		if y >= 5 {
			want = 1
		}
		for x := range 10 {
			if math.Abs(float64(got[y][x]-want)) > epsilon {
				t.Errorf("pixel (%d,%d): coverage %.4f, want %g", x, y, got[y][x], want)
			}
		}
	}
}

func TestPainterColor(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var pt Painter

	red := color.NRGBA{R: 255, A: 255}
	if err := pt.Fill(dst, square(2, 2, 12, 12), matrix.Identity, red); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(5, 5); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("inside: expected opaque red, got %v", got)
	}
	if got := dst.RGBAAt(15, 15); got != (color.RGBA{}) {
		t.Errorf("outside: expected transparent, got %v", got)
	}

	// half transparent blue over the red square
	blue := color.NRGBA{B: 255, A: 128}
	if err := pt.Fill(dst, square(8, 8, 16, 16), matrix.Identity, blue); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(14, 14); got != (color.RGBA{B: 128, A: 128}) {
		t.Errorf("blue only: got %v", got)
	}
	got := dst.RGBAAt(10, 10)
	if got.A != 255 || got.R < 120 || got.R > 130 || got.B < 125 || got.B > 130 {
		t.Errorf("blue over red: got %v", got)
	}
}

func TestPainterTransform(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var pt Painter
	err := pt.Fill(dst, square(1, 1, 4, 4), matrix.Scale(2, 2), color.Black)
	if err != nil {
		t.Fatal(err)
	}
	if dst.RGBAAt(7, 7).A != 255 {
		t.Error("scaled square does not cover (7, 7)")
	}
	if dst.RGBAAt(9, 9).A != 0 {
		t.Error("scaled square covers (9, 9)")
	}
}

func TestPainterNoDestination(t *testing.T) {
	var pt Painter
	if err := pt.Fill(nil, square(0, 0, 1, 1), matrix.Identity, color.Black); err != ErrNoDestination {
		t.Errorf("expected ErrNoDestination, got %v", err)
	}
	var vp VectorPainter
	if err := vp.Fill(nil, square(0, 0, 1, 1), matrix.Identity, color.Black); err != ErrNoDestination {
		t.Errorf("expected ErrNoDestination, got %v", err)
	}
}

// TestPainterMatchesVector compares the coverage of signature outlines
// rendered by Painter and by VectorPainter.
func TestPainterMatchesVector(t *testing.T) {
	wp := func(x, y, w float64) outline.WeightedPoint {
		return outline.WeightedPoint{Pos: vec.Vec2{X: x, Y: y}, Weight: w}
	}
	shapes := map[string]*path.Data{
		"dot":    outline.Dot(wp(20, 20, 9)),
		"line":   outline.Line(wp(4, 30, 6), wp(60, 8, 3)),
		"quad":   outline.QuadCurve(wp(5, 5, 4), wp(50, 10, 7), wp(30, 55, 2)),
		"bezier": outline.BezierCurve(wp(3, 40, 5), wp(20, 2, 7), wp(45, 60, 3), wp(60, 20, 6)),
	}

	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			a := image.NewRGBA(image.Rect(0, 0, 64, 64))
			b := image.NewRGBA(image.Rect(0, 0, 64, 64))
			if err := (&Painter{}).Fill(a, p, matrix.Identity, color.White); err != nil {
				t.Fatal(err)
			}
			if err := (&VectorPainter{}).Fill(b, p, matrix.Identity, color.White); err != nil {
				t.Fatal(err)
			}
			if err := compareAlpha(a, b); err != nil {
				t.Error(err)
			}
		})
	}
}

// compareAlpha checks that the alpha channels of a and b agree, allowing
// for differences in anti-aliasing along the edges.
func compareAlpha(a, b *image.RGBA) error {
	var diffs []int
	inside := 0
	for i := 3; i < len(a.Pix); i += 4 {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		diffs = append(diffs, d)
		if a.Pix[i] == 255 {
			inside++
		}
	}
	if inside == 0 {
		return errors.New("no fully covered pixels")
	}

	sort.Ints(diffs)
	n := len(diffs)
	p95 := diffs[int(math.Round(0.95*float64(n-1)))]
	p99 := diffs[int(math.Round(0.99*float64(n-1)))]
	if p95 >= 32 || p99 >= 96 {
		return fmt.Errorf("coverage differs: p95=%d, p99=%d", p95, p99)
	}
	return nil
}
