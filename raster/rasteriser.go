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

// Package raster fills signature outlines into RGBA images.
//
// The [Rasteriser] computes anti-aliased pixel coverage for a path and
// reports it row by row.  [Painter] and [VectorPainter] use coverage to
// composite a coloured outline onto an [image.RGBA].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the path goes down along this edge, -1 if up
}

// Rasteriser converts paths to pixel coverage values, ranging from 0
// (outside) to 1 (inside).  The internal buffers are reused between calls,
// so that a long-lived Rasteriser does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64

	cover  []float32 // per-pixel change of the winding number
	area   []float32 // per-pixel partial coverage
	edges  []edge
	active []int // indices into edges, for the current scanline

	// device-space bounding box of the edges
	bboxEmpty bool
	bxMin     float64
	bxMax     float64
	byMin     float64
	byMax     float64
}

// NewRasteriser returns a Rasteriser with the identity transformation and
// the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default transformation and flatness and sets a new
// clip rectangle.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Coverage is passed
// to emit one row at a time; the slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  Coverage is passed to emit
// one row at a time; the slice is only valid during the call.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	if p == nil {
		return
	}
	xMin, xMax, yMin, yMax, ok := r.buildEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which end above this scanline
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}

		if rule == nonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// buildEdges flattens p into device-space edges and returns the pixel
// bounding box of the edges, clipped to r.Clip.
func (r *Rasteriser) buildEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start) // implicitly close the previous subpath
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device-space length of the user-space vector v,
// ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// addEdge adds the user-space segment from a to b.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p0 := r.toDevice(a)
	p1 := r.toDevice(b)

	if math.Abs(p1.Y-p0.Y) < horizontalEdgeThreshold {
		return // horizontal edges don't change the winding number
	}

	dir := float32(1)
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	})

	lo, hi := min(p0.X, p1.X), max(p0.X, p1.X)
	if r.bboxEmpty {
		r.bxMin, r.bxMax = lo, hi
		r.byMin, r.byMax = p0.Y, p1.Y
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, lo)
	r.bxMax = max(r.bxMax, hi)
	r.byMin = min(r.byMin, p0.Y)
	r.byMax = max(r.byMax, p1.Y)
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	// deviation of the curve from its chord: (p0 - 2 p1 + p2) / 4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// flattenCube approximates a cubic Bézier curve by line segments.  The
// number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// Coverage model:
//
// For every pixel of a scanline we record
//   - cover: the signed height of all edge pieces inside the pixel column;
//     this changes the winding number for all pixels to the right, and
//   - area: the part of the signed height which falls into the pixel
//     itself, weighted by the fraction of the pixel right of the edge.
//
// Integrating from left to right, the coverage of pixel i is the running
// sum of cover[0:i] plus area[i].

// accumulate adds the contribution of the part of e inside the scanline
// [top, bottom) to the cover and area buffers.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	yA := max(top, e.y0)
	yB := min(bottom, e.y1)
	if yB <= yA {
		return
	}

	xA := e.x0 + e.dxdy*(yA-e.y0)
	xB := e.x0 + e.dxdy*(yB-e.y0)
	left, right := min(xA, xB), max(xA, xB)
	first := int(math.Floor(left))
	last := int(math.Floor(right))

	if last < xMin {
		// left of the bounding box: covers the whole row
		h := e.dir * float32(yB-yA)
		r.cover[0] += h
		r.area[0] += h
		return
	}
	if first >= xMax {
		return
	}

	if first == last {
		r.addPiece(first, yA, yB, e, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy

	// The part left of the bounding box changes the winding number for the
	// whole row, so it is added in one piece.
	if first < xMin {
		yEdge := e.y0 + dydx*(float64(xMin)-e.x0)
		lo, hi := yA, min(yEdge, yB)
		if xA > xB {
			lo, hi = max(yEdge, yA), yB
		}
		if hi > lo {
			h := e.dir * float32(hi-lo)
			r.cover[0] += h
			r.area[0] += h
		}
		first = xMin
	}
	// pieces right of the bounding box don't affect any pixel
	last = min(last, xMax-1)

	// split the edge at pixel column boundaries
	for col := first; col <= last; col++ {
		yL := e.y0 + dydx*(float64(col)-e.x0)
		yR := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(yL, yR), yA)
		hi := min(max(yL, yR), yB)
		if hi > lo {
			r.addPiece(col, lo, hi, e, xMin, xMax)
		}
	}
}

// addPiece records the part of e between heights lo and hi, which lies
// inside pixel column col.
func (r *Rasteriser) addPiece(col int, lo, hi float64, e *edge, xMin, xMax int) {
	h := e.dir * float32(hi-lo)
	switch {
	case col < xMin:
		r.cover[0] += h
		r.area[0] += h
	case col < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := float32(xMid - float64(col))
		i := col - xMin
		r.cover[i] += h
		r.area[i] += h * (1 - frac)
	}
}

// integrateNonZero turns the cover and area buffers into coverage values,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		c := acc + area[i]
		acc += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// integrateEvenOdd turns the cover and area buffers into coverage values,
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		c := acc + area[i]
		acc += cover[i]
		if c < 0 {
			c = -c
		}
		c -= 2 * float32(int(c/2))
		if c > 1 {
			c = 2 - c
		}
		cover[i] = c
	}
}

// trimZeros strips leading and trailing zeros from coverage.
// If all values are zero, nil is returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10
)
