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

// Package outline builds closed, fillable shapes which approximate a line
// of varying thickness through up to four weighted points.
//
// The shapes are meant to be filled with the nonzero winding rule.  The
// thickness is part of the geometry, so the shapes must never be stroked.
package outline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// WeightedPoint is a point on a signature line together with the local
// line thickness at this point.
type WeightedPoint struct {
	Pos    vec.Vec2
	Weight float64 // line thickness (diameter), >= 0
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// Dot returns a circle centred at p.Pos with radius p.Weight.
func Dot(p WeightedPoint) *path.Data {
	c := p.Pos
	r := p.Weight
	k := r * kappa

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + k}, vec.Vec2{X: c.X + k, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
		CubeTo(vec.Vec2{X: c.X - k, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + k}, vec.Vec2{X: c.X - r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - k}, vec.Vec2{X: c.X - k, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
		CubeTo(vec.Vec2{X: c.X + k, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - k}, vec.Vec2{X: c.X + r, Y: c.Y}).
		Close()
}

// Line returns a quadrilateral ("ribbon") from a to b.  The ribbon has
// width a.Weight at a and width b.Weight at b.
func Line(a, b WeightedPoint) *path.Data {
	a0, a1 := Perpendicular(a.Pos, b.Pos, a.Pos, a.Weight)
	b0, b1 := Perpendicular(a.Pos, b.Pos, b.Pos, b.Weight)

	return (&path.Data{}).
		MoveTo(a0).
		LineTo(b0).
		LineTo(b1).
		LineTo(a1).
		Close()
}

// QuadCurve returns the outline of a quadratic Bézier curve from a to c
// with control point b.
//
// At b, the two ribbon edges use the average of the perpendiculars of the
// segments a→b and b→c, so that the edges do not have a kink there.
func QuadCurve(a, b, c WeightedPoint) *path.Data {
	a0, a1 := Perpendicular(a.Pos, b.Pos, a.Pos, a.Weight)
	b0, b1 := joinPerpendicular(a.Pos, b, c.Pos)
	c0, c1 := Perpendicular(b.Pos, c.Pos, c.Pos, c.Weight)

	return (&path.Data{}).
		MoveTo(a0).
		QuadTo(b0, c0).
		LineTo(c1).
		QuadTo(b1, a1).
		Close()
}

// BezierCurve returns the outline of a cubic Bézier curve from a to d with
// control points b and c.
func BezierCurve(a, b, c, d WeightedPoint) *path.Data {
	a0, a1 := Perpendicular(a.Pos, b.Pos, a.Pos, a.Weight)
	b0, b1 := joinPerpendicular(a.Pos, b, c.Pos)
	c0, c1 := joinPerpendicular(b.Pos, c, d.Pos)
	d0, d1 := Perpendicular(c.Pos, d.Pos, d.Pos, d.Weight)

	return (&path.Data{}).
		MoveTo(a0).
		CubeTo(b0, c0, d0).
		LineTo(d1).
		CubeTo(c1, b1, a1).
		Close()
}

// ForWindow returns the outline for the first len(pts) points of a
// segment window: a dot for one point, a line for two, a quadratic curve
// for three and a cubic curve for four.  For any other length, nil is
// returned.
func ForWindow(pts []WeightedPoint) *path.Data {
	switch len(pts) {
	case 1:
		return Dot(pts[0])
	case 2:
		return Line(pts[0], pts[1])
	case 3:
		return QuadCurve(pts[0], pts[1], pts[2])
	case 4:
		return BezierCurve(pts[0], pts[1], pts[2], pts[3])
	default:
		return nil
	}
}

// Perpendicular returns the end points of a segment of length w, centred
// at p, which is perpendicular to the line from a to b.  The start point
// lies on the left of a→b (90° counter-clockwise), the end point on the
// right.
//
// If w is zero or a equals b, both end points are p.
func Perpendicular(a, b, p vec.Vec2, w float64) (start, end vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if w == 0 || l == 0 {
		return p, p
	}
	d = d.Mul(w / (2 * l))
	n := vec.Vec2{X: -d.Y, Y: d.X}
	return p.Add(n), p.Sub(n)
}

// joinPerpendicular returns the perpendicular at an interior point q, as
// the average of the perpendiculars of the incoming segment prev→q and the
// outgoing segment q→next.
func joinPerpendicular(prev vec.Vec2, q WeightedPoint, next vec.Vec2) (start, end vec.Vec2) {
	in0, in1 := Perpendicular(prev, q.Pos, q.Pos, q.Weight)
	out0, out1 := Perpendicular(q.Pos, next, q.Pos, q.Weight)
	return Midpoint(in0, out0), Midpoint(in1, out1)
}

// Midpoint returns the point half way between a and b.
func Midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}
