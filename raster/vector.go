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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// VectorPainter fills outlines using golang.org/x/image/vector.
// It gives the same results as Painter, up to small differences in
// anti-aliasing.  The zero value is ready to use.
//
// A VectorPainter is not safe for concurrent use.
type VectorPainter struct {
	r *vector.Rasterizer
}

// Fill composites p, transformed by ctm and filled with c, onto dst.
// A zero ctm is treated as the identity.
func (vp *VectorPainter) Fill(dst *image.RGBA, p *path.Data, ctm matrix.Matrix, c color.Color) error {
	if dst == nil {
		return ErrNoDestination
	}
	b := dst.Bounds()
	if p == nil || b.Empty() {
		return nil
	}
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	if vp.r == nil {
		vp.r = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		vp.r.Reset(b.Dx(), b.Dy())
	}
	vp.r.DrawOp = draw.Over

	// vector.Rasterizer coordinates are relative to b.Min
	pos := func(v vec.Vec2) (float32, float32) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4] - float64(b.Min.X)
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5] - float64(b.Min.Y)
		return float32(x), float32(y)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			x, y := pos(p.Coords[k])
			vp.r.MoveTo(x, y)
			k++
		case path.CmdLineTo:
			x, y := pos(p.Coords[k])
			vp.r.LineTo(x, y)
			k++
		case path.CmdQuadTo:
			x1, y1 := pos(p.Coords[k])
			x2, y2 := pos(p.Coords[k+1])
			vp.r.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := pos(p.Coords[k])
			x2, y2 := pos(p.Coords[k+1])
			x3, y3 := pos(p.Coords[k+2])
			vp.r.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			vp.r.ClosePath()
		}
	}

	vp.r.Draw(dst, b, image.NewUniform(c), image.Point{})
	return nil
}
