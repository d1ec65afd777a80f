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
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// ErrNoDestination is returned when a painter is asked to fill into a nil
// image.
var ErrNoDestination = errors.New("raster: no destination image")

// Painter fills outlines into RGBA images, using a Rasteriser for
// coverage.  The zero value is ready to use.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	// Flatness overrides the default curve flattening tolerance, if
	// positive.
	Flatness float64

	r *Rasteriser
}

// NewPainter returns a new Painter.
func NewPainter() *Painter {
	return &Painter{}
}

// Fill composites p, transformed by ctm and filled with c using the
// nonzero winding rule, onto dst.  A zero ctm is treated as the identity.
// If p is nil, dst is left unchanged.
func (pt *Painter) Fill(dst *image.RGBA, p *path.Data, ctm matrix.Matrix, c color.Color) error {
	if dst == nil {
		return ErrNoDestination
	}
	if p == nil || dst.Bounds().Empty() {
		return nil
	}
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return nil
	}

	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if pt.r == nil {
		pt.r = NewRasteriser(clip)
	} else {
		pt.r.Reset(clip)
	}
	if ctm != (matrix.Matrix{}) {
		pt.r.CTM = ctm
	}
	if pt.Flatness > 0 {
		pt.r.Flatness = pt.Flatness
	}

	pt.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		pix := dst.Pix[dst.PixOffset(xMin, y):]
		for i, cov := range coverage {
			blendOver(pix[4*i:4*i+4], cr, cg, cb, ca, cov)
		}
	})
	return nil
}

// blendOver composites the premultiplied 16-bit colour (r, g, b, a),
// scaled by coverage, over the RGBA pixel px.
func blendOver(px []uint8, r, g, b, a uint32, coverage float32) {
	m := uint32(coverage*0xffff + 0.5)
	if m == 0 {
		return
	}
	sa := a * m / 0xffff
	inv := 0xffff - sa
	px[0] = uint8((r*m/0xffff + uint32(px[0])*0x101*inv/0xffff) >> 8)
	px[1] = uint8((g*m/0xffff + uint32(px[1])*0x101*inv/0xffff) >> 8)
	px[2] = uint8((b*m/0xffff + uint32(px[2])*0x101*inv/0xffff) >> 8)
	px[3] = uint8((sa + uint32(px[3])*0x101*inv/0xffff) >> 8)
}
