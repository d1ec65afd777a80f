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

package signature

import (
	"image/color"

	"seehuhn.de/go/signature/raster"
	"seehuhn.de/go/signature/segment"
)

// Option configures a Model.
type Option func(*options)

type options struct {
	painter   Painter
	color     color.Color
	params    segment.Params
	scale     float64
	maxPixels int
}

func defaultOptions() options {
	return options{
		color:     color.Black,
		params:    segment.DefaultParams,
		scale:     1,
		maxPixels: DefaultMaxPixels,
	}
}

// DefaultMaxPixels is the default limit for the number of pixels of the
// signature image.
const DefaultMaxPixels = 64 << 20

// WithPainter sets the rasterizer used to fill outlines.  The default is a
// [raster.Painter].  Use a [raster.VectorPainter] to render with
// golang.org/x/image/vector instead.
func WithPainter(p Painter) Option {
	return func(o *options) {
		o.painter = p
	}
}

// WithColor sets the initial signature colour.  The default is black.
func WithColor(c color.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithParams sets the weight and distance constants used to turn points
// into outlines.
func WithParams(p segment.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithScale sets the number of image pixels per canvas unit.  Points and
// canvas sizes are given in canvas units.  For example, use 2 on a screen
// with two device pixels per point.  Values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithMaxPixels limits the size of the signature image.  Operations which
// would need a larger image leave the signature unchanged.  Use 0 for no
// limit.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		o.maxPixels = max(n, 0)
	}
}

// newPainter returns the default painter.
func newPainter() Painter {
	return raster.NewPainter()
}
