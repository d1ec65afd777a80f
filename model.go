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

// Package signature renders signatures from touch input.
//
// Points are turned into closed outlines of varying width by package
// segment.  A [Model] keeps all finalized outlines in a raster image and
// the outline of the segment which is still being drawn as a vector path.
// Each completed segment is rasterized exactly once, so the cost per
// point does not grow with the length of the signature.
//
// A Model is not safe for concurrent use.  Package async provides a
// wrapper which runs a Model on a background goroutine.
package signature

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/segment"
)

// Painter fills outlines into images.
type Painter interface {
	// Fill composites p, transformed by ctm and filled with c using the
	// nonzero winding rule, onto dst.
	Fill(dst *image.RGBA, p *path.Data, ctm matrix.Matrix, c color.Color) error
}

// ErrCanvasTooLarge is reported when the signature image would exceed the
// configured pixel limit.
var ErrCanvasTooLarge = errors.New("signature: canvas too large")

// Model holds the state of a signature: an image with all finalized
// segments, and the outline of the segment currently being drawn.
//
// Images returned by a Model are never modified afterwards.
type Model struct {
	ctrl    *segment.Controller
	painter Painter

	size      image.Point // canvas size, in canvas units
	scale     float64     // pixels per canvas unit
	color     color.NRGBA
	maxPixels int

	committed *image.RGBA // finalized segments, nil if empty
	pending   *path.Data  // the open segment, nil if none
	full      *image.RGBA // cached committed+pending, nil if not rendered
}

// New returns a Model for a canvas of the given size.
func New(size image.Point, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.painter == nil {
		o.painter = newPainter()
	}

	m := &Model{
		painter:   o.painter,
		size:      clampSize(size),
		scale:     o.scale,
		color:     color.NRGBAModel.Convert(o.color).(color.NRGBA),
		maxPixels: o.maxPixels,
	}
	m.ctrl = segment.New(o.params, m.handle)
	return m
}

// AddPoint adds a point to the current signature line.
func (m *Model) AddPoint(p vec.Vec2) {
	m.ctrl.AddPoint(p)
}

// EndContinuousLine ends the current line, as when the pen is lifted.
// The open segment becomes part of the signature image.
func (m *Model) EndContinuousLine() {
	if m.pending != nil {
		m.commit(m.pending)
	}
	m.ctrl.Reset()
}

// Reset clears the signature.
func (m *Model) Reset() {
	m.committed = nil
	m.full = nil
	m.ctrl.Reset()
}

// Size returns the canvas size.
func (m *Model) Size() image.Point {
	return m.size
}

// SetSize changes the canvas size.  The current line is ended first.
// Existing content keeps its position relative to the top-left corner and
// is not scaled; content outside the new canvas is discarded.  If the new
// image cannot be allocated, the size is left unchanged.
func (m *Model) SetSize(size image.Point) {
	size = clampSize(size)
	if size == m.size {
		return
	}
	m.EndContinuousLine()

	old, oldSize := m.committed, m.size
	m.size = size
	m.full = nil
	if old != nil {
		img, err := m.newCanvas()
		if err != nil {
			m.size = oldSize
			Logger().Warn("cannot resize signature image", "error", err)
			return
		}
		if img != nil {
			xdraw.Copy(img, image.Point{}, old, old.Bounds(), draw.Src, nil)
		}
		m.committed = img
	}
	Logger().Debug("canvas resized", "width", size.X, "height", size.Y)
}

// Color returns the colour used for new segments.
func (m *Model) Color() color.NRGBA {
	return m.color
}

// SetColor sets the colour used for new segments.
func (m *Model) SetColor(c color.Color) {
	m.color = color.NRGBAModel.Convert(c).(color.NRGBA)
	m.full = nil
}

// SeedImage adds img to the signature image, below all existing content.
// The image is scaled to fill the canvas.  This can be used to continue
// editing a previously saved signature.
func (m *Model) SeedImage(img image.Image) {
	if img == nil {
		return
	}
	canvas, err := m.newCanvas()
	if err != nil {
		Logger().Warn("cannot add image to signature", "error", err)
		return
	}
	if canvas == nil {
		return
	}

	b := canvas.Bounds()
	if img.Bounds().Size() == b.Size() {
		xdraw.Copy(canvas, image.Point{}, img, img.Bounds(), draw.Src, nil)
	} else {
		xdraw.CatmullRom.Scale(canvas, b, img, img.Bounds(), draw.Src, nil)
	}
	if m.committed != nil {
		xdraw.Copy(canvas, image.Point{}, m.committed, m.committed.Bounds(), draw.Over, nil)
	}
	Logger().Debug("seed image added", "bounds", img.Bounds())

	m.committed = canvas
	m.full = nil
}

// FullImage returns the complete signature, including the open segment.
// If the signature is empty, nil is returned.
func (m *Model) FullImage() *image.RGBA {
	if m.pending == nil {
		return m.committed
	}
	if m.full != nil {
		return m.full
	}

	img, err := m.render(m.committed, m.pending)
	if err != nil {
		Logger().Warn("cannot render signature", "error", err)
		return nil
	}
	m.full = img
	return img
}

// Committed returns the image of all finalized segments, or nil if there
// are none.
func (m *Model) Committed() *image.RGBA {
	return m.committed
}

// Pending returns the outline of the open segment, or nil.
func (m *Model) Pending() *path.Data {
	return m.pending
}

// IsEmpty reports whether nothing has been drawn.
func (m *Model) IsEmpty() bool {
	return m.committed == nil && m.pending == nil
}

// handle receives outlines from the segment controller.
func (m *Model) handle(e segment.Event) {
	switch e.Kind {
	case segment.Temporary:
		m.onTemporary(e.Outline)
	case segment.Finalized:
		Logger().Debug("segment finalized", "end", e.Points[e.N-1].Pos)
		m.onFinalized(e.Outline)
	}
}

// onTemporary replaces the outline of the open segment.
func (m *Model) onTemporary(p *path.Data) {
	m.pending = p
	m.full = nil
}

// onFinalized merges a completed segment into the committed image.
func (m *Model) onFinalized(p *path.Data) {
	m.commit(p)
}

// commit draws p into the committed image.  On failure, the committed
// image is left unchanged.
func (m *Model) commit(p *path.Data) {
	img, err := m.render(m.committed, p)
	if err != nil {
		Logger().Warn("cannot add segment to signature", "error", err)
		return
	}
	if img != nil {
		m.committed = img
		m.full = nil
	}
}

// render returns a new image with p drawn over base.  If the canvas is
// empty or there is nothing to draw, nil is returned.
func (m *Model) render(base *image.RGBA, p *path.Data) (*image.RGBA, error) {
	if base == nil && p == nil {
		return nil, nil
	}
	img, err := m.newCanvas()
	if err != nil || img == nil {
		return nil, err
	}

	if base != nil {
		if base.Bounds() == img.Bounds() {
			copy(img.Pix, base.Pix)
		} else {
			xdraw.Copy(img, image.Point{}, base, base.Bounds(), draw.Src, nil)
		}
	}
	if p != nil {
		ctm := matrix.Scale(m.scale, m.scale)
		if err := m.painter.Fill(img, p, ctm, m.color); err != nil {
			return nil, fmt.Errorf("signature: fill outline: %w", err)
		}
	}
	return img, nil
}

// newCanvas allocates a transparent image for the current canvas size.
// For an empty canvas, nil is returned.
func (m *Model) newCanvas() (*image.RGBA, error) {
	w := int(math.Round(float64(m.size.X) * m.scale))
	h := int(math.Round(float64(m.size.Y) * m.scale))
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	if m.maxPixels > 0 && w*h > m.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrCanvasTooLarge, w, h)
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func clampSize(s image.Point) image.Point {
	return image.Point{X: max(s.X, 0), Y: max(s.Y, 0)}
}
