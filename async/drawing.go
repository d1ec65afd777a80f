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

package async

import (
	"context"
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature"
)

// Output holds the two layers of a signature, for display.
type Output struct {
	// Committed is the image of all finalized segments, or nil.
	Committed *image.RGBA

	// Pending is the outline of the segment currently being drawn, or nil.
	// It uses canvas coordinates.
	Pending *path.Data

	// CommittedChanged and PendingChanged report whether the layers differ
	// from the ones passed to the previous Output callback.
	CommittedChanged bool
	PendingChanged   bool
}

// Option configures a Drawing.
type Option func(*Drawing)

// WithEmptyFunc sets a function which is called whenever the signature
// becomes empty or non-empty.  The function runs on the worker goroutine.
func WithEmptyFunc(fn func(empty bool)) Option {
	return func(d *Drawing) {
		d.onEmpty = fn
	}
}

// Drawing runs a signature.Model on a background goroutine.
//
// Methods which change the signature return as soon as the change is
// queued.  Methods which take a context wait for the worker.
//
// Drawing is safe for concurrent use.
type Drawing struct {
	q       *Queue
	onEmpty func(bool)

	// The following fields are only accessed by the worker.
	m             *signature.Model
	empty         bool
	lastCommitted *image.RGBA
	lastPending   *path.Data
}

// NewDrawing starts a worker for m.  After this call, m must only be
// accessed through the returned Drawing.
func NewDrawing(m *signature.Model, opts ...Option) *Drawing {
	d := &Drawing{
		q:     NewQueue(),
		m:     m,
		empty: m.IsEmpty(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Close waits for all queued work and stops the worker.
func (d *Drawing) Close() {
	d.q.Close()
}

// AddPoint queues a point for the current line.
func (d *Drawing) AddPoint(p vec.Vec2) error {
	return d.submit(func() { d.m.AddPoint(p) })
}

// EndContinuousLine queues the end of the current line.
func (d *Drawing) EndContinuousLine() error {
	return d.submit(d.m.EndContinuousLine)
}

// SetSize queues a change of the canvas size.
func (d *Drawing) SetSize(size image.Point) error {
	return d.submit(func() { d.m.SetSize(size) })
}

// SetColor queues a change of the signature colour.
func (d *Drawing) SetColor(c color.Color) error {
	return d.submit(func() { d.m.SetColor(c) })
}

// Reset discards all queued work which has not started yet, and then clears
// the signature.
func (d *Drawing) Reset(ctx context.Context) error {
	n := d.q.Cancel()
	if n > 0 {
		signature.Logger().Debug("queued work discarded", "tasks", n)
	}
	return d.do(ctx, d.m.Reset)
}

// SeedImage adds img below the current signature.
// See [signature.Model.SeedImage].
func (d *Drawing) SeedImage(ctx context.Context, img image.Image) error {
	return d.do(ctx, func() { d.m.SeedImage(img) })
}

// FullImage returns the complete signature, once all queued work is done.
func (d *Drawing) FullImage(ctx context.Context) (*image.RGBA, error) {
	var img *image.RGBA
	err := d.q.Do(ctx, func() { img = d.m.FullImage() })
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Size returns the canvas size, once all queued work is done.
func (d *Drawing) Size(ctx context.Context) (image.Point, error) {
	var size image.Point
	err := d.q.Do(ctx, func() { size = d.m.Size() })
	return size, err
}

// Color returns the signature colour, once all queued work is done.
func (d *Drawing) Color(ctx context.Context) (color.NRGBA, error) {
	var c color.NRGBA
	err := d.q.Do(ctx, func() { c = d.m.Color() })
	return c, err
}

// Output queues a call to fn with the current layers.  The call happens
// on the worker goroutine, after all previously queued work.  fn must not
// wait for other methods of d.
func (d *Drawing) Output(fn func(Output)) error {
	return d.q.Submit(func() {
		out := Output{
			Committed: d.m.Committed(),
			Pending:   d.m.Pending(),
		}
		out.CommittedChanged = out.Committed != d.lastCommitted
		out.PendingChanged = out.Pending != d.lastPending
		d.lastCommitted = out.Committed
		d.lastPending = out.Pending
		fn(out)
	})
}

func (d *Drawing) submit(fn func()) error {
	return d.q.Submit(func() {
		fn()
		d.checkEmpty()
	})
}

func (d *Drawing) do(ctx context.Context, fn func()) error {
	return d.q.Do(ctx, func() {
		fn()
		d.checkEmpty()
	})
}

func (d *Drawing) checkEmpty() {
	empty := d.m.IsEmpty()
	if empty == d.empty {
		return
	}
	d.empty = empty
	if d.onEmpty != nil {
		d.onEmpty(empty)
	}
}
