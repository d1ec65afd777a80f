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

// Package segment turns a stream of touch points into signature outlines.
//
// A [Controller] collects up to four points into a window, which describes
// one cubic Bézier segment of the signature line.  Each accepted point
// updates a temporary outline for the open segment.  When a fifth point
// arrives, the segment is finalized and a new window is started at the
// join point.
package segment

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/outline"
)

// Params holds the tuning constants of a Controller.  The defaults are
// chosen for typical touch screen resolutions.
type Params struct {
	// DotWeight is the weight of the first point of a line.
	DotWeight float64

	// MinDistance is the minimal distance between accepted points.
	// Closer points are ignored.
	MinDistance float64

	// MinWeight is the weight of long (fast) segments.
	MinWeight float64

	// MaxLength is the segment length at and above which MinWeight is used.
	MaxLength float64

	// WeightScale is the increase of the weight per unit of segment length
	// below MaxLength.
	WeightScale float64
}

// DefaultParams gives weights between 2 (segments of length 50 or more)
// and 7 (zero-length segments).
var DefaultParams = Params{
	DotWeight:   3.0,
	MinDistance: 2.0,
	MinWeight:   2.0,
	MaxLength:   50,
	WeightScale: 0.1,
}

// Weight returns the line weight for a segment from a to b.
// Longer segments, corresponding to faster pen movement, give thinner
// lines.
func (p Params) Weight(a, b vec.Vec2) float64 {
	l := b.Sub(a).Length()
	return max(0, p.MaxLength-l)*p.WeightScale + p.MinWeight
}

// WeightForSegment returns the line weight for a segment from a to b,
// using DefaultParams.
func WeightForSegment(a, b vec.Vec2) float64 {
	return DefaultParams.Weight(a, b)
}

// EventKind distinguishes the two kinds of outlines a Controller emits.
type EventKind int

const (
	// Temporary outlines describe the open segment.  Each temporary
	// outline replaces the previous one.  A nil outline means that there
	// is no open segment.
	Temporary EventKind = iota

	// Finalized outlines describe a completed segment.  They never change
	// and should be made permanent.
	Finalized
)

func (k EventKind) String() string {
	switch k {
	case Temporary:
		return "temporary"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Event is emitted by a Controller whenever an outline changes.
type Event struct {
	Kind    EventKind
	Outline *path.Data

	// Points[:N] is the window the outline was built from.
	Points [4]outline.WeightedPoint
	N      int
}

// Controller maintains the window of the segment under construction.
//
// The sink is called synchronously from AddPoint and Reset.
// A Controller is not safe for concurrent use.
type Controller struct {
	params Params
	sink   func(Event)

	window [4]outline.WeightedPoint
	n      int // number of used window slots, 0-4
}

// New returns a Controller which reports outlines to sink.
func New(params Params, sink func(Event)) *Controller {
	return &Controller{
		params: params,
		sink:   sink,
	}
}

// AddPoint adds the next point of the signature line.
func (c *Controller) AddPoint(p vec.Vec2) {
	if c.n == 0 {
		c.window[0] = outline.WeightedPoint{Pos: p, Weight: c.params.DotWeight}
		c.n = 1
		c.emit(Temporary)
		return
	}

	prev := c.window[c.n-1].Pos
	if p.Sub(prev).Length() < c.params.MinDistance {
		return
	}

	if c.n >= len(c.window) {
		// Move the end point half way towards p.  This point is shared
		// with the next segment, which makes the line continuous.
		joint := outline.Midpoint(c.window[2].Pos, p)
		c.window[3] = outline.WeightedPoint{
			Pos:    joint,
			Weight: c.params.Weight(c.window[2].Pos, joint),
		}
		c.emit(Finalized)

		c.window = [4]outline.WeightedPoint{c.window[3]}
		c.n = 1
	}

	c.window[c.n] = outline.WeightedPoint{Pos: p, Weight: c.params.Weight(prev, p)}
	c.n++
	c.emit(Temporary)
}

// Reset discards the current window.  The next point starts a new line.
func (c *Controller) Reset() {
	c.n = 0
	c.window = [4]outline.WeightedPoint{}
	if c.sink != nil {
		c.sink(Event{Kind: Temporary})
	}
}

// Params returns the constants used by c.
func (c *Controller) Params() Params {
	return c.params
}

// Len returns the number of points in the current window.
func (c *Controller) Len() int {
	return c.n
}

// Window returns a copy of the points in the current window.
func (c *Controller) Window() []outline.WeightedPoint {
	res := make([]outline.WeightedPoint, c.n)
	copy(res, c.window[:c.n])
	return res
}

func (c *Controller) emit(kind EventKind) {
	if c.sink == nil {
		return
	}
	c.sink(Event{
		Kind:    kind,
		Outline: outline.ForWindow(c.window[:c.n]),
		Points:  c.window,
		N:       c.n,
	})
}
