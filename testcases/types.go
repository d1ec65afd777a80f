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

// Package testcases contains recorded signature traces for tests and
// reference images.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/segment"
)

// Trace is a recorded signature.
type Trace struct {
	Name    string       // lowercase a-z, 0-9 and _ only
	Width   int          // canvas width
	Height  int          // canvas height
	Strokes [][]vec.Vec2 // the points of each continuous line
}

// Sink receives the points of a trace.
// This is implemented by *signature.Model.
type Sink interface {
	AddPoint(p vec.Vec2)
	EndContinuousLine()
}

// Replay sends all points of the trace to s.
func (t *Trace) Replay(s Sink) {
	for _, stroke := range t.Strokes {
		for _, p := range stroke {
			s.AddPoint(p)
		}
		s.EndContinuousLine()
	}
}

// Outlines returns the outlines of all segments which make up the
// signature, in drawing order.
func (t *Trace) Outlines(params segment.Params) []*path.Data {
	var res []*path.Data
	var pending *path.Data
	c := segment.New(params, func(e segment.Event) {
		switch e.Kind {
		case segment.Finalized:
			res = append(res, e.Outline)
		case segment.Temporary:
			pending = e.Outline
		}
	})
	for _, stroke := range t.Strokes {
		for _, p := range stroke {
			c.AddPoint(p)
		}
		if pending != nil {
			res = append(res, pending)
		}
		c.Reset()
	}
	return res
}

// NumPoints returns the total number of points in the trace.
func (t *Trace) NumPoints() int {
	n := 0
	for _, stroke := range t.Strokes {
		n += len(stroke)
	}
	return n
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
