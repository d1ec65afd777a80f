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

package testcases

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrInvalidTrace is returned by ReadJSON for malformed traces.
var ErrInvalidTrace = errors.New("testcases: invalid trace")

// jsonTrace is the JSON representation of a Trace.  Points are written as
// [x, y] pairs.
type jsonTrace struct {
	Name    string         `json:"name"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Strokes [][][2]float64 `json:"strokes"`
}

// WriteJSON writes the trace to w.
func (t *Trace) WriteJSON(w io.Writer) error {
	jt := jsonTrace{
		Name:    t.Name,
		Width:   t.Width,
		Height:  t.Height,
		Strokes: make([][][2]float64, len(t.Strokes)),
	}
	for i, stroke := range t.Strokes {
		pts := make([][2]float64, len(stroke))
		for j, p := range stroke {
			pts[j] = [2]float64{p.X, p.Y}
		}
		jt.Strokes[i] = pts
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jt)
}

// ReadJSON reads a trace written by WriteJSON.
func ReadJSON(r io.Reader) (*Trace, error) {
	var jt jsonTrace
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return nil, fmt.Errorf("testcases: decode trace: %w", err)
	}
	if jt.Width < 0 || jt.Height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidTrace, jt.Width, jt.Height)
	}

	t := &Trace{
		Name:    jt.Name,
		Width:   jt.Width,
		Height:  jt.Height,
		Strokes: make([][]vec.Vec2, len(jt.Strokes)),
	}
	for i, stroke := range jt.Strokes {
		pts := make([]vec.Vec2, len(stroke))
		for j, p := range stroke {
			if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
				return nil, fmt.Errorf("%w: stroke %d, point %d", ErrInvalidTrace, i, j)
			}
			pts[j] = vec.Vec2{X: p[0], Y: p[1]}
		}
		t.Strokes[i] = pts
	}
	return t, nil
}
