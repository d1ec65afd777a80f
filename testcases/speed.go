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

import "seehuhn.de/go/geom/vec"

// Slow pen movement gives closely spaced points and a wide line, fast
// movement gives a thin line.
var speedTraces = []Trace{
	{
		Name:    "slow",
		Strokes: [][]vec.Vec2{spaced(pt(8, 32), pt(1, 0), 3, 0, 40)},
		Width:   128,
		Height:  64,
	},
	{
		Name:    "fast",
		Strokes: [][]vec.Vec2{spaced(pt(8, 32), pt(1, 0), 28, 0, 5)},
		Width:   128,
		Height:  64,
	},
	{
		Name:    "accelerating",
		Strokes: [][]vec.Vec2{spaced(pt(4, 32), pt(1, 0), 2.5, 1.25, 14)},
		Width:   160,
		Height:  64,
	},
	{
		Name:    "very_fast",
		Strokes: [][]vec.Vec2{spaced(pt(4, 60), pt(0.8, -0.6), 60, 0, 3)},
		Width:   128,
		Height:  64,
	},
}

// spaced returns n points along the direction dir, which must be a unit
// vector.  The first step has length step, each following step is longer
// by grow.
func spaced(start, dir vec.Vec2, step, grow float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	p := start
	d := step
	for i := range n {
		res[i] = p
		p = p.Add(dir.Mul(d))
		d += grow
	}
	return res
}
