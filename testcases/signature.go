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
	"math"

	"seehuhn.de/go/geom/vec"
)

var signatureTraces = []Trace{
	{
		Name: "loops",
		Strokes: [][]vec.Vec2{
			sample(90, func(t float64) vec.Vec2 {
				// a row of cursive loops
				phi := 8 * math.Pi * t
				return pt(16+160*t+10*math.Cos(phi+math.Pi), 40-16*math.Sin(phi))
			}),
		},
		Width:  200,
		Height: 64,
	},
	{
		Name: "initials",
		Strokes: [][]vec.Vec2{
			// J
			{pt(30, 10), pt(30, 20), pt(30, 30), pt(30, 40), pt(28, 48), pt(22, 52), pt(15, 50), pt(12, 44)},
			// V
			{pt(45, 12), pt(50, 25), pt(55, 38), pt(60, 50), pt(65, 38), pt(70, 25), pt(75, 12)},
			// underline, drawn quickly
			{pt(8, 58), pt(40, 57), pt(80, 58), pt(110, 56)},
			// full stop
			{pt(84, 50)},
		},
		Width:  120,
		Height: 64,
	},
	{
		Name: "scribble",
		Strokes: [][]vec.Vec2{
			sample(150, func(t float64) vec.Vec2 {
				phi := 2 * math.Pi * t
				return pt(64+50*math.Sin(3*phi), 64+50*math.Sin(4*phi+0.5))
			}),
		},
		Width:  128,
		Height: 128,
	},
}
