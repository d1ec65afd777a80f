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

var basicTraces = []Trace{
	{
		Name:    "dot",
		Strokes: [][]vec.Vec2{{pt(32, 32)}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "line",
		Strokes: [][]vec.Vec2{{pt(10, 32), pt(54, 32)}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "line_diagonal",
		Strokes: [][]vec.Vec2{{pt(10, 54), pt(30, 34)}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "three_points",
		Strokes: [][]vec.Vec2{{pt(10, 44), pt(32, 20), pt(54, 44)}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "four_points",
		Strokes: [][]vec.Vec2{{pt(10, 44), pt(24, 20), pt(40, 44), pt(54, 20)}},
		Width:   64,
		Height:  64,
	},
	{
		Name:    "five_points",
		Strokes: [][]vec.Vec2{{pt(8, 32), pt(20, 20), pt(32, 32), pt(44, 44), pt(56, 32)}},
		Width:   64,
		Height:  64,
	},
	{
		Name: "jitter",
		Strokes: [][]vec.Vec2{{
			pt(10, 32), pt(10.5, 32.5), pt(11, 31), pt(20, 30),
			pt(21, 30.5), pt(30, 34), pt(30.2, 34.1), pt(40, 30), pt(54, 32),
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name: "two_strokes",
		Strokes: [][]vec.Vec2{
			{pt(10, 20), pt(30, 24), pt(54, 20)},
			{pt(10, 44), pt(30, 40), pt(54, 44)},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:    "outside",
		Strokes: [][]vec.Vec2{{pt(-10, 32), pt(20, 32), pt(50, 32), pt(80, 32)}},
		Width:   64,
		Height:  64,
	},
}
