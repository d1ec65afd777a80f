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

var curveTraces = []Trace{
	{
		Name:    "circle",
		Strokes: [][]vec.Vec2{sample(41, circle(48, 48, 30))},
		Width:   96,
		Height:  96,
	},
	{
		Name:    "circle_dense",
		Strokes: [][]vec.Vec2{sample(121, circle(48, 48, 30))},
		Width:   96,
		Height:  96,
	},
	{
		Name: "spiral",
		Strokes: [][]vec.Vec2{sample(80, func(t float64) vec.Vec2 {
			phi := 6 * math.Pi * t
			r := 4 + 36*t
			return pt(48+r*math.Cos(phi), 48+r*math.Sin(phi))
		})},
		Width:  96,
		Height: 96,
	},
	{
		Name: "wave",
		Strokes: [][]vec.Vec2{sample(50, func(t float64) vec.Vec2 {
			return pt(8+112*t, 32+18*math.Sin(4*math.Pi*t))
		})},
		Width:  128,
		Height: 64,
	},
	{
		Name: "hairpin",
		Strokes: [][]vec.Vec2{{
			pt(10, 50), pt(20, 30), pt(30, 12), pt(34, 10), pt(38, 12),
			pt(48, 30), pt(58, 50),
		}},
		Width:  64,
		Height: 64,
	},
}

// sample evaluates f at n equally spaced parameter values in [0, 1].
func sample(n int, f func(t float64) vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		res[i] = f(float64(i) / float64(n-1))
	}
	return res
}

// circle returns a parametrisation of a full circle.
func circle(cx, cy, r float64) func(float64) vec.Vec2 {
	return func(t float64) vec.Vec2 {
		phi := 2 * math.Pi * t
		return pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
}
