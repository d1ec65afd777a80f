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
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/signature/segment"
)

func TestNames(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+$`)
	seen := make(map[string]bool)
	for category, traces := range All {
		for _, tc := range traces {
			if !valid.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate trace %s", name)
			}
			seen[name] = true
			if tc.Width <= 0 || tc.Height <= 0 || tc.NumPoints() == 0 {
				t.Errorf("%s: empty trace", name)
			}
		}
	}
}

func TestJSON(t *testing.T) {
	for _, tc := range All["signature"] {
		buf := &bytes.Buffer{}
		if err := tc.WriteJSON(buf); err != nil {
			t.Fatal(err)
		}
		got, err := ReadJSON(buf)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != tc.Name || got.Width != tc.Width || got.Height != tc.Height {
			t.Errorf("%s: header mismatch: %+v", tc.Name, got)
		}
		if got.NumPoints() != tc.NumPoints() || len(got.Strokes) != len(tc.Strokes) {
			t.Errorf("%s: points lost", tc.Name)
		}
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"name":"x","width":-1,"height":10,"strokes":[]}`))
	if !errors.Is(err, ErrInvalidTrace) {
		t.Errorf("negative width: got %v", err)
	}
	_, err = ReadJSON(strings.NewReader(`{"strokes": 7}`))
	if err == nil {
		t.Error("malformed input accepted")
	}
}

func TestOutlines(t *testing.T) {
	tc := Trace{
		Strokes: [][]vec.Vec2{
			{pt(0, 0)},
			{pt(0, 0), pt(10, 0), pt(20, 0), pt(30, 0), pt(40, 0), pt(50, 0)},
		},
	}
	// one dot, then one finalized segment and the remaining line
	if n := len(tc.Outlines(segment.DefaultParams)); n != 3 {
		t.Errorf("got %d outlines, want 3", n)
	}
}
