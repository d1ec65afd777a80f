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

package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/signature"
	"seehuhn.de/go/signature/testcases"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#000000", color.NRGBA{A: 255}, true},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}, true},
		{"#0000ff80", color.NRGBA{B: 255, A: 128}, true},
		{"000000", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parseColor(%q): error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	traceFile := filepath.Join(dir, "trace.json")
	outFile := filepath.Join(dir, "out.png")

	tr := testcases.All["signature"][0]
	f, err := os.Create(traceFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteJSON(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	opts := []signature.Option{signature.WithScale(2)}
	if err := run(context.Background(), traceFile, "", outFile, opts); err != nil {
		t.Fatal(err)
	}

	f, err = os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	want := image.Rect(0, 0, 2*tr.Width, 2*tr.Height)
	if img.Bounds() != want {
		t.Errorf("bounds = %v, want %v", img.Bounds(), want)
	}
}
