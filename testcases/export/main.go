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

// Command export writes all traces as JSON files, for use with sigrender
// and other tools.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/signature/testcases"
)

func main() {
	dir := flag.String("d", filepath.Join("testdata", "traces"), "output directory")
	flag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			fname := filepath.Join(dir, tc.Name+".json")
			if err := writeTrace(fname, &tc); err != nil {
				return fmt.Errorf("%s: %w", tc.Name, err)
			}
			slog.Info("trace written", "file", fname, "points", tc.NumPoints())
		}
	}
	return nil
}

func writeTrace(fname string, tc *testcases.Trace) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := tc.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
