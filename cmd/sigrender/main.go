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

// Command sigrender renders a recorded signature trace to a PNG file.
//
// Usage:
//
//	sigrender [flags] trace.json
//
// Traces use the JSON format written by testcases/export.  Use "-" to
// read the trace from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"seehuhn.de/go/signature"
	"seehuhn.de/go/signature/async"
	"seehuhn.de/go/signature/raster"
	"seehuhn.de/go/signature/testcases"
)

func main() {
	var (
		output  = flag.String("o", "signature.png", "output file")
		col     = flag.String("color", "#000000", "signature colour, as #rrggbb or #rrggbbaa")
		scale   = flag.Float64("scale", 1, "pixels per canvas unit")
		seed    = flag.String("seed", "", "PNG or JPEG image to draw the signature on")
		painter = flag.String("painter", "coverage", "rasterizer: coverage or vector")
		verbose = flag.Bool("v", false, "log rendering details")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] trace.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		signature.SetLogger(slog.New(h))
	}

	c, err := parseColor(*col)
	if err != nil {
		fatal(err)
	}
	opts := []signature.Option{
		signature.WithColor(c),
		signature.WithScale(*scale),
	}
	switch *painter {
	case "coverage":
		// default
	case "vector":
		opts = append(opts, signature.WithPainter(&raster.VectorPainter{}))
	default:
		fatal(fmt.Errorf("unknown painter %q", *painter))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), *seed, *output, opts); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, traceFile, seedFile, outFile string, opts []signature.Option) error {
	tr, err := readTrace(traceFile)
	if err != nil {
		return err
	}

	m := signature.New(image.Pt(tr.Width, tr.Height), opts...)
	d := async.NewDrawing(m, async.WithEmptyFunc(func(empty bool) {
		signature.Logger().Debug("signature state changed", "empty", empty)
	}))
	defer d.Close()

	if seedFile != "" {
		img, err := readImage(seedFile)
		if err != nil {
			return err
		}
		if err := d.SeedImage(ctx, img); err != nil {
			return err
		}
	}

	for _, stroke := range tr.Strokes {
		for _, p := range stroke {
			if err := d.AddPoint(p); err != nil {
				return err
			}
		}
		if err := d.EndContinuousLine(); err != nil {
			return err
		}
	}

	img, err := d.FullImage(ctx)
	if err != nil {
		return err
	}
	if img == nil {
		return errors.New("nothing to render")
	}
	signature.Logger().Info("signature rendered",
		"trace", tr.Name, "points", tr.NumPoints(), "size", img.Bounds().Size())

	return writePNG(outFile, img)
}

func readTrace(fname string) (*testcases.Trace, error) {
	var r io.Reader = os.Stdin
	if fname != "-" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return testcases.ReadJSON(r)
}

func readImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseColor parses colours of the form #rrggbb or #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "sigrender:", err)
	os.Exit(1)
}
