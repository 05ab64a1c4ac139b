// seehuhn.de/go/offset - offset curves and stroke outlines for 2D paths
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

// Command strokesvg converts the strokes in an SVG file into filled
// outlines.  The result is written as PDF, PNG or SVG, depending on the
// extension of the output file name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/coverage"
	"seehuhn.de/go/offset/svgpath"
	"seehuhn.de/go/offset/trail"
)

// flags
var (
	flagIn      string
	flagOut     string
	flagEpsilon float64
	flagWidth   float64
	flagAll     bool
	flagScale   float64
	flagVerbose bool
)

func init() {
	flag.StringVar(&flagIn, "in", "", "svg input file")
	flag.StringVar(&flagOut, "out", "out.pdf", "output file (.pdf, .png or .svg)")
	flag.Float64Var(&flagEpsilon, "eps", offset.DefaultEpsilon, "offset tolerance, in user units")
	flag.Float64Var(&flagWidth, "width", 0, "if set, override the stroke width of all shapes")
	flag.BoolVar(&flagAll, "all", false, "if set, also stroke shapes without stroke attribute")
	flag.Float64Var(&flagScale, "scale", 1, "PNG pixels per user unit")
	flag.BoolVar(&flagVerbose, "v", false, "log offset decisions to stderr")
}

func main() {
	fail := func(s string, args ...any) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()
	if flagIn == "" {
		fail("must specify -in <svg file>")
	}
	if !(flagEpsilon > 0) {
		fail("tolerance must be positive, got %g", flagEpsilon)
	}
	if !(flagScale > 0) {
		fail("scale must be positive, got %g", flagScale)
	}
	if flagVerbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		offset.SetLogger(slog.New(h))
	}

	doc, err := func() (*svgpath.Document, error) {
		f, err := os.Open(flagIn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return svgpath.Read(f)
	}()
	if err != nil {
		fail("failed to read %s: %v", flagIn, err)
	}

	var outlines trail.Path
	for i, shape := range doc.Shapes {
		if flagAll {
			shape.Stroke.Stroked = true
		}
		if flagWidth > 0 {
			shape.Stroke.Width = flagWidth
		}
		out, err := shape.Outline(flagEpsilon)
		if errors.Is(err, offset.ErrToleranceNotMet) {
			fmt.Fprintf(os.Stderr, "warning: shape %d (%s): %v\n", i, shape.Element, err)
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "shape %d (%s): %v\n", i, shape.Element, err)
			os.Exit(1)
		}
		outlines = append(outlines, out...)
	}

	viewBox := doc.ViewBox
	if viewBox.URx <= viewBox.LLx || viewBox.URy <= viewBox.LLy {
		viewBox = outlines.Bounds()
	}

	switch ext := strings.ToLower(filepath.Ext(flagOut)); ext {
	case ".pdf":
		err = writePDF(flagOut, viewBox, outlines)
	case ".png":
		err = writePNG(flagOut, viewBox, outlines, flagScale)
	case ".svg":
		err = func() error {
			f, err := os.Create(flagOut)
			if err != nil {
				return err
			}
			if err := svgpath.Write(f, viewBox, outlines); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}()
	default:
		fail("unknown output format %q", ext)
	}
	if err != nil {
		fail("failed to write %s: %v", flagOut, err)
	}
}

// writePDF writes the outlines, filled in black, on a page which
// corresponds to the SVG viewBox.
func writePDF(fname string, viewBox rect.Rect, outlines trail.Path) error {
	w := viewBox.URx - viewBox.LLx
	h := viewBox.URy - viewBox.LLy
	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// SVG coordinates have the y-axis pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, -viewBox.LLx, h + viewBox.LLy})

	page.SetFillColor(color.DeviceGray(0))
	if len(outlines) > 0 {
		for cmd, pts := range outlines.Data().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// writePNG writes a coverage mask of the outlines.
func writePNG(fname string, viewBox rect.Rect, outlines trail.Path, scale float64) error {
	width := int(math.Ceil((viewBox.URx - viewBox.LLx) * scale))
	height := int(math.Ceil((viewBox.URy - viewBox.LLy) * scale))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty image (%dx%d pixels)", width, height)
	}
	ctm := matrix.Matrix{scale, 0, 0, scale, -scale * viewBox.LLx, -scale * viewBox.LLy}
	img := coverage.Render(outlines, ctm, width, height)

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
