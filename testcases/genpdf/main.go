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

// Command genpdf generates preview images for the test cases.
// For every case it writes a PDF which shows the computed outline or
// offset curve, with the input path drawn as a hairline on top, and a PNG
// coverage mask of the filled outline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/coverage"
	"seehuhn.de/go/offset/testcases"
	"seehuhn.de/go/offset/trail"
)

func main() {
	outDir := flag.String("o", "testdata/preview", "output directory")
	scale := flag.Int("scale", 4, "PNG pixels per unit")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			res, fill, err := compute(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, res, fill, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if fill {
				if err := generatePNG(tc, res, *scale, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// compute applies the operation of tc.  The second return value tells
// whether the result is an outline to be filled, rather than a curve.
func compute(tc testcases.TestCase) (trail.Path, bool, error) {
	in := trail.FromPath(tc.Path)

	var res trail.Path
	var fill bool
	var err error
	switch op := tc.Op.(type) {
	case testcases.Offset:
		o := offset.DefaultOffsetOptions().WithJoin(op.Join).WithMiterLimit(op.MiterLimit)
		if tc.Epsilon > 0 {
			o = o.WithEpsilon(tc.Epsilon)
		}
		res, err = o.OffsetPath(op.Distance, in)
	case testcases.Expand:
		o := offset.DefaultExpandOptions().WithCap(op.Cap).WithJoin(op.Join).
			WithMiterLimit(op.MiterLimit)
		if tc.Epsilon > 0 {
			o = o.WithEpsilon(tc.Epsilon)
		}
		res, err = o.ExpandPath(op.Width/2, in)
		fill = true
	default:
		return nil, false, fmt.Errorf("unknown operation %T", tc.Op)
	}
	if errors.Is(err, offset.ErrToleranceNotMet) {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", tc.Name, err)
		err = nil
	}
	return res, fill, err
}

func generatePDF(tc testcases.TestCase, res trail.Path, fill bool, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// Set paint parameters before path construction (PDF requirement)
	if len(res) > 0 {
		if fill {
			page.SetFillColor(color.DeviceGray(0.75))
			drawPath(page, res.Data().Iter())
			page.Fill()
		} else {
			page.SetStrokeColor(color.DeviceGray(0.4))
			page.SetLineWidth(1)
			drawPath(page, res.Data().Iter())
			page.Stroke()
		}
	}

	// input geometry as a hairline
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0)
	drawPath(page, tc.Path)
	page.Stroke()

	return page.Close()
}

// pathBuilder is implemented by the PDF page writer.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p.ToCubic() {
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
}

func generatePNG(tc testcases.TestCase, res trail.Path, scale int, pngPath string) error {
	s := float64(scale)
	img := coverage.Render(res, matrix.Scale(s, s), tc.Width*scale, tc.Height*scale)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
