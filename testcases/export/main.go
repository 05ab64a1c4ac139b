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

// Command export writes the test case definitions, together with the
// computed offset curves and outlines, to JSON for external checking.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
	"seehuhn.de/go/offset/trail"
)

const outFile = "testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	Distance   float64       `json:"distance"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join"`
	MiterLimit float64       `json:"miter_limit"`
	Epsilon    float64       `json:"epsilon"`
	Result     []jsonSegment `json:"result"`
	Deviation  float64       `json:"deviation,omitempty"` // set if the tolerance was not met
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}

	in := trail.FromPath(tc.Path)
	var res trail.Path
	var err error
	switch op := tc.Op.(type) {
	case testcases.Offset:
		o := offset.DefaultOffsetOptions().WithJoin(op.Join).WithMiterLimit(op.MiterLimit)
		if tc.Epsilon > 0 {
			o = o.WithEpsilon(tc.Epsilon)
		}
		jtc.Op = "offset"
		jtc.Distance = op.Distance
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Epsilon = o.Epsilon
		res, err = o.OffsetPath(op.Distance, in)
	case testcases.Expand:
		o := offset.DefaultExpandOptions().WithCap(op.Cap).WithJoin(op.Join).
			WithMiterLimit(op.MiterLimit)
		if tc.Epsilon > 0 {
			o = o.WithEpsilon(tc.Epsilon)
		}
		jtc.Op = "expand"
		jtc.Distance = op.Width / 2
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Epsilon = o.Epsilon
		res, err = o.ExpandPath(op.Width/2, in)
	default:
		return jtc, fmt.Errorf("unknown operation %T", tc.Op)
	}

	var tolErr *offset.ToleranceError
	if errors.As(err, &tolErr) {
		jtc.Deviation = tolErr.Deviation
	} else if err != nil {
		return jtc, err
	}
	jtc.Result = pathToJSON(res.Data().Iter())
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
