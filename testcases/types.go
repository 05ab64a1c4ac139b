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

// Package testcases contains named geometry cases for offsetting and
// stroke expansion.  The cases are shared by the unit tests, the
// benchmarks and the export/genpdf tools.
//
// Coordinates use a top-left origin with the y-axis pointing down, in a
// canvas of Width × Height units.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single offset or expansion test.
type TestCase struct {
	Name    string    // lowercase a-z and _ only
	Path    path.Path // the input geometry
	Width   int       // canvas width
	Height  int       // canvas height
	Op      Operation // offset or expand
	Epsilon float64   // offset tolerance (zero means the library default)
}

// Operation is the geometric operation to apply to the path.
type Operation interface {
	isOperation()
}

// Offset specifies a one-sided offset of every trail in the path.
type Offset struct {
	Distance   float64                // signed, positive is to the right
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

func (Offset) isOperation() {}

// Expand specifies the conversion of a stroke into its outline.
type Expand struct {
	Width      float64                // line width (>0), twice the offset distance
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

func (Expand) isOperation() {}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
