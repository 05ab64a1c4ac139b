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

// Package offset computes offset curves of segments, trails and paths,
// and expands trails into closed stroke outlines.
//
// A positive offset distance r displaces a curve to the right-hand side of
// its direction of travel (in a y-up coordinate system), a negative
// distance to the left.  Straight segments are offset exactly.  Cubic
// Bézier segments are approximated by scaling their handles according to
// the radius of curvature, subdividing until the approximation is within
// the requested tolerance at the sample points t = 1/4, 1/2 and 3/4.
//
// Trails are offset segment by segment, and the pieces are connected by
// line joins.  Expanding a trail combines the offsets at +r and -r with
// line caps into a single closed outline, which can be filled with either
// the nonzero or the even-odd rule to obtain the stroked region.
//
// All functions operate on immutable values and are safe for concurrent
// use.
package offset

//go:generate go run ./testcases/export
