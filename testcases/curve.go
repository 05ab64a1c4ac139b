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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:   "cubic_offset",
		Path:   cubicCurveOpen(8, 48, 20, 8, 44, 8, 56, 48).Iter(),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "cubic_offset_outside",
		Path:   cubicCurveOpen(8, 48, 20, 8, 44, 8, 56, 48).Iter(),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: -4, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "cubic_round",
		Path:   cubicCurveOpen(8, 48, 20, 8, 44, 8, 56, 48).Iter(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "quadratic",
		Path:   quadraticCurveOpen(8, 52, 32, 4, 56, 52).Iter(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      5,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "s_curve",
		Path:   sCurve(8, 32, 56, 32).Iter(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		// the inner offset distance exceeds the radius of curvature
		Name:   "tight_u_turn",
		Path:   tightCurve(32, 32, 8),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      20,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:    "coarse_tolerance",
		Path:    cubicCurveOpen(8, 48, 8, 8, 56, 8, 56, 48).Iter(),
		Width:   64,
		Height:  64,
		Epsilon: 0.5,
		Op: Expand{
			Width:      10,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:    "fine_tolerance",
		Path:    cubicCurveOpen(8, 48, 8, 8, 56, 8, 56, 48).Iter(),
		Width:   64,
		Height:  64,
		Epsilon: 1e-6,
		Op: Expand{
			Width:      10,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      3,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurve builds an open S-shaped path from two quadratic Bezier curves.
func sCurve(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))      // second quadratic curves down
}

// tightCurve builds a U-shaped curve where the inner radius is small
// relative to the stroke width.
func tightCurve(cx, cy, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		r := size
		k := r * kappa

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx - r, Y: cy - size}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: cx - r, Y: cy}}) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{
			{X: cx - r, Y: cy + k},
			{X: cx - k, Y: cy + r},
			{X: cx, Y: cy + r},
		}) {
			return
		}
		if !yield(path.CmdCubeTo, []vec.Vec2{
			{X: cx + k, Y: cy + r},
			{X: cx + r, Y: cy + k},
			{X: cx + r, Y: cy},
		}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: cx + r, Y: cy - size}})
	}
}

// mixedLinesCurves builds an open path alternating straight and curved
// pieces, with smooth and sharp vertices.
func mixedLinesCurves() path.Path {
	return (&path.Data{}).
		MoveTo(pt(8, 56)).
		LineTo(pt(8, 32)).
		CubeTo(pt(8, 16), pt(24, 8), pt(32, 8)).
		LineTo(pt(44, 8)).
		QuadTo(pt(56, 8), pt(56, 20)).
		CubeTo(pt(56, 40), pt(32, 28), pt(40, 56)).
		Iter()
}
