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

var cuspCases = []TestCase{
	{
		// the first derivative vanishes at t=0.5
		Name:   "symmetric",
		Path:   cubicCurveOpen(12, 50, 52, 10, 12, 10, 52, 50).Iter(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "symmetric_offset",
		Path:   cubicCurveOpen(12, 50, 52, 10, 12, 10, 52, 50).Iter(),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 3, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "loop",
		Path:   cubicCurveOpen(10, 50, 60, 0, 0, 0, 50, 50).Iter(),
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
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 40),
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
		// a cubic whose handles both point back along the chord
		Name:   "collapsed_handles",
		Path:   cubicCurveOpen(10, 32, 40, 32, 24, 32, 54, 32).Iter(),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
}

// figureEight builds a closed figure-eight from two loops which cross at
// (cx, cy).
func figureEight(cx, cy, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		r := size / 2
		k := r * kappa

		topCy := cy - r/2
		botCy := cy + r/2

		pieces := [][]vec.Vec2{
			// upper loop
			{{X: cx + k, Y: cy - r/4}, {X: cx + r, Y: topCy - k/2}, {X: cx + r, Y: topCy}},
			{{X: cx + r, Y: topCy - k}, {X: cx + k, Y: topCy - r}, {X: cx, Y: topCy - r}},
			{{X: cx - k, Y: topCy - r}, {X: cx - r, Y: topCy - k}, {X: cx - r, Y: topCy}},
			{{X: cx - r, Y: topCy + k/2}, {X: cx - k, Y: cy - r/4}, {X: cx, Y: cy}},
			// lower loop, traversed in the other direction
			{{X: cx - k, Y: cy + r/4}, {X: cx - r, Y: botCy - k/2}, {X: cx - r, Y: botCy}},
			{{X: cx - r, Y: botCy + k}, {X: cx - k, Y: botCy + r}, {X: cx, Y: botCy + r}},
			{{X: cx + k, Y: botCy + r}, {X: cx + r, Y: botCy + k}, {X: cx + r, Y: botCy}},
			{{X: cx + r, Y: botCy - k/2}, {X: cx + k, Y: cy + r/4}, {X: cx, Y: cy}},
		}

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx, Y: cy}}) {
			return
		}
		for _, pts := range pieces {
			if !yield(path.CmdCubeTo, pts) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
