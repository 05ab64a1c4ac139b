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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var cornerCases = []TestCase{
	{
		Name:   "miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
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
		Name:   "round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
	{
		// the miter ratio of a 10° corner is about 11.5
		Name:   "acute_miter_limited",
		Path:   cornerAngle(8, 32, 40, 32, 10),
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
		Name:   "acute_miter",
		Path:   cornerAngle(8, 32, 40, 32, 10),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 12,
		},
	},
	{
		Name:   "offset_outer_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: -4, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "offset_inner",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Offset{Distance: 4, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "zigzag",
		Path:   zigzagPath(8, 32, 56, 10),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      6,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 4,
		},
	},
	{
		Name:   "spiral",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      3,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "reversal",
		Path:   corner(10, 32, 54, 32, 20, 32),
		Width:  64,
		Height: 64,
		Op: Expand{
			Width:      8,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}

// cornerAngle builds two line segments of equal length meeting at (cx, cy),
// with the given angle between them.  The first segment arrives
// horizontally from the left.
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) path.Path {
	length := cx - x1
	phi := angleDeg * math.Pi / 180
	x3 := cx - length*math.Cos(phi)
	y3 := cy - length*math.Sin(phi)
	return corner(x1, y1, cx, cy, x3, y3)
}

// zigzagPath builds a zigzag pattern where adjacent thick strokes overlap.
func zigzagPath(x1, cy, x2, amplitude float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		segments := 5
		width := x2 - x1
		segWidth := width / float64(segments)

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: cy}}) {
			return
		}

		for i := 1; i <= segments; i++ {
			x := x1 + float64(i)*segWidth
			var y float64
			if i%2 == 1 {
				y = cy - amplitude
			} else {
				y = cy + amplitude
			}
			if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}}) {
				return
			}
		}
	}
}

// spiralPath builds an Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8) // 32 segments per turn

		totalAngle := turns * 2 * math.Pi
		rGrowth := (rMax - rMin) / totalAngle

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rMin, Y: cy}}) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * totalAngle
			r := rMin + rGrowth*angle
			p := vec.Vec2{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}
