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

package trail

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FromData converts path data into a Path.  See [FromPath].
func FromData(d *path.Data) Path {
	if d == nil {
		return nil
	}
	return FromPath(d.Iter())
}

// FromPath converts a path into a collection of located trails, one for
// each subpath.  Quadratic Bézier curves are converted to cubics.
// Subpaths without drawing commands are dropped, as are drawing commands
// before the first MoveTo.  Drawing commands after a ClosePath without an
// intervening MoveTo start a new subpath at the start point of the closed
// one.
func FromPath(p path.Path) Path {
	var res Path

	var current vec.Vec2 // current point
	var start vec.Vec2   // subpath start
	var segs []Segment
	inSubpath := false

	flush := func(closed bool) {
		if len(segs) > 0 {
			t := Trail{Segments: segs, Closed: closed}
			res = append(res, At(t, start))
		}
		segs = nil
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			segs = append(segs, Linear(pts[0].Sub(current)))
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			segs = append(segs, quadToCubic(pts[0].Sub(current), pts[1].Sub(current)))
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			segs = append(segs, Cubic(pts[0].Sub(current), pts[1].Sub(current), pts[2].Sub(current)))
			current = pts[2]

		case path.CmdClose:
			if inSubpath {
				flush(true)
				current = start
			}
		}
	}
	flush(false)

	return res
}

// quadToCubic raises a quadratic Bézier (relative to its start) to degree
// three.  The conversion is exact.
func quadToCubic(q, end vec.Vec2) Segment {
	c1 := q.Mul(2.0 / 3.0)
	c2 := end.Add(q.Sub(end).Mul(2.0 / 3.0))
	return Cubic(c1, c2, end)
}

// Data converts the path into path data.  Closed trails are terminated
// with a ClosePath command.
func (p Path) Data() *path.Data {
	d := &path.Data{}
	for _, lt := range p {
		cur := lt.Base
		d = d.MoveTo(cur)
		for _, s := range lt.Value.Segments {
			switch s.Kind {
			case KindLinear:
				d = d.LineTo(cur.Add(s.End))
			case KindCubic:
				d = d.CubeTo(cur.Add(s.C1), cur.Add(s.C2), cur.Add(s.End))
			}
			cur = cur.Add(s.End)
		}
		if lt.Value.Closed {
			d = d.Close()
		}
	}
	return d
}

// Bounds returns a rectangle which contains all points and control points
// of the path.  The zero rectangle is returned for an empty path.
func (p Path) Bounds() rect.Rect {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	add := func(q vec.Vec2) {
		xMin = min(xMin, q.X)
		xMax = max(xMax, q.X)
		yMin = min(yMin, q.Y)
		yMax = max(yMax, q.Y)
	}
	for _, lt := range p {
		cur := lt.Base
		add(cur)
		for _, s := range lt.Value.Segments {
			if s.Kind == KindCubic {
				add(cur.Add(s.C1))
				add(cur.Add(s.C2))
			}
			cur = cur.Add(s.End)
			add(cur)
		}
	}
	if xMin > xMax {
		return rect.Rect{}
	}
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}
