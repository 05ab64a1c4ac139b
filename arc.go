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

package offset

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/trail"
)

// arcTrail returns a circular arc around center, from the point from to
// the point to.  If ccw is true, the arc runs counter-clockwise (in a y-up
// coordinate system), otherwise clockwise.  The radius is |from-center|.
// The arc is made of cubic Bézier pieces spanning at most 90° each, and
// the last piece ends exactly at to.
//
// If from and to coincide, the empty trail is returned.  If the arc is too
// small to have a well-defined direction, a straight line is returned.
func arcTrail(center, from, to vec.Vec2, ccw bool) trail.Trail {
	if from == to {
		return trail.Trail{}
	}
	line := trail.FromSegments(trail.Linear(to.Sub(from)))

	u := from.Sub(center)
	v := to.Sub(center)
	radius := u.Length()
	if radius < zeroLength || v.Length() < zeroLength || to.Sub(from).Length() < zeroLength {
		return line
	}

	sweep := math.Atan2(trail.Cross(u, v), u.Dot(v))
	if ccw && sweep <= 0 {
		sweep += 2 * math.Pi
	} else if !ccw && sweep >= 0 {
		sweep -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	startDir := u.Mul(1 / radius)
	segs := make([]trail.Segment, 0, n)
	cur := from
	for i := range n {
		a0 := sweep * float64(i) / float64(n)
		a1 := sweep * float64(i+1) / float64(n)
		segs = append(segs, arcPiece(center, radius, startDir, a0, a1, &cur, i == n-1, to))
	}
	return trail.FromSegments(segs...)
}

// arcPiece returns one cubic piece of an arc, from angle a0 to angle a1
// relative to startDir.  The piece starts at *cur, which is advanced to
// the end of the piece.  If last is true, the piece ends at target.
func arcPiece(center vec.Vec2, radius float64, startDir vec.Vec2, a0, a1 float64, cur *vec.Vec2, last bool, target vec.Vec2) trail.Segment {
	k := 4.0 / 3.0 * math.Tan((a1-a0)/4) * radius

	d0 := rotate(startDir, a0)
	d1 := rotate(startDir, a1)
	p3 := center.Add(d1.Mul(radius))
	if last {
		p3 = target
	}

	// tangents of a counter-clockwise circle are the radii rotated by 90°
	c1 := center.Add(d0.Mul(radius)).Add(vec.Vec2{X: -d0.Y, Y: d0.X}.Mul(k))
	c2 := p3.Sub(vec.Vec2{X: -d1.Y, Y: d1.X}.Mul(k))

	p0 := *cur
	*cur = p3
	return trail.Cubic(c1.Sub(p0), c2.Sub(p0), p3.Sub(p0))
}

// circleTrail returns a closed circle of the given radius around center,
// starting at the point center + startDir*radius.
func circleTrail(center vec.Vec2, radius float64, startDir vec.Vec2, ccw bool) trail.Trail {
	sweep := 2 * math.Pi
	if !ccw {
		sweep = -sweep
	}
	start := center.Add(startDir.Mul(radius))
	segs := make([]trail.Segment, 0, 4)
	cur := start
	for i := range 4 {
		a0 := sweep * float64(i) / 4
		a1 := sweep * float64(i+1) / 4
		segs = append(segs, arcPiece(center, radius, startDir, a0, a1, &cur, i == 3, start))
	}
	return trail.Loop(segs...)
}

// rotate returns the unit vector dir rotated by angle (positive = CCW).
func rotate(dir vec.Vec2, angle float64) vec.Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return vec.Vec2{
		X: dir.X*cos - dir.Y*sin,
		Y: dir.X*sin + dir.Y*cos,
	}
}

// zeroLength is the length below which distances are treated as zero.
const zeroLength = 1e-10
