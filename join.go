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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset/trail"
)

// A JoinFunc connects the offset of one segment to the offset of the next.
// The argument vertex is the point of the original trail where the two
// segments meet, and r is the offset distance.  The returned trail must
// start at prev.End() and end at next.Start().
type JoinFunc func(r float64, vertex vec.Vec2, prev, next trail.Located[trail.Trail]) trail.Trail

// BevelJoin connects the two offset curves by a straight line.
func BevelJoin(_ float64, _ vec.Vec2, prev, next trail.Located[trail.Trail]) trail.Trail {
	d := next.Start().Sub(prev.End())
	if d == (vec.Vec2{}) {
		return trail.Trail{}
	}
	return trail.FromSegments(trail.Linear(d))
}

// RoundJoin connects the two offset curves by a circular arc of radius
// |r| around the vertex.  The arc runs counter-clockwise for r >= 0 and
// clockwise for r < 0.
func RoundJoin(r float64, vertex vec.Vec2, prev, next trail.Located[trail.Trail]) trail.Trail {
	return arcTrail(vertex, prev.End(), next.Start(), r >= 0)
}

// MiterJoin returns a JoinFunc which extends the two offset curves along
// their end tangents until they meet.  Where this is not possible, or
// where the ratio between the miter length and the line width would
// exceed limit, a bevel is used instead.  Inner corners always use a
// bevel.
func MiterJoin(limit float64) JoinFunc {
	return func(r float64, vertex vec.Vec2, prev, next trail.Located[trail.Trail]) trail.Trail {
		p, q := prev.End(), next.Start()
		t1, ok1 := trail.Unit(prev.Value.EndTangent())
		t2, ok2 := trail.Unit(next.Value.StartTangent())
		if !ok1 || !ok2 || p == q {
			return BevelJoin(r, vertex, prev, next)
		}

		sinTheta := trail.Cross(t1, t2)
		if math.Abs(sinTheta) < 1e-9 || r*sinTheta <= 0 {
			// parallel tangents, or an inner corner
			return BevelJoin(r, vertex, prev, next)
		}

		// For a turn angle theta, the miter ratio is 1/sin(phi/2), where
		// phi = pi - theta is the angle between the segments.
		cosTheta := t1.Dot(t2)
		sinHalfPhi := math.Sqrt((1 + cosTheta) / 2)
		if sinHalfPhi < 1e-9 || 1/sinHalfPhi > limit {
			return BevelJoin(r, vertex, prev, next)
		}

		s := trail.Cross(q.Sub(p), t2) / sinTheta
		if s < 0 {
			return BevelJoin(r, vertex, prev, next)
		}
		m := p.Add(t1.Mul(s))
		return trail.FromSegments(trail.Linear(m.Sub(p)), trail.Linear(q.Sub(m)))
	}
}

// joinFunc returns the JoinFunc selected by o.Join.
func (o OffsetOptions) joinFunc() JoinFunc {
	switch o.Join {
	case graphics.LineJoinRound:
		return RoundJoin
	case graphics.LineJoinBevel:
		return BevelJoin
	default:
		return MiterJoin(o.MiterLimit)
	}
}
