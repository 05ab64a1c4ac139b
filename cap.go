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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset/trail"
)

// A CapFunc closes the end of an expanded trail.  The cap runs from the
// point from to the point to, which both lie at distance |r| from center.
// The returned trail must start at from and end at to.
type CapFunc func(r float64, center, from, to vec.Vec2) trail.Trail

// ButtCap connects the two end points by a straight line.
func ButtCap(_ float64, _, from, to vec.Vec2) trail.Trail {
	if from == to {
		return trail.Trail{}
	}
	return trail.FromSegments(trail.Linear(to.Sub(from)))
}

// RoundCap connects the two end points by a half circle around center.
// The arc runs counter-clockwise for r >= 0 and clockwise for r < 0.
func RoundCap(r float64, center, from, to vec.Vec2) trail.Trail {
	return arcTrail(center, from, to, r >= 0)
}

// SquareCap extends both end points outward by |r|, perpendicular to the
// line from center to from, and connects them.  The resulting square
// covers the same side as the arc of [RoundCap].
func SquareCap(r float64, center, from, to vec.Vec2) trail.Trail {
	v := trail.Perp(center.Sub(from))
	if r < 0 {
		v = v.Mul(-1)
	}
	if v == (vec.Vec2{}) {
		return ButtCap(r, center, from, to)
	}
	return trail.FromSegments(
		trail.Linear(v),
		trail.Linear(to.Sub(from)),
		trail.Linear(v.Mul(-1)),
	)
}

// capFunc returns the CapFunc selected by o.Cap.
func (o ExpandOptions) capFunc() CapFunc {
	switch o.Cap {
	case graphics.LineCapRound:
		return RoundCap
	case graphics.LineCapSquare:
		return SquareCap
	default:
		return ButtCap
	}
}
