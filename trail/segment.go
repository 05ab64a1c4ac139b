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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes straight segments from cubic Bézier segments.
type Kind uint8

const (
	KindLinear Kind = iota
	KindCubic
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is a straight line or a cubic Bézier curve, given relative to
// its own start point.  A segment has no position; use [Located] to place
// it.
//
// For linear segments only End is used.
type Segment struct {
	Kind Kind
	C1   vec.Vec2 // first control point, relative to the start
	C2   vec.Vec2 // second control point, relative to the start
	End  vec.Vec2 // end point, relative to the start
}

// Linear returns a straight segment with the given displacement.
func Linear(end vec.Vec2) Segment {
	return Segment{Kind: KindLinear, End: end}
}

// Cubic returns a cubic Bézier segment.  All arguments are relative to the
// start of the segment.
func Cubic(c1, c2, end vec.Vec2) Segment {
	return Segment{Kind: KindCubic, C1: c1, C2: c2, End: end}
}

// At returns the point at parameter t in [0, 1], relative to the start.
func (s Segment) At(t float64) vec.Vec2 {
	if s.Kind == KindLinear {
		return s.End.Mul(t)
	}
	omt := 1 - t
	// B(t) - P0 = 3(1-t)²t C1 + 3(1-t)t² C2 + t³ End
	return s.C1.Mul(3 * omt * omt * t).
		Add(s.C2.Mul(3 * omt * t * t)).
		Add(s.End.Mul(t * t * t))
}

// Derivative returns the first derivative with respect to t.
func (s Segment) Derivative(t float64) vec.Vec2 {
	if s.Kind == KindLinear {
		return s.End
	}
	omt := 1 - t
	d0 := s.C1
	d1 := s.C2.Sub(s.C1)
	d2 := s.End.Sub(s.C2)
	return d0.Mul(3 * omt * omt).Add(d1.Mul(6 * omt * t)).Add(d2.Mul(3 * t * t))
}

// SecondDerivative returns the second derivative with respect to t.
func (s Segment) SecondDerivative(t float64) vec.Vec2 {
	if s.Kind == KindLinear {
		return vec.Vec2{}
	}
	a := s.C2.Sub(s.C1.Mul(2))             // P2 - 2P1 + P0
	b := s.End.Sub(s.C2.Mul(2)).Add(s.C1) // P3 - 2P2 + P1
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// StartTangent returns a (not normalized) tangent direction at the start
// of the segment.  If the first handle has (nearly) zero length, the
// direction towards the next distinct control point is used.  The zero
// vector is returned only if all control points coincide with the start.
func (s Segment) StartTangent() vec.Vec2 {
	if s.Kind == KindLinear {
		return s.End
	}
	for _, d := range [...]vec.Vec2{s.C1, s.C2, s.End} {
		if !isZero(d) {
			return d
		}
	}
	return vec.Vec2{}
}

// EndTangent returns a (not normalized) tangent direction at the end of
// the segment, with the same fallback rules as [Segment.StartTangent].
func (s Segment) EndTangent() vec.Vec2 {
	if s.Kind == KindLinear {
		return s.End
	}
	for _, d := range [...]vec.Vec2{s.End.Sub(s.C2), s.End.Sub(s.C1), s.End} {
		if !isZero(d) {
			return d
		}
	}
	return vec.Vec2{}
}

// IsDegenerate reports whether the segment has no extent, so that no
// tangent direction is defined anywhere along it.
func (s Segment) IsDegenerate() bool {
	if s.Kind == KindLinear {
		return s.End.Length() < zeroLengthThreshold
	}
	return s.C1.Length() < zeroLengthThreshold &&
		s.C2.Length() < zeroLengthThreshold &&
		s.End.Length() < zeroLengthThreshold
}

// Split divides the segment at parameter t.  The second half is given
// relative to its own start, which is s.At(t).  The subdivision is exact
// (de Casteljau), so that the two halves together trace the original
// curve.
func (s Segment) Split(t float64) (Segment, Segment) {
	if s.Kind == KindLinear {
		m := s.End.Mul(t)
		return Linear(m), Linear(s.End.Sub(m))
	}

	p1, p2, p3 := s.C1, s.C2, s.End
	p01 := lerp(vec.Vec2{}, p1, t)
	p12 := lerp(p1, p2, t)
	p23 := lerp(p2, p3, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	mid := lerp(p012, p123, t)

	first := Cubic(p01, p012, mid)
	second := Cubic(p123.Sub(mid), p23.Sub(mid), p3.Sub(mid))
	return first, second
}

// Reverse returns the segment traversed in the opposite direction,
// relative to its new start (the old end point).
func (s Segment) Reverse() Segment {
	if s.Kind == KindLinear {
		return Linear(s.End.Mul(-1))
	}
	return Cubic(s.C2.Sub(s.End), s.C1.Sub(s.End), s.End.Mul(-1))
}

// Transform applies the linear part of m to the segment.  The translation
// part of m is ignored, since segments have no position.
func (s Segment) Transform(m matrix.Matrix) Segment {
	s.C1 = applyLinear(m, s.C1)
	s.C2 = applyLinear(m, s.C2)
	s.End = applyLinear(m, s.End)
	return s
}

func (s Segment) String() string {
	if s.Kind == KindLinear {
		return fmt.Sprintf("Linear(%g,%g)", s.End.X, s.End.Y)
	}
	return fmt.Sprintf("Cubic(%g,%g %g,%g %g,%g)",
		s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
}

// Perp returns v rotated by -90°.  For a segment running in direction v,
// Perp(v) points to the right-hand side in a y-up coordinate system.
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

// Cross returns the z-component of the cross product of a and b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Unit returns v scaled to length 1, and false if v has (nearly) zero
// length.
func Unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func isZero(v vec.Vec2) bool {
	return v.Length() < zeroLengthThreshold
}

// applyLinear applies only the 2×2 linear part of m to a vector.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// applyAffine applies m, including its translation part, to a point.
func applyAffine(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	q := applyLinear(m, p)
	q.X += m[4]
	q.Y += m[5]
	return q
}

// zeroLengthThreshold is the length below which vectors are treated as
// zero when a direction is needed.
const zeroLengthThreshold = 1e-10
