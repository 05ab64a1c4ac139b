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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/trail"
)

// OffsetSegment computes the offset curve of a single segment, using the
// default options with the given tolerance.
//
// The result is located relative to the start of s: its base point is the
// offset of the start point of s.  A linear segment yields a single
// linear segment of the same direction and length.  A cubic segment
// yields one or more cubic segments, which are within epsilon of the true
// offset curve at the sample points of every subdivision level.
func OffsetSegment(epsilon, r float64, s trail.Segment) (trail.Located[trail.Trail], error) {
	return DefaultOffsetOptions().WithEpsilon(epsilon).OffsetSegment(r, s)
}

// OffsetSegment computes the offset curve of a single segment.
// See the package-level function [OffsetSegment] for details.
//
// If the subdivision depth limit is reached, the best approximation is
// returned together with a [*ToleranceError].
func (o OffsetOptions) OffsetSegment(r float64, s trail.Segment) (trail.Located[trail.Trail], error) {
	if err := o.Validate(); err != nil {
		return trail.Located[trail.Trail]{}, err
	}
	tol := &toleranceTracker{eps: o.Epsilon}
	res, err := o.offsetSegment(r, s, tol)
	if err != nil {
		return res, err
	}
	return res, tol.err()
}

func (o OffsetOptions) offsetSegment(r float64, s trail.Segment, tol *toleranceTracker) (trail.Located[trail.Trail], error) {
	if s.IsDegenerate() {
		return trail.Located[trail.Trail]{}, fmt.Errorf("%w: %v", ErrInvalidSegment, s)
	}

	if s.Kind == trail.KindLinear {
		n, _ := trail.Unit(trail.Perp(s.End))
		return trail.At(trail.FromSegments(s), n.Mul(r)), nil
	}

	c := &cubicOffsetter{
		r:        r,
		eps:      o.Epsilon,
		maxDepth: o.MaxDepth,
		tol:      tol,
	}
	c.offset(s, vec.Vec2{}, 0)
	Logger().Debug("offset cubic", "r", r, "pieces", len(c.leaves))
	return c.result(), nil
}

// cubicOffsetter holds the state of the recursive offset computation for
// one cubic segment.
type cubicOffsetter struct {
	r        float64
	eps      float64
	maxDepth int
	tol      *toleranceTracker

	leaves []offsetLeaf
}

// offsetLeaf is an accepted piece of the offset curve.
type offsetLeaf struct {
	orig   trail.Segment // the piece of the original curve
	origin vec.Vec2      // start of orig, relative to the whole segment
	base   vec.Vec2      // start of the offset piece, relative to origin
	seg    trail.Segment // the offset piece
}

// offset appends pieces of the offset curve of s to c.leaves.  The point
// origin is the start of s, relative to the start of the segment passed
// to the outermost call.
func (c *cubicOffsetter) offset(s trail.Segment, origin vec.Vec2, depth int) {
	if s.IsDegenerate() {
		// tiny pieces near a cusp; the gap is bridged in result()
		return
	}

	curv := RadiusOfCurvature(s, 0.5)
	if curv.Kind != Cusp || depth >= c.maxDepth {
		factor := 1.0
		if curv.Kind == Finite {
			factor = 1 + c.r/curv.Radius
		}
		base, seg := c.candidate(s, factor)
		dev := c.deviation(s, base, seg)
		if dev <= c.eps || depth >= c.maxDepth {
			if dev > c.eps {
				c.tol.record(dev)
				Logger().Warn("offset tolerance not met",
					"epsilon", c.eps, "deviation", dev, "depth", depth)
			}
			c.leaves = append(c.leaves, offsetLeaf{
				orig:   s,
				origin: origin,
				base:   base,
				seg:    seg,
			})
			return
		}
	}

	a, b := s.Split(0.5)
	c.offset(a, origin, depth+1)
	c.offset(b, origin.Add(a.End), depth+1)
}

// candidate constructs an approximation of the offset curve of s by
// scaling the handles of s by the given factor, and moving the end points
// perpendicular to the end tangents.  The returned segment starts at
// base, relative to the start of s.
func (c *cubicOffsetter) candidate(s trail.Segment, factor float64) (base vec.Vec2, seg trail.Segment) {
	va := c.normal(s.StartTangent())
	vc := c.normal(s.EndTangent())

	end := s.End.Add(vc).Sub(va)
	c1 := s.C1.Mul(factor)
	c2 := end.Sub(s.End.Sub(s.C2).Mul(factor))
	return va, trail.Cubic(c1, c2, end)
}

// deviation returns the largest distance between the candidate and the
// true offset curve at the sample points.  If the true offset is
// undefined at a sample point, the result is +Inf.
func (c *cubicOffsetter) deviation(s trail.Segment, base vec.Vec2, seg trail.Segment) float64 {
	var worst float64
	for _, t := range sampleParams {
		d := s.Derivative(t)
		n, ok := trail.Unit(trail.Perp(d))
		if !ok {
			return math.Inf(1)
		}
		want := s.At(t).Add(n.Mul(c.r))
		got := base.Add(seg.At(t))
		worst = max(worst, got.Sub(want).Length())
	}
	return worst
}

// normal returns the offset vector for the tangent direction d.
func (c *cubicOffsetter) normal(d vec.Vec2) vec.Vec2 {
	n, _ := trail.Unit(trail.Perp(d))
	return n.Mul(c.r)
}

// result assembles the accepted pieces into a single trail.  Where
// consecutive pieces do not meet, which happens at cusps of the original
// curve, the gap is bridged by an arc around the cusp.
func (c *cubicOffsetter) result() trail.Located[trail.Trail] {
	if len(c.leaves) == 0 {
		return trail.At(trail.Trail{}, vec.Vec2{})
	}

	first := c.leaves[0]
	start := first.origin.Add(first.base)
	segs := make([]trail.Segment, 0, len(c.leaves))
	cur := start
	for _, leaf := range c.leaves {
		pieceStart := leaf.origin.Add(leaf.base)
		if gap := pieceStart.Sub(cur); gap.Length() > bridgeThreshold {
			bridge := arcTrail(leaf.origin, cur, pieceStart, c.r >= 0)
			segs = append(segs, bridge.Segments...)
		}
		segs = append(segs, leaf.seg)
		cur = pieceStart.Add(leaf.seg.End)
	}
	return trail.At(trail.FromSegments(segs...), start)
}

// sampleParams are the parameter values at which candidates are checked.
var sampleParams = [...]float64{0.25, 0.5, 0.75}

// bridgeThreshold is the smallest gap between consecutive pieces which is
// filled with an explicit bridge.
const bridgeThreshold = 1e-9
