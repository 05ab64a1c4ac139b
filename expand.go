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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset/trail"
)

// ExpandTrail computes the outline of a trail stroked with line width
// 2|r|, using the default options.
func ExpandTrail(r float64, lt trail.Located[trail.Trail]) (trail.Located[trail.Trail], error) {
	return DefaultExpandOptions().ExpandTrail(r, lt)
}

// ExpandPath expands every trail in p, using the default options.
func ExpandPath(r float64, p trail.Path) (trail.Path, error) {
	return DefaultExpandOptions().ExpandPath(r, p)
}

// ExpandTrail computes the outline of a trail stroked with line width
// 2|r|.  The result is a single closed trail.
//
// For an open trail, the outline consists of the start cap, the offset
// at +r, the end cap, and the reversed offset at -r.  The outline starts
// at the start point of the offset at -r.
//
// A closed trail has no ends.  Here the two offsets are connected by a
// pair of coincident straight lines, which cancel each other when the
// outline is filled, so that the filled outline is the ring between the
// two offsets.
//
// A trail without extent expands to a circle if round caps are selected,
// and to the empty trail otherwise.
func (o ExpandOptions) ExpandTrail(r float64, lt trail.Located[trail.Trail]) (trail.Located[trail.Trail], error) {
	if err := o.Validate(); err != nil {
		return trail.Located[trail.Trail]{}, err
	}
	tol := &toleranceTracker{eps: o.Epsilon}
	res, err := o.expandTrail(r, lt, o.joinFunc(), o.capFunc(), tol)
	if err != nil {
		return res, err
	}
	return res, tol.err()
}

// ExpandPath expands every trail in p.  Trails without extent and without
// round caps are omitted from the result.
func (o ExpandOptions) ExpandPath(r float64, p trail.Path) (trail.Path, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	tol := &toleranceTracker{eps: o.Epsilon}
	join, capFn := o.joinFunc(), o.capFunc()
	res := make(trail.Path, 0, len(p))
	for i, lt := range p {
		outline, err := o.expandTrail(r, lt, join, capFn, tol)
		if err != nil {
			return nil, fmt.Errorf("trail %d: %w", i, err)
		}
		if outline.Value.IsEmpty() {
			continue
		}
		res = append(res, outline)
	}
	Logger().Debug("expand path", "r", r, "trails", len(p), "outlines", len(res))
	return res, tol.err()
}

func (o ExpandOptions) expandTrail(r float64, lt trail.Located[trail.Trail], join JoinFunc, capFn CapFunc, tol *toleranceTracker) (trail.Located[trail.Trail], error) {
	fwd, err := o.offsetTrail(r, lt, join, tol)
	if err != nil {
		return trail.Located[trail.Trail]{}, err
	}
	if fwd.Value.IsEmpty() {
		return o.expandPoint(r, lt.Base), nil
	}
	bwd, err := o.offsetTrail(-r, lt, join, tol)
	if err != nil {
		return trail.Located[trail.Trail]{}, err
	}

	if lt.Value.Closed {
		capFn = ButtCap
	}
	startCap := capFn(r, lt.Start(), bwd.Start(), fwd.Start())
	endCap := capFn(r, lt.End(), fwd.End(), bwd.End())
	back := bwd.Reverse()

	outline := startCap.Concat(fwd.Value, endCap, back.Value).Close()
	return trail.At(outline, bwd.Start()), nil
}

// expandPoint returns the outline of a trail without extent at p.
func (o ExpandOptions) expandPoint(r float64, p vec.Vec2) trail.Located[trail.Trail] {
	if o.Cap != graphics.LineCapRound || r == 0 {
		return trail.At(trail.Trail{}, p)
	}
	startDir := vec.Vec2{X: 0, Y: -1}
	radius := math.Abs(r)
	circle := circleTrail(p, radius, startDir, r >= 0)
	return trail.At(circle, p.Add(startDir.Mul(radius)))
}
