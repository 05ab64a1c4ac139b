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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/trail"
)

// OffsetTrail computes the offset of a located trail, using the default
// options.
func OffsetTrail(r float64, lt trail.Located[trail.Trail]) (trail.Located[trail.Trail], error) {
	return DefaultOffsetOptions().OffsetTrail(r, lt)
}

// OffsetPath computes the offset of every trail in p, using the default
// options.
func OffsetPath(r float64, p trail.Path) (trail.Path, error) {
	return DefaultOffsetOptions().OffsetPath(r, p)
}

// OffsetTrail computes the offset of a located trail.
//
// Every segment is offset individually, and consecutive offsets are
// connected using the join selected by o.Join.  For closed trails, the
// last segment is also joined to the first one, and the result is closed.
// Segments without extent are skipped.  If no segment has extent, the
// result is an empty trail located at the start of lt.
//
// If the subdivision depth limit is reached, the best approximation is
// returned together with a [*ToleranceError].
func (o OffsetOptions) OffsetTrail(r float64, lt trail.Located[trail.Trail]) (trail.Located[trail.Trail], error) {
	if err := o.Validate(); err != nil {
		return trail.Located[trail.Trail]{}, err
	}
	tol := &toleranceTracker{eps: o.Epsilon}
	res, err := o.offsetTrail(r, lt, o.joinFunc(), tol)
	if err != nil {
		return res, err
	}
	return res, tol.err()
}

// OffsetPath computes the offset of every trail in p.
func (o OffsetOptions) OffsetPath(r float64, p trail.Path) (trail.Path, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	tol := &toleranceTracker{eps: o.Epsilon}
	join := o.joinFunc()
	res := make(trail.Path, 0, len(p))
	for i, lt := range p {
		off, err := o.offsetTrail(r, lt, join, tol)
		if err != nil {
			return nil, fmt.Errorf("trail %d: %w", i, err)
		}
		res = append(res, off)
	}
	Logger().Debug("offset path", "r", r, "trails", len(p))
	return res, tol.err()
}

func (o OffsetOptions) offsetTrail(r float64, lt trail.Located[trail.Trail], join JoinFunc, tol *toleranceTracker) (trail.Located[trail.Trail], error) {
	closed := lt.Value.Closed

	var pieces []trail.Located[trail.Trail]
	var vertices []vec.Vec2
	for i, ls := range lt.Value.LocatedSegments(lt.Base) {
		if ls.Value.IsDegenerate() {
			continue
		}
		off, err := o.offsetSegment(r, ls.Value, tol)
		if err != nil {
			return trail.Located[trail.Trail]{}, fmt.Errorf("segment %d: %w", i, err)
		}
		pieces = append(pieces, off.Translate(ls.Base))
		vertices = append(vertices, ls.Base)
	}
	if len(pieces) == 0 {
		return trail.At(trail.Trail{Closed: closed}, lt.Base), nil
	}

	n := 0
	for _, p := range pieces {
		n += len(p.Value.Segments) + 2
	}
	segs := make([]trail.Segment, 0, n)
	for i, p := range pieces {
		if i > 0 {
			j := join(r, vertices[i], pieces[i-1], p)
			segs = append(segs, j.LoopSegments()...)
		}
		segs = append(segs, p.Value.Segments...)
	}
	if closed {
		j := join(r, vertices[0], pieces[len(pieces)-1], pieces[0])
		segs = append(segs, j.LoopSegments()...)
	}

	Logger().Debug("offset trail",
		"r", r, "segments", len(lt.Value.Segments), "pieces", len(segs))
	return trail.At(trail.Trail{Segments: segs, Closed: closed}, pieces[0].Base), nil
}
