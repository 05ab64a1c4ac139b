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

// Package trail implements positionless segments and trails, and the
// [Located] wrapper which gives them a position in the plane.
package trail

import (
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Positionless is implemented by geometry which is given relative to its
// own start point.
type Positionless[T any] interface {
	// Displacement returns the end point relative to the start point.
	Displacement() vec.Vec2

	// Reverse returns the same geometry traversed backwards.
	Reverse() T

	// Transform applies the linear part of an affine transformation.
	Transform(m matrix.Matrix) T
}

// Located binds a positionless value to a base point.  Translating a
// Located value only moves the base point; the payload is never changed.
type Located[T Positionless[T]] struct {
	Base  vec.Vec2
	Value T
}

// At places v at the given base point.
func At[T Positionless[T]](v T, base vec.Vec2) Located[T] {
	return Located[T]{Base: base, Value: v}
}

// Start returns the absolute start point.
func (l Located[T]) Start() vec.Vec2 {
	return l.Base
}

// End returns the absolute end point.
func (l Located[T]) End() vec.Vec2 {
	return l.Base.Add(l.Value.Displacement())
}

// Translate moves the value by v.
func (l Located[T]) Translate(v vec.Vec2) Located[T] {
	return Located[T]{Base: l.Base.Add(v), Value: l.Value}
}

// Rebase moves the value so that it starts at p.
func (l Located[T]) Rebase(p vec.Vec2) Located[T] {
	return Located[T]{Base: p, Value: l.Value}
}

// Reverse returns the value traversed backwards, based at the old end
// point.
func (l Located[T]) Reverse() Located[T] {
	return Located[T]{Base: l.End(), Value: l.Value.Reverse()}
}

// Transform applies the affine transformation m to the located value.
func (l Located[T]) Transform(m matrix.Matrix) Located[T] {
	return Located[T]{Base: applyAffine(m, l.Base), Value: l.Value.Transform(m)}
}

// Displacement returns the end point of the segment relative to its start.
func (s Segment) Displacement() vec.Vec2 {
	return s.End
}

// Trail is a chain of segments where each segment starts at the end of the
// previous one.  A closed trail (a loop) ends where it started; if the
// segments do not return to the start point, a straight closing segment
// is implied.
type Trail struct {
	Segments []Segment
	Closed   bool
}

// FromSegments returns an open trail consisting of the given segments.
func FromSegments(segs ...Segment) Trail {
	return Trail{Segments: segs}
}

// Loop returns a closed trail consisting of the given segments.
func Loop(segs ...Segment) Trail {
	return Trail{Segments: segs, Closed: true}
}

// IsEmpty reports whether the trail has no segments.
func (t Trail) IsEmpty() bool {
	return len(t.Segments) == 0
}

// LoopSegments returns the segments of the trail.  For closed trails, the
// implied closing segment is included.
func (t Trail) LoopSegments() []Segment {
	if !t.Closed {
		return t.Segments
	}
	d := t.sum()
	if d.Length() < zeroLengthThreshold {
		return t.Segments
	}
	segs := make([]Segment, len(t.Segments), len(t.Segments)+1)
	copy(segs, t.Segments)
	return append(segs, Linear(d.Mul(-1)))
}

// Displacement returns the end point of the trail relative to its start.
// This is zero for closed trails.
func (t Trail) Displacement() vec.Vec2 {
	if t.Closed {
		return vec.Vec2{}
	}
	return t.sum()
}

func (t Trail) sum() vec.Vec2 {
	var d vec.Vec2
	for _, s := range t.Segments {
		d = d.Add(s.End)
	}
	return d
}

// Vertices returns the absolute start points of all segments, followed by
// the end point of the last segment.  For closed trails the implied
// closing segment is included, so that the first and last vertex coincide.
func (t Trail) Vertices(base vec.Vec2) []vec.Vec2 {
	segs := t.LoopSegments()
	res := make([]vec.Vec2, 0, len(segs)+1)
	p := base
	res = append(res, p)
	for _, s := range segs {
		p = p.Add(s.End)
		res = append(res, p)
	}
	if t.Closed && len(segs) > 0 {
		res[len(res)-1] = base
	}
	return res
}

// LocatedSegments splits the trail, placed at base, into segments which
// are each based at the corresponding trail vertex.
func (t Trail) LocatedSegments(base vec.Vec2) []Located[Segment] {
	segs := t.LoopSegments()
	verts := t.Vertices(base)
	res := make([]Located[Segment], len(segs))
	for i, s := range segs {
		res[i] = At(s, verts[i])
	}
	return res
}

// Reverse returns the trail traversed backwards.  The reversed trail
// starts at the end point of t.
func (t Trail) Reverse() Trail {
	segs := t.LoopSegments()
	rev := make([]Segment, len(segs))
	for i, s := range segs {
		rev[len(segs)-1-i] = s.Reverse()
	}
	return Trail{Segments: rev, Closed: t.Closed}
}

// Transform applies the linear part of m to every segment.
func (t Trail) Transform(m matrix.Matrix) Trail {
	segs := make([]Segment, len(t.Segments))
	for i, s := range t.Segments {
		segs[i] = s.Transform(m)
	}
	return Trail{Segments: segs, Closed: t.Closed}
}

// Concat returns the open trail formed by t followed by all of others.
// Closed trails contribute their closing segment.
func (t Trail) Concat(others ...Trail) Trail {
	n := len(t.Segments) + 1
	for _, o := range others {
		n += len(o.Segments) + 1
	}
	segs := make([]Segment, 0, n)
	segs = append(segs, t.LoopSegments()...)
	for _, o := range others {
		segs = append(segs, o.LoopSegments()...)
	}
	return Trail{Segments: segs}
}

// Close returns a closed copy of t.
func (t Trail) Close() Trail {
	return Trail{Segments: t.Segments, Closed: true}
}

// StartTangent returns the tangent direction at the start of the first
// non-degenerate segment, or the zero vector if there is none.
func (t Trail) StartTangent() vec.Vec2 {
	for _, s := range t.LoopSegments() {
		if !s.IsDegenerate() {
			return s.StartTangent()
		}
	}
	return vec.Vec2{}
}

// EndTangent returns the tangent direction at the end of the last
// non-degenerate segment, or the zero vector if there is none.
func (t Trail) EndTangent() vec.Vec2 {
	segs := t.LoopSegments()
	for i := len(segs) - 1; i >= 0; i-- {
		if !segs[i].IsDegenerate() {
			return segs[i].EndTangent()
		}
	}
	return vec.Vec2{}
}

func (t Trail) String() string {
	var b strings.Builder
	if t.Closed {
		b.WriteString("Loop[")
	} else {
		b.WriteString("Trail[")
	}
	for i, s := range t.Segments {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("]")
	return b.String()
}

// Path is a collection of independently positioned trails.
type Path []Located[Trail]

// Translate moves every trail of the path by v.
func (p Path) Translate(v vec.Vec2) Path {
	res := make(Path, len(p))
	for i, lt := range p {
		res[i] = lt.Translate(v)
	}
	return res
}

// Transform applies the affine transformation m to every trail.
func (p Path) Transform(m matrix.Matrix) Path {
	res := make(Path, len(p))
	for i, lt := range p {
		res[i] = lt.Transform(m)
	}
	return res
}
