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
	"errors"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset/trail"
)

func checkVertices(t *testing.T, label string, lt trail.Located[trail.Trail], want []vec.Vec2) {
	t.Helper()
	got := lt.Value.Vertices(lt.Base)
	if len(got) != len(want) {
		t.Errorf("%s: got vertices %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if !near(got[i], want[i], 1e-9) {
			t.Errorf("%s: vertex %d is %v, want %v", label, i, got[i], want[i])
		}
	}
}

func TestOffsetTrailJoins(t *testing.T) {
	lt := trail.At(trail.FromSegments(trail.Linear(pt(10, 0)), trail.Linear(pt(0, 10))), vec.Vec2{})
	o := DefaultOffsetOptions()

	res, err := o.WithJoin(graphics.LineJoinMiter).OffsetTrail(1, lt)
	if err != nil {
		t.Fatal(err)
	}
	checkVertices(t, "miter", res, []vec.Vec2{pt(0, -1), pt(10, -1), pt(11, -1), pt(11, 0), pt(11, 10)})

	res, err = o.WithJoin(graphics.LineJoinBevel).OffsetTrail(1, lt)
	if err != nil {
		t.Fatal(err)
	}
	checkVertices(t, "bevel", res, []vec.Vec2{pt(0, -1), pt(10, -1), pt(11, 0), pt(11, 10)})

	res, err = o.WithJoin(graphics.LineJoinRound).OffsetTrail(1, lt)
	if err != nil {
		t.Fatal(err)
	}
	checkVertices(t, "round", res, []vec.Vec2{pt(0, -1), pt(10, -1), pt(11, 0), pt(11, 10)})
	if res.Value.Segments[1].Kind != trail.KindCubic {
		t.Errorf("round join is %v", res.Value.Segments[1])
	}

	// the inner side is bevelled even for miter joins
	res, err = o.OffsetTrail(-1, lt)
	if err != nil {
		t.Fatal(err)
	}
	checkVertices(t, "inner", res, []vec.Vec2{pt(0, 1), pt(10, 1), pt(9, 0), pt(9, 10)})
}

func TestOffsetClosedTrail(t *testing.T) {
	sq := trail.At(trail.Loop(
		trail.Linear(pt(10, 0)),
		trail.Linear(pt(0, 10)),
		trail.Linear(pt(-10, 0)),
		trail.Linear(pt(0, -10)),
	), vec.Vec2{})

	res, err := OffsetTrail(1, sq)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Value.Closed {
		t.Error("offset of a loop is not closed")
	}
	checkVertices(t, "square", res, []vec.Vec2{
		pt(0, -1), pt(10, -1), pt(11, -1), pt(11, 0),
		pt(11, 10), pt(11, 11), pt(10, 11),
		pt(0, 11), pt(-1, 11), pt(-1, 10),
		pt(-1, 0), pt(-1, -1), pt(0, -1),
	})

	// loops with an implied closing segment
	tri := trail.At(trail.Loop(trail.Linear(pt(10, 0)), trail.Linear(pt(0, 10))), pt(5, 5))
	res, err = OffsetTrail(-0.5, tri)
	if err != nil {
		t.Fatal(err)
	}
	if d := res.Value.Displacement(); d != (vec.Vec2{}) {
		t.Errorf("closed offset has displacement %v", d)
	}
}

func TestOffsetTrailSkipsDegenerate(t *testing.T) {
	lt := trail.At(trail.FromSegments(
		trail.Linear(pt(0, 0)),
		trail.Linear(pt(10, 0)),
		trail.Cubic(pt(0, 0), pt(0, 0), pt(0, 0)),
		trail.Linear(pt(10, 0)),
	), vec.Vec2{})
	res, err := OffsetTrail(2, lt)
	if err != nil {
		t.Fatal(err)
	}
	if !near(res.Start(), pt(0, -2), 1e-12) || !near(res.End(), pt(20, -2), 1e-12) {
		t.Errorf("offset runs %v→%v", res.Start(), res.End())
	}

	empty := trail.At(trail.FromSegments(trail.Linear(pt(0, 0))), pt(3, 3))
	res, err = OffsetTrail(2, empty)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Value.IsEmpty() || res.Base != pt(3, 3) {
		t.Errorf("offset of a point: %v at %v", res.Value, res.Base)
	}
}

func TestOffsetTranslation(t *testing.T) {
	lt := trail.At(trail.FromSegments(
		trail.Linear(pt(10, 0)),
		testCubics[0],
		trail.Linear(pt(0, -20)),
	), pt(1, 2))
	shift := pt(-7, 31)

	a, err := OffsetTrail(3, lt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := OffsetTrail(3, lt.Translate(shift))
	if err != nil {
		t.Fatal(err)
	}
	if !near(b.Base, a.Base.Add(shift), 1e-12) {
		t.Errorf("base %v, want %v", b.Base, a.Base.Add(shift))
	}
	if len(a.Value.Segments) != len(b.Value.Segments) {
		t.Fatalf("%d != %d segments", len(a.Value.Segments), len(b.Value.Segments))
	}
	for i, sa := range a.Value.Segments {
		sb := b.Value.Segments[i]
		if sa.Kind != sb.Kind || !near(sa.C1, sb.C1, 1e-9) ||
			!near(sa.C2, sb.C2, 1e-9) || !near(sa.End, sb.End, 1e-9) {
			t.Errorf("segment %d differs: %v != %v", i, sa, sb)
		}
	}
}

func TestOffsetRotation(t *testing.T) {
	lt := trail.At(trail.FromSegments(
		trail.Linear(pt(10, 0)),
		trail.Cubic(pt(0, 10), pt(-10, 10), pt(-10, 0)),
	), vec.Vec2{})
	m := matrix.RotateDeg(90)

	a, err := OffsetTrail(2, lt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := OffsetTrail(2, lt.Transform(m))
	if err != nil {
		t.Fatal(err)
	}
	a = a.Transform(m)
	checkVertices(t, "rotated", b, a.Value.Vertices(a.Base))
}

func TestOffsetPath(t *testing.T) {
	p := trail.Path{
		trail.At(trail.FromSegments(trail.Linear(pt(10, 0))), vec.Vec2{}),
		trail.At(trail.Loop(trail.Linear(pt(0, 10)), trail.Linear(pt(10, 0))), pt(20, 0)),
	}
	res, err := OffsetPath(1, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d trails, want 2", len(res))
	}
	if res[0].Value.Closed || !res[1].Value.Closed {
		t.Error("closedness not preserved")
	}

	_, err = DefaultOffsetOptions().WithEpsilon(0).OffsetPath(1, p)
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("got %v, want ErrInvalidOptions", err)
	}
}

func TestOffsetPathTolerance(t *testing.T) {
	p := trail.Path{
		trail.At(trail.FromSegments(testCubics[0]), vec.Vec2{}),
		trail.At(trail.FromSegments(testCubics[1]), vec.Vec2{}),
	}
	o := DefaultOffsetOptions().WithEpsilon(1e-9).WithMaxDepth(1)
	res, err := o.OffsetPath(5, p)
	var tolErr *ToleranceError
	if !errors.As(err, &tolErr) {
		t.Fatalf("got %v, want a ToleranceError", err)
	}
	if tolErr.Count < 2 {
		t.Errorf("only %d failures recorded across two trails", tolErr.Count)
	}
	if len(res) != 2 {
		t.Errorf("best-effort result has %d trails", len(res))
	}
}
