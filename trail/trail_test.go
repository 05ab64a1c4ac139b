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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func near(a, b vec.Vec2, eps float64) bool {
	return a.Sub(b).Length() <= eps
}

var testCubics = []Segment{
	Cubic(pt(10, 40), pt(34, 40), pt(44, 0)),
	Cubic(pt(10, 10), pt(0, 10), pt(10, 0)), // cusp at t=0.5
	Cubic(pt(0, 0), pt(0, 0), pt(5, 5)),     // zero handles
	Cubic(pt(30, 0), pt(-20, 10), pt(10, 10)),
}

func TestSplitExact(t *testing.T) {
	for i, s := range testCubics {
		for _, u := range []float64{0.1, 0.25, 0.5, 0.9} {
			a, b := s.Split(u)
			mid := s.At(u)
			if !near(a.End, mid, 1e-12) {
				t.Errorf("%d/%g: first half ends at %v, want %v", i, u, a.End, mid)
			}
			if !near(a.End.Add(b.End), s.End, 1e-12) {
				t.Errorf("%d/%g: halves end at %v, want %v", i, u, a.End.Add(b.End), s.End)
			}

			// points on the halves are points on the original
			for _, v := range []float64{0, 0.3, 0.7, 1} {
				pa := a.At(v)
				qa := s.At(u * v)
				if !near(pa, qa, 1e-9) {
					t.Errorf("%d/%g: first half at %g: %v != %v", i, u, v, pa, qa)
				}
				pb := mid.Add(b.At(v))
				qb := s.At(u + (1-u)*v)
				if !near(pb, qb, 1e-9) {
					t.Errorf("%d/%g: second half at %g: %v != %v", i, u, v, pb, qb)
				}
			}

			// tangents at the outer end points are preserved
			if math.Abs(Cross(a.StartTangent(), s.StartTangent())) > 1e-9 {
				t.Errorf("%d/%g: start tangent changed", i, u)
			}
			if math.Abs(Cross(b.EndTangent(), s.EndTangent())) > 1e-9 {
				t.Errorf("%d/%g: end tangent changed", i, u)
			}
		}
	}
}

func TestDerivative(t *testing.T) {
	const h = 1e-6
	for i, s := range testCubics {
		for _, u := range []float64{0.2, 0.5, 0.8} {
			num := s.At(u + h).Sub(s.At(u - h)).Mul(1 / (2 * h))
			if !near(num, s.Derivative(u), 1e-4) {
				t.Errorf("%d: B'(%g) = %v, numerical %v", i, u, s.Derivative(u), num)
			}
			num2 := s.Derivative(u + h).Sub(s.Derivative(u - h)).Mul(1 / (2 * h))
			if !near(num2, s.SecondDerivative(u), 1e-3) {
				t.Errorf("%d: B''(%g) = %v, numerical %v", i, u, s.SecondDerivative(u), num2)
			}
		}
	}
}

func TestTangentFallback(t *testing.T) {
	s := Cubic(pt(0, 0), pt(0, 0), pt(5, 5))
	if got := s.StartTangent(); got != pt(5, 5) {
		t.Errorf("start tangent %v, want (5,5)", got)
	}
	s = Cubic(pt(3, 0), pt(6, 0), pt(6, 0))
	if got := s.EndTangent(); got != pt(3, 0) {
		t.Errorf("end tangent %v, want (3,0)", got)
	}
	s = Cubic(pt(0, 0), pt(0, 0), pt(0, 0))
	if !s.IsDegenerate() {
		t.Error("point-like cubic not degenerate")
	}
	if got := s.StartTangent(); got != (vec.Vec2{}) {
		t.Errorf("degenerate start tangent %v", got)
	}
}

func TestReverse(t *testing.T) {
	for i, s := range testCubics {
		r := s.Reverse()
		for _, u := range []float64{0, 0.25, 0.5, 1} {
			p := s.End.Add(r.At(u))
			q := s.At(1 - u)
			if !near(p, q, 1e-9) {
				t.Errorf("%d: reversed at %g is %v, want %v", i, u, p, q)
			}
		}
	}

	lt := At(FromSegments(Linear(pt(10, 0)), testCubics[0]), pt(1, 2))
	rev := lt.Reverse()
	if !near(rev.Start(), lt.End(), 1e-12) || !near(rev.End(), lt.Start(), 1e-9) {
		t.Errorf("reversed trail runs %v→%v, want %v→%v", rev.Start(), rev.End(), lt.End(), lt.Start())
	}
}

func TestLoopSegments(t *testing.T) {
	tr := Loop(Linear(pt(10, 0)), Linear(pt(0, 10)))
	segs := tr.LoopSegments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[2].End != pt(-10, -10) {
		t.Errorf("closing segment %v", segs[2])
	}
	if d := tr.Displacement(); d != (vec.Vec2{}) {
		t.Errorf("loop displacement %v", d)
	}

	verts := tr.Vertices(pt(1, 1))
	want := []vec.Vec2{pt(1, 1), pt(11, 1), pt(11, 11), pt(1, 1)}
	if len(verts) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(verts), len(want))
	}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("vertex %d: %v != %v", i, verts[i], want[i])
		}
	}

	// explicitly closed loops get no extra segment
	sq := Loop(Linear(pt(1, 0)), Linear(pt(0, 1)), Linear(pt(-1, 0)), Linear(pt(0, -1)))
	if n := len(sq.LoopSegments()); n != 4 {
		t.Errorf("square has %d loop segments", n)
	}
}

func TestTranslateOnlyMovesBase(t *testing.T) {
	tr := FromSegments(Linear(pt(3, 4)))
	lt := At(tr, pt(1, 1))
	moved := lt.Translate(pt(5, -2))
	if moved.Base != pt(6, -1) {
		t.Errorf("base %v", moved.Base)
	}
	if moved.Value.Segments[0] != tr.Segments[0] {
		t.Errorf("payload changed")
	}
	if moved.Rebase(pt(0, 0)).End() != pt(3, 4) {
		t.Errorf("rebase end %v", moved.Rebase(pt(0, 0)).End())
	}
}

func TestTransform(t *testing.T) {
	lt := At(FromSegments(Linear(pt(10, 0)), Cubic(pt(1, 0), pt(2, 1), pt(2, 2))), pt(1, 0))
	m := matrix.RotateDeg(90).Translate(5, 5)
	got := lt.Transform(m)

	// transforming commutes with evaluating absolute points
	verts := lt.Value.Vertices(lt.Base)
	gotVerts := got.Value.Vertices(got.Base)
	for i := range verts {
		want := applyAffine(m, verts[i])
		if !near(gotVerts[i], want, 1e-9) {
			t.Errorf("vertex %d: %v != %v", i, gotVerts[i], want)
		}
	}
}

func TestFromPath(t *testing.T) {
	d := (&path.Data{}).
		MoveTo(pt(10, 10)).
		LineTo(pt(20, 10)).
		QuadTo(pt(30, 10), pt(30, 20)).
		Close().
		MoveTo(pt(0, 0)).
		CubeTo(pt(1, 1), pt(2, 1), pt(3, 0)).
		MoveTo(pt(50, 50)) // dropped

	p := FromData(d)
	if len(p) != 2 {
		t.Fatalf("got %d trails, want 2", len(p))
	}

	first := p[0]
	if !first.Value.Closed || first.Base != pt(10, 10) {
		t.Errorf("first trail: %v at %v", first.Value, first.Base)
	}
	q := first.Value.Segments[1]
	if q.Kind != KindCubic || q.End != pt(10, 10) {
		t.Errorf("quadratic converted to %v", q)
	}
	// the raised cubic passes through the quadratic's midpoint
	mid := pt(20, 10).Add(q.At(0.5))
	if !near(mid, pt(27.5, 12.5), 1e-12) {
		t.Errorf("raised cubic midpoint %v", mid)
	}

	second := p[1]
	if second.Value.Closed || second.End() != pt(3, 0) {
		t.Errorf("second trail: %v ends at %v", second.Value, second.End())
	}

	// round trip through path data
	p2 := FromData(p.Data())
	if len(p2) != len(p) {
		t.Fatalf("round trip: %d trails", len(p2))
	}
	for i := range p {
		if p2[i].Base != p[i].Base || p2[i].Value.Closed != p[i].Value.Closed {
			t.Errorf("round trip trail %d differs", i)
		}
		for j, s := range p[i].Value.Segments {
			if !near(p2[i].Value.Segments[j].End, s.End, 1e-12) {
				t.Errorf("round trip segment %d/%d differs", i, j)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	p := Path{
		At(FromSegments(Linear(pt(10, 0))), pt(-5, 3)),
		At(FromSegments(Cubic(pt(0, 8), pt(4, 8), pt(4, 0))), pt(1, 1)),
	}
	b := p.Bounds()
	if b.LLx != -5 || b.URx != 5 || b.LLy != 1 || b.URy != 9 {
		t.Errorf("bounds %v", b)
	}
	if (Path{}).Bounds().URx != 0 {
		t.Error("empty path has non-zero bounds")
	}
	if math.IsInf(b.LLx, 0) {
		t.Error("infinite bounds")
	}
}
