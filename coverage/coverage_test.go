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

package coverage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
	"seehuhn.de/go/offset/trail"
)

const size = 64

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// circle returns a counter-clockwise circle made of four cubic segments.
func circle(cx, cy, radius float64) trail.Located[trail.Trail] {
	const k = 0.5522847498307936
	kr := k * radius
	return trail.At(trail.Loop(
		trail.Cubic(pt(0, kr), pt(kr-radius, radius), pt(-radius, radius)),
		trail.Cubic(pt(-kr, 0), pt(-radius, kr-radius), pt(-radius, -radius)),
		trail.Cubic(pt(0, -kr), pt(radius-kr, -radius), pt(radius, -radius)),
		trail.Cubic(pt(kr, 0), pt(radius, radius-kr), pt(radius, radius)),
	), pt(cx+radius, cy))
}

// reference draws shapes directly with x/image/vector.
func reference(draw func(r *vector.Rasterizer)) *image.Alpha {
	r := vector.NewRasterizer(size, size)
	draw(r)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

func addRect(r *vector.Rasterizer, x0, y0, x1, y1 float32) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

func TestStrokeCoverage(t *testing.T) {
	line := trail.At(trail.FromSegments(trail.Linear(pt(40, 0))), pt(12, 32))
	ring := circle(32, 32, 20)

	type testCase struct {
		name    string
		lt      trail.Located[trail.Trail]
		lineCap graphics.LineCapStyle
		ref     func(r *vector.Rasterizer)
	}
	cases := []testCase{
		{"butt", line, graphics.LineCapButt, func(r *vector.Rasterizer) {
			addRect(r, 12, 28, 52, 36)
		}},
		{"square", line, graphics.LineCapSquare, func(r *vector.Rasterizer) {
			addRect(r, 8, 28, 56, 36)
		}},
		{"round", line, graphics.LineCapRound, func(r *vector.Rasterizer) {
			addRect(r, 12, 28, 52, 36)
			addCircleToVector(r, 12, 32, 4, false)
			addCircleToVector(r, 52, 32, 4, false)
		}},
		{"ring", ring, graphics.LineCapButt, func(r *vector.Rasterizer) {
			addCircleToVector(r, 32, 32, 24, false)
			addCircleToVector(r, 32, 32, 16, true)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := offset.DefaultExpandOptions().WithCap(tc.lineCap)
			outline, err := o.ExpandTrail(4, tc.lt)
			if err != nil {
				t.Fatal(err)
			}
			actual := Render(trail.Path{outline}, matrix.Identity, size, size)
			expected := reference(tc.ref)
			if err := compareImages(tc.name, expected, actual); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestArea(t *testing.T) {
	line := trail.At(trail.FromSegments(trail.Linear(pt(40, 0))), pt(12, 32))
	outline, err := offset.ExpandTrail(4, line)
	if err != nil {
		t.Fatal(err)
	}
	img := Render(trail.Path{outline}, matrix.Identity, size, size)
	if a := Area(img); math.Abs(a-320) > 1 {
		t.Errorf("area %g, want 320", a)
	}

	if a := Area(image.NewAlpha(image.Rect(3, 3, 10, 10))); a != 0 {
		t.Errorf("empty image has area %g", a)
	}
}

func TestCaseAreas(t *testing.T) {
	want := map[string]float64{
		"butt":   44 * 8,
		"square": 52 * 8,
		"round":  44*8 + math.Pi*16,
	}
	for _, tc := range testcases.All["line"] {
		op, ok := tc.Op.(testcases.Expand)
		if !ok {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			o := offset.DefaultExpandOptions().WithCap(op.Cap).WithJoin(op.Join)
			outline, err := o.ExpandPath(op.Width/2, trail.FromPath(tc.Path))
			if err != nil {
				t.Fatal(err)
			}
			a := Area(Render(outline, matrix.Identity, tc.Width, tc.Height))
			if a <= 0 || a > float64(tc.Width*tc.Height) {
				t.Fatalf("area %g out of range", a)
			}
			if w, ok := want[tc.Name]; ok && math.Abs(a-w) > 1 {
				t.Errorf("area %g, want %g", a, w)
			}
		})
	}
}

func TestFitCTM(t *testing.T) {
	bbox := rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 30}
	m := FitCTM(bbox, 0, 300, 100)

	apply := func(x, y float64) vec.Vec2 {
		return pt(m[0]*x+m[2]*y+m[4], m[1]*x+m[3]*y+m[5])
	}
	if p := apply(10, 20); p != pt(50, 100) {
		t.Errorf("lower left maps to %v", p)
	}
	if p := apply(30, 30); p != pt(250, 0) {
		t.Errorf("upper right maps to %v", p)
	}
}

func compareImages(name string, expected, actual *image.Alpha) error {
	const tolerance = 8
	const maxDiffPercent = 1

	w, h := expected.Rect.Dx(), expected.Rect.Dy()
	total := w * h
	diffCount := 0
	hasDiff := false

	for i := range total {
		e, a := int(expected.Pix[i]), int(actual.Pix[i])
		diff := e - a
		if diff < 0 {
			diff = -diff
		}
		if diff > 0 {
			hasDiff = true
			if diff > tolerance {
				diffCount++
			}
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if diffCount > maxAllowed || hasDiff {
		writeDiffImage(name, expected, actual)
	}
	if diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual *image.Alpha) {
	os.MkdirAll("debug", 0755)

	w, h := expected.Rect.Dx(), expected.Rect.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{
				R: expected.AlphaAt(x, y).A, // expected in red
				G: actual.AlphaAt(x, y).A,   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

// BenchmarkRenderO benchmarks expanding a circle into an "O" shape and
// rasterizing the outline.
func BenchmarkRenderO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			r := NewRasterizer(n, n)
			dst := image.NewAlpha(image.Rect(0, 0, n, n))

			center := float64(n) / 2
			mid := circle(center, center, float64(n)*0.375)
			width := float64(n) * 0.075

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				outline, err := offset.ExpandTrail(width, mid)
				if err != nil {
					b.Fatal(err)
				}
				r.Reset(n, n)
				r.Fill(trail.Path{outline})
				r.Draw(dst)
			}
		})
	}
}
