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

// Package coverage converts filled paths into anti-aliased coverage masks.
//
// The masks are used to check stroke outlines against reference shapes,
// and to write PNG previews.  Paths are filled using the nonzero winding
// rule.
package coverage

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/trail"
)

// Rasterizer accumulates filled paths into a coverage mask.
//
// A Rasterizer can be reused for multiple masks by calling Reset.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels, where the pixel (i, j)
	// covers the square [i, i+1] × [j, j+1].
	CTM matrix.Matrix

	v *vector.Rasterizer
}

// NewRasterizer creates a rasterizer for masks of the given size, with the
// identity as the CTM.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		CTM: matrix.Identity,
		v:   vector.NewRasterizer(width, height),
	}
}

// Reset clears the accumulated coverage and changes the mask size.
// The CTM is not changed.
func (r *Rasterizer) Reset(width, height int) {
	r.v.Reset(width, height)
}

// Size returns the size of the mask.
func (r *Rasterizer) Size() image.Point {
	return r.v.Size()
}

// Fill adds the area enclosed by p to the mask.  Open trails are closed
// implicitly.
func (r *Rasterizer) Fill(p trail.Path) {
	for _, lt := range p {
		r.addTrail(lt)
	}
}

func (r *Rasterizer) addTrail(lt trail.Located[trail.Trail]) {
	segs := lt.Value.LoopSegments()
	if len(segs) == 0 {
		return
	}

	cur := lt.Base
	r.moveTo(cur)
	for _, s := range segs {
		switch s.Kind {
		case trail.KindLinear:
			r.lineTo(cur.Add(s.End))
		case trail.KindCubic:
			r.cubeTo(cur.Add(s.C1), cur.Add(s.C2), cur.Add(s.End))
		}
		cur = cur.Add(s.End)
	}
	r.v.ClosePath()
}

func (r *Rasterizer) moveTo(p vec.Vec2) {
	x, y := r.device(p)
	r.v.MoveTo(x, y)
}

func (r *Rasterizer) lineTo(p vec.Vec2) {
	x, y := r.device(p)
	r.v.LineTo(x, y)
}

func (r *Rasterizer) cubeTo(c1, c2, p vec.Vec2) {
	x1, y1 := r.device(c1)
	x2, y2 := r.device(c2)
	x3, y3 := r.device(p)
	r.v.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (r *Rasterizer) device(p vec.Vec2) (float32, float32) {
	m := r.CTM
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return float32(x), float32(y)
}

// Draw composites the accumulated coverage over the existing contents
// of dst.
func (r *Rasterizer) Draw(dst *image.Alpha) {
	src := image.NewUniform(color.Alpha{A: 255})
	r.v.Draw(dst, dst.Bounds(), src, image.Point{})
}

// Render fills p into a new mask of the given size.
func Render(p trail.Path, ctm matrix.Matrix, width, height int) *image.Alpha {
	r := NewRasterizer(width, height)
	r.CTM = ctm
	r.Fill(p)
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst)
	return dst
}

// Area returns the total coverage of img, in pixels.
func Area(img *image.Alpha) float64 {
	b := img.Bounds()
	var sum int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for _, a := range row[:b.Dx()] {
			sum += int(a)
		}
	}
	return float64(sum) / 255
}

// FitCTM returns a transformation which maps the rectangle bbox, enlarged
// by margin on all sides, into an image of the given size.  The aspect
// ratio is preserved and the y-axis is flipped, so that path coordinates
// with the y-axis pointing up are shown the right way up.
func FitCTM(bbox rect.Rect, margin float64, width, height int) matrix.Matrix {
	llx, lly := bbox.LLx-margin, bbox.LLy-margin
	w := bbox.URx - bbox.LLx + 2*margin
	h := bbox.URy - bbox.LLy + 2*margin
	if w <= 0 || h <= 0 {
		return matrix.Matrix{1, 0, 0, -1, -llx, float64(height) + lly}
	}

	scale := min(float64(width)/w, float64(height)/h)
	offX := (float64(width) - scale*w) / 2
	offY := (float64(height) - scale*h) / 2
	return matrix.Matrix{
		scale, 0,
		0, -scale,
		offX - scale*llx, float64(height) - offY + scale*lly,
	}
}
