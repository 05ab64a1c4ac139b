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

// Package svgpath reads the geometry of SVG documents as trail paths and
// writes filled outlines back as SVG.
//
// Only a small subset of SVG is understood: the basic shapes, path
// elements without elliptical arcs, groups with transforms and the
// presentation attributes which control stroking.
package svgpath

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"golang.org/x/net/html/charset"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/trail"
)

// Document is the geometry extracted from an SVG file.
type Document struct {
	Width, Height float64
	ViewBox       rect.Rect
	Shapes        []Shape
}

// Shape is one drawing element of an SVG document.
type Shape struct {
	// Element is the SVG element name, for example "path" or "circle".
	Element string

	// Path is the geometry in the element's own user coordinates.
	Path trail.Path

	// Transform maps user coordinates to the coordinates of the
	// document viewBox.
	Transform matrix.Matrix

	Stroke Style
}

// Style holds the stroke properties of a shape.
type Style struct {
	Stroked    bool
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// DefaultStyle is the initial stroke style of SVG.
var DefaultStyle = Style{
	Width:      1,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 4,
}

// ExpandOptions returns options for expanding a path with this style.
func (s Style) ExpandOptions() offset.ExpandOptions {
	return offset.DefaultExpandOptions().
		WithCap(s.Cap).
		WithJoin(s.Join).
		WithMiterLimit(s.MiterLimit)
}

// Outline returns the stroke outline of the shape, in viewBox
// coordinates.  Unstroked shapes have an empty outline.
//
// The stroke is computed in user coordinates and then transformed, so that
// non-uniform scaling distorts the stroke the same way as in an SVG
// renderer.
func (s Shape) Outline(epsilon float64) (trail.Path, error) {
	if !s.Stroke.Stroked || s.Stroke.Width <= 0 {
		return nil, nil
	}
	o := s.Stroke.ExpandOptions().WithEpsilon(epsilon)
	out, err := o.ExpandPath(s.Stroke.Width/2, s.Path)
	if out != nil {
		out = out.Transform(s.Transform)
	}
	return out, err
}

// Read parses an SVG document and extracts all shapes.
func Read(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	elt, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, err
	}
	if err := elt.Decode(decoder); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if elt.Name != "svg" {
		return nil, fmt.Errorf("svgpath: root element is %q, not svg", elt.Name)
	}

	doc := &Document{}
	if err := doc.parseBounds(elt.Attributes); err != nil {
		return nil, err
	}

	style, err := parseStyle(DefaultStyle, elt.Attributes)
	if err != nil {
		return nil, err
	}
	xf, err := ParseTransform(elt.Attributes["transform"])
	if err != nil {
		return nil, err
	}
	if err := doc.parseChildren(elt, xf, style); err != nil {
		return nil, err
	}
	return doc, nil
}

func (doc *Document) parseBounds(attr map[string]string) error {
	var err error
	if w, ok := attr["width"]; ok {
		if doc.Width, err = parseLength(w); err != nil {
			return err
		}
	}
	if h, ok := attr["height"]; ok {
		if doc.Height, err = parseLength(h); err != nil {
			return err
		}
	}

	if vb, ok := attr["viewBox"]; ok {
		xs, err := parseNumbers(vb)
		if err != nil {
			return err
		}
		if len(xs) != 4 || xs[2] < 0 || xs[3] < 0 {
			return fmt.Errorf("svgpath: invalid viewBox %q", vb)
		}
		doc.ViewBox = rect.Rect{LLx: xs[0], LLy: xs[1], URx: xs[0] + xs[2], URy: xs[1] + xs[3]}
		if doc.Width == 0 {
			doc.Width = xs[2]
		}
		if doc.Height == 0 {
			doc.Height = xs[3]
		}
	} else {
		doc.ViewBox = rect.Rect{URx: doc.Width, URy: doc.Height}
	}
	return nil
}

func (doc *Document) parseChildren(e *svgparser.Element, xf matrix.Matrix, style Style) error {
	for _, c := range e.Children {
		if c.Name == "defs" {
			continue
		}

		cxf, err := ParseTransform(c.Attributes["transform"])
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		cxf = concat(cxf, xf)
		cstyle, err := parseStyle(style, c.Attributes)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}

		if c.Name == "g" {
			if err := doc.parseChildren(c, cxf, cstyle); err != nil {
				return err
			}
			continue
		}

		p, err := shapePath(c.Name, c.Attributes)
		if errors.Is(err, errUnknownElement) {
			offset.Logger().Debug("svg: skipping element", "name", c.Name)
			continue
		} else if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		doc.Shapes = append(doc.Shapes, Shape{
			Element:   c.Name,
			Path:      p,
			Transform: cxf,
			Stroke:    cstyle,
		})
	}
	return nil
}

var errUnknownElement = errors.New("unknown element")

// shapePath converts one of the SVG basic shapes, or a path element,
// into a trail path.
func shapePath(name string, attr map[string]string) (trail.Path, error) {
	var ferr error
	num := func(key string) float64 {
		s, ok := attr[key]
		if !ok || ferr != nil {
			return 0
		}
		x, err := parseLength(s)
		if err != nil {
			ferr = err
		}
		return x
	}

	d := &path.Data{}
	switch name {
	case "path":
		return ParseData(attr["d"])

	case "line":
		x1, y1, x2, y2 := num("x1"), num("y1"), num("x2"), num("y2")
		d = d.MoveTo(vec.Vec2{X: x1, Y: y1}).LineTo(vec.Vec2{X: x2, Y: y2})

	case "polyline", "polygon":
		xs, err := parseNumbers(attr["points"])
		if err != nil {
			return nil, err
		}
		if len(xs)%2 != 0 {
			return nil, fmt.Errorf("svgpath: odd number of coordinates in points")
		}
		for i := 0; i < len(xs); i += 2 {
			p := vec.Vec2{X: xs[i], Y: xs[i+1]}
			if i == 0 {
				d = d.MoveTo(p)
			} else {
				d = d.LineTo(p)
			}
		}
		if name == "polygon" && len(xs) > 0 {
			d = d.Close()
		}

	case "rect":
		x, y, w, h := num("x"), num("y"), num("width"), num("height")
		if w > 0 && h > 0 {
			d = d.MoveTo(vec.Vec2{X: x, Y: y}).
				LineTo(vec.Vec2{X: x + w, Y: y}).
				LineTo(vec.Vec2{X: x + w, Y: y + h}).
				LineTo(vec.Vec2{X: x, Y: y + h}).
				Close()
		}

	case "circle":
		r := num("r")
		if r > 0 {
			d = ellipse(d, num("cx"), num("cy"), r, r)
		}

	case "ellipse":
		rx, ry := num("rx"), num("ry")
		if rx > 0 && ry > 0 {
			d = ellipse(d, num("cx"), num("cy"), rx, ry)
		}

	default:
		return nil, errUnknownElement
	}
	if ferr != nil {
		return nil, ferr
	}
	return trail.FromData(d), nil
}

// ellipse appends an axis-parallel ellipse, made of four cubic Bézier
// curves, to d.
func ellipse(d *path.Data, cx, cy, rx, ry float64) *path.Data {
	const k = 0.5522847498307936
	kx, ky := k*rx, k*ry
	return d.MoveTo(vec.Vec2{X: cx + rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy}).
		Close()
}

// parseStyle applies the stroke presentation attributes in attr, and the
// declarations of a style attribute, to the inherited style.
func parseStyle(inherited Style, attr map[string]string) (Style, error) {
	props := make(map[string]string)
	for _, key := range styleKeys {
		if v, ok := attr[key]; ok {
			props[key] = v
		}
	}
	for decl := range strings.SplitSeq(attr["style"], ";") {
		key, val, ok := strings.Cut(decl, ":")
		if ok {
			props[strings.TrimSpace(key)] = strings.TrimSpace(val)
		}
	}

	s := inherited
	for key, val := range props {
		if val == "inherit" {
			continue
		}
		switch key {
		case "stroke":
			s.Stroked = val != "none"
		case "stroke-width":
			w, err := parseLength(val)
			if err != nil {
				return s, err
			}
			s.Width = w
		case "stroke-linecap":
			switch val {
			case "butt":
				s.Cap = graphics.LineCapButt
			case "round":
				s.Cap = graphics.LineCapRound
			case "square":
				s.Cap = graphics.LineCapSquare
			default:
				return s, fmt.Errorf("svgpath: invalid stroke-linecap %q", val)
			}
		case "stroke-linejoin":
			switch val {
			case "miter", "miter-clip", "arcs":
				s.Join = graphics.LineJoinMiter
			case "round":
				s.Join = graphics.LineJoinRound
			case "bevel":
				s.Join = graphics.LineJoinBevel
			default:
				return s, fmt.Errorf("svgpath: invalid stroke-linejoin %q", val)
			}
		case "stroke-miterlimit":
			x, err := strconv.ParseFloat(val, 64)
			if err != nil || x < 1 {
				return s, fmt.Errorf("svgpath: invalid stroke-miterlimit %q", val)
			}
			s.MiterLimit = x
		}
	}
	return s, nil
}

var styleKeys = []string{
	"stroke", "stroke-width", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
}

// parseLength parses an SVG length in user units.  Only unit-less values
// and pixels are accepted.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("svgpath: invalid length %q", s)
	}
	return x, nil
}

// parseNumbers parses a list of numbers separated by white space and
// commas, as used in the points and viewBox attributes.
func parseNumbers(s string) ([]float64, error) {
	sc := &dataScanner{s: s}
	var xs []float64
	for {
		sc.skipSeparators()
		if sc.atEOF() {
			return xs, nil
		}
		x, err := sc.number()
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
}
