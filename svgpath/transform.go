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

package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"

	"seehuhn.de/go/geom/matrix"
)

type transformState int

const (
	tsName transformState = 1 + iota
	tsOpen
	tsMaybeComma
	tsArg
)

// ParseTransform parses the value of an SVG transform attribute.
// The empty string gives the identity.
func ParseTransform(s string) (matrix.Matrix, error) {
	var sc scanner.Scanner
	sc.Init(strings.NewReader(s))
	sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	sc.Error = func(*scanner.Scanner, string) {}

	m := matrix.Identity
	state := tsName
	name := ""
	var args []float64
	signed, neg := false, false
	for tok := sc.Scan(); tok != scanner.EOF; tok = sc.Scan() {
		switch state {
		case tsName:
			if tok == ',' {
				continue
			}
			if tok != scanner.Ident {
				return m, fmt.Errorf("svgpath: expected transform name, got %q", sc.TokenText())
			}
			name = sc.TokenText()
			state = tsOpen
		case tsOpen:
			if tok != '(' {
				return m, fmt.Errorf("svgpath: expected '(' after %s, got %q", name, sc.TokenText())
			}
			state = tsArg
		case tsMaybeComma:
			if tok == ',' {
				state = tsArg
				continue
			}
			fallthrough
		case tsArg:
			switch {
			case tok == ')' && !signed:
				t, err := singleTransform(name, args)
				if err != nil {
					return m, err
				}
				m = concat(t, m)
				state = tsName
				args = nil
			case (tok == '-' || tok == '+') && !signed:
				signed, neg = true, tok == '-'
			case tok == scanner.Float || tok == scanner.Int:
				x, err := strconv.ParseFloat(sc.TokenText(), 64)
				if err != nil {
					return m, fmt.Errorf("svgpath: invalid number %q in transform", sc.TokenText())
				}
				if neg {
					x = -x
				}
				signed, neg = false, false
				args = append(args, x)
				state = tsMaybeComma
			default:
				return m, fmt.Errorf("svgpath: unexpected token %q in transform %q", sc.TokenText(), s)
			}
		}
	}
	if state != tsName {
		return m, fmt.Errorf("svgpath: incomplete transform %q", s)
	}
	return m, nil
}

func singleTransform(name string, args []float64) (matrix.Matrix, error) {
	n := len(args)
	switch name {
	case "matrix":
		if n != 6 {
			break
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case "translate":
		switch n {
		case 1:
			return matrix.Matrix{1, 0, 0, 1, args[0], 0}, nil
		case 2:
			return matrix.Matrix{1, 0, 0, 1, args[0], args[1]}, nil
		}
	case "scale":
		switch n {
		case 1:
			return matrix.Scale(args[0], args[0]), nil
		case 2:
			return matrix.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch n {
		case 1:
			return rotation(args[0]), nil
		case 3:
			cx, cy := args[1], args[2]
			m := matrix.Matrix{1, 0, 0, 1, -cx, -cy}
			m = concat(m, rotation(args[0]))
			return concat(m, matrix.Matrix{1, 0, 0, 1, cx, cy}), nil
		}
	case "skewX":
		if n == 1 {
			return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil
		}
	case "skewY":
		if n == 1 {
			return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
		}
	default:
		return matrix.Identity, fmt.Errorf("svgpath: unknown transform function %q", name)
	}
	return matrix.Identity, fmt.Errorf("svgpath: %s has %d parameters", name, n)
}

// rotation returns a counter-clockwise rotation by deg degrees, in the
// sense of the SVG rotate() function.
func rotation(deg float64) matrix.Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}

// concat returns the transformation which applies a first, then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		b[0]*a[0] + b[2]*a[1],
		b[1]*a[0] + b[3]*a[1],
		b[0]*a[2] + b[2]*a[3],
		b[1]*a[2] + b[3]*a[3],
		b[0]*a[4] + b[2]*a[5] + b[4],
		b[1]*a[4] + b[3]*a[5] + b[5],
	}
}
