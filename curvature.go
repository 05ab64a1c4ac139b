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

	"seehuhn.de/go/offset/trail"
)

// CurvatureKind distinguishes the three possible outcomes of evaluating
// the radius of curvature.
type CurvatureKind uint8

const (
	// Finite indicates a well-defined radius of curvature.
	Finite CurvatureKind = iota

	// Infinite indicates a point where the curve is locally straight.
	Infinite

	// Cusp indicates a point where the derivative vanishes, so that the
	// curvature is undefined.
	Cusp
)

func (k CurvatureKind) String() string {
	switch k {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case Cusp:
		return "cusp"
	default:
		return fmt.Sprintf("CurvatureKind(%d)", k)
	}
}

// Curvature is the radius of curvature at a point of a segment.
//
// For Finite values, Radius is signed: it is positive where the curve
// turns left (counter-clockwise in a y-up coordinate system) and negative
// where it turns right.  With this convention, offsetting by r moves a
// point of the curve from distance R to distance R+r from the centre of
// curvature, so that the local scale factor of the offset curve is 1+r/R.
type Curvature struct {
	Kind   CurvatureKind
	Radius float64
}

func (c Curvature) String() string {
	if c.Kind == Finite {
		return fmt.Sprintf("R=%g", c.Radius)
	}
	return c.Kind.String()
}

// RadiusOfCurvature evaluates the radius of curvature of s at parameter t.
// Linear segments always have infinite radius.
func RadiusOfCurvature(s trail.Segment, t float64) Curvature {
	if s.Kind == trail.KindLinear {
		return Curvature{Kind: Infinite}
	}

	d1 := s.Derivative(t)
	speed := d1.Length()
	if speed < cuspThreshold {
		return Curvature{Kind: Cusp}
	}

	d2 := s.SecondDerivative(t)
	cross := trail.Cross(d1, d2)
	if math.Abs(cross) <= straightThreshold*speed*d2.Length() {
		return Curvature{Kind: Infinite}
	}
	return Curvature{Kind: Finite, Radius: speed * speed * speed / cross}
}

const (
	// cuspThreshold is the speed below which the tangent is undefined.
	cuspThreshold = 1e-10

	// straightThreshold bounds the sine of the angle between the first and
	// second derivative, below which the curve is treated as straight.
	straightThreshold = 1e-12
)
