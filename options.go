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

	"seehuhn.de/go/pdf/graphics"
)

// OffsetOptions controls how trails and paths are offset.
type OffsetOptions struct {
	// Join selects the geometry inserted at interior vertices.
	Join graphics.LineJoinStyle

	// Epsilon is the maximal allowed distance between the approximated and
	// the exact offset curve at the sample points.  Must be positive.
	Epsilon float64

	// MiterLimit bounds the ratio between the miter length and the offset
	// distance.  Miter joins exceeding the limit are drawn as bevels.
	// Must be at least 1.0.
	MiterLimit float64

	// MaxDepth bounds the number of times a cubic segment is halved.
	// When the limit is reached, the best available approximation is used
	// and the result is reported with a [*ToleranceError].
	MaxDepth int
}

// ExpandOptions controls how trails and paths are expanded into stroke
// outlines.
type ExpandOptions struct {
	OffsetOptions

	// Cap selects the geometry at the two ends of open trails.
	Cap graphics.LineCapStyle
}

// DefaultEpsilon is the default approximation tolerance, in the units of
// the path coordinates.
const DefaultEpsilon = 1e-3

// DefaultOffsetOptions returns the PDF default line join and miter limit,
// together with the default tolerance.
func DefaultOffsetOptions() OffsetOptions {
	return OffsetOptions{
		Join:       graphics.LineJoinMiter,
		Epsilon:    DefaultEpsilon,
		MiterLimit: defaultMiterLimit,
		MaxDepth:   defaultMaxDepth,
	}
}

// DefaultExpandOptions returns [DefaultOffsetOptions] combined with butt
// caps.
func DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{
		OffsetOptions: DefaultOffsetOptions(),
		Cap:           graphics.LineCapButt,
	}
}

// WithJoin returns a copy of o with the given line join.
func (o OffsetOptions) WithJoin(join graphics.LineJoinStyle) OffsetOptions {
	o.Join = join
	return o
}

// WithEpsilon returns a copy of o with the given tolerance.
func (o OffsetOptions) WithEpsilon(eps float64) OffsetOptions {
	o.Epsilon = eps
	return o
}

func (o OffsetOptions) WithMiterLimit(limit float64) OffsetOptions {
	o.MiterLimit = limit
	return o
}

func (o OffsetOptions) WithMaxDepth(depth int) OffsetOptions {
	o.MaxDepth = depth
	return o
}

// WithCap returns a copy of o with the given line cap.
func (o ExpandOptions) WithCap(lineCap graphics.LineCapStyle) ExpandOptions {
	o.Cap = lineCap
	return o
}

// WithJoin returns a copy of o with the given line join.
func (o ExpandOptions) WithJoin(join graphics.LineJoinStyle) ExpandOptions {
	o.Join = join
	return o
}

// WithEpsilon returns a copy of o with the given tolerance.
func (o ExpandOptions) WithEpsilon(eps float64) ExpandOptions {
	o.Epsilon = eps
	return o
}

func (o ExpandOptions) WithMiterLimit(limit float64) ExpandOptions {
	o.MiterLimit = limit
	return o
}

// Validate checks that all fields have usable values.
func (o OffsetOptions) Validate() error {
	switch o.Join {
	case graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel:
		// pass
	default:
		return fmt.Errorf("%w: unknown line join %d", ErrInvalidOptions, o.Join)
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be positive and finite, got %g",
			ErrInvalidOptions, o.Epsilon)
	}
	if o.Join == graphics.LineJoinMiter && !(o.MiterLimit >= 1) {
		return fmt.Errorf("%w: miter limit must be at least 1, got %g",
			ErrInvalidOptions, o.MiterLimit)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: negative subdivision depth %d",
			ErrInvalidOptions, o.MaxDepth)
	}
	return nil
}

// Validate checks that all fields have usable values.
func (o ExpandOptions) Validate() error {
	if err := o.OffsetOptions.Validate(); err != nil {
		return err
	}
	switch o.Cap {
	case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
		return nil
	default:
		return fmt.Errorf("%w: unknown line cap %d", ErrInvalidOptions, o.Cap)
	}
}

const (
	// defaultMiterLimit is the PDF default miter limit.
	defaultMiterLimit = 10.0

	// defaultMaxDepth allows a single cubic to be split into up to 65536
	// pieces.
	defaultMaxDepth = 16
)
