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
	"fmt"
)

var (
	// ErrInvalidSegment indicates a segment without a tangent direction,
	// i.e. a cubic whose control points all coincide with its start.
	ErrInvalidSegment = errors.New("offset: degenerate segment")

	// ErrInvalidOptions is returned when options fail validation.
	ErrInvalidOptions = errors.New("offset: invalid options")

	// ErrToleranceNotMet is matched by [*ToleranceError].
	ErrToleranceNotMet = errors.New("offset: tolerance not met")
)

// ToleranceError reports that the subdivision depth limit was reached
// before the approximation met the requested tolerance.  Functions
// returning a ToleranceError also return a usable, best-effort result.
type ToleranceError struct {
	Epsilon   float64 // the requested tolerance
	Deviation float64 // the largest deviation at a sample point
	Count     int     // the number of pieces which exceed the tolerance
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("offset: tolerance %g not met for %d pieces (max deviation %g)",
		e.Epsilon, e.Count, e.Deviation)
}

// Is makes errors.Is(err, ErrToleranceNotMet) succeed.
func (e *ToleranceError) Is(target error) bool {
	return target == ErrToleranceNotMet
}

// toleranceTracker collects tolerance violations across one operation.
type toleranceTracker struct {
	eps   float64
	worst float64
	count int
}

func (t *toleranceTracker) record(deviation float64) {
	t.count++
	t.worst = max(t.worst, deviation)
}

// err returns nil if no violations were recorded.
func (t *toleranceTracker) err() error {
	if t.count == 0 {
		return nil
	}
	return &ToleranceError{Epsilon: t.eps, Deviation: t.worst, Count: t.count}
}
