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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/offset/trail"
)

func TestDefaults(t *testing.T) {
	o := DefaultExpandOptions()
	if o.Join != graphics.LineJoinMiter || o.Cap != graphics.LineCapButt {
		t.Errorf("default join/cap %s/%s", o.Join, o.Cap)
	}
	if o.MiterLimit != 10 || o.Epsilon != DefaultEpsilon {
		t.Errorf("default miter limit %g, epsilon %g", o.MiterLimit, o.Epsilon)
	}
	if err := o.Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	base := DefaultExpandOptions()
	bad := []ExpandOptions{
		base.WithEpsilon(0),
		base.WithEpsilon(-1),
		base.WithEpsilon(math.NaN()),
		base.WithEpsilon(math.Inf(1)),
		{OffsetOptions: base.OffsetOptions.WithMiterLimit(0.5), Cap: base.Cap},
		{OffsetOptions: base.OffsetOptions.WithMaxDepth(-1), Cap: base.Cap},
		base.WithJoin(graphics.LineJoinStyle(17)),
		base.WithCap(graphics.LineCapStyle(9)),
	}
	for i, o := range bad {
		if err := o.Validate(); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%d: got %v, want ErrInvalidOptions", i, err)
		}
	}

	// the miter limit is irrelevant for other joins
	o := base.WithJoin(graphics.LineJoinRound)
	o.MiterLimit = 0
	if err := o.Validate(); err != nil {
		t.Error(err)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	o := DefaultOffsetOptions().WithEpsilon(1e-12).WithMaxDepth(0)
	_, err := o.OffsetSegment(5, testCubics[0])
	if !errors.Is(err, ErrToleranceNotMet) {
		t.Fatalf("got %v, want ErrToleranceNotMet", err)
	}
	if !strings.Contains(buf.String(), "offset tolerance not met") {
		t.Errorf("missing warning in log output %q", buf.String())
	}

	buf.Reset()
	_, err = OffsetPath(1, trail.Path{trail.At(trail.FromSegments(trail.Linear(pt(1, 0))), pt(0, 0))})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "offset path") {
		t.Errorf("missing debug message in log output %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
