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

package testcases

import (
	"regexp"
	"testing"

	"seehuhn.de/go/geom/path"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

func TestCaseGeometry(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s_%s: invalid canvas %dx%d", category, tc.Name, tc.Width, tc.Height)
			}

			n := 0
			for cmd, pts := range tc.Path {
				if cmd == path.CmdMoveTo {
					n++
				}
				for _, p := range pts {
					if p.X < 0 || p.Y < 0 || p.X > float64(tc.Width) || p.Y > float64(tc.Height) {
						t.Errorf("%s_%s: point %v outside the canvas", category, tc.Name, p)
					}
				}
			}
			if n == 0 {
				t.Errorf("%s_%s: path has no subpaths", category, tc.Name)
			}

			switch op := tc.Op.(type) {
			case Expand:
				if op.Width <= 0 {
					t.Errorf("%s_%s: invalid width %g", category, tc.Name, op.Width)
				}
			case Offset:
				if op.Distance == 0 {
					t.Errorf("%s_%s: zero offset distance", category, tc.Name)
				}
			}
		}
	}
}
