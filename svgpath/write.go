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
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/offset/trail"
)

const svgHeader = `<svg width="%g" height="%g" viewBox="%g %g %g %g" version="1.1" xmlns="http://www.w3.org/2000/svg">`

// Write writes an SVG document which shows the given paths filled in
// black, using the nonzero winding rule.  Each path becomes one path
// element.
func Write(w io.Writer, viewBox rect.Rect, paths ...trail.Path) error {
	var werr error
	bw := bufio.NewWriter(w)
	wr := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, format, args...)
	}

	width := viewBox.URx - viewBox.LLx
	height := viewBox.URy - viewBox.LLy
	wr(svgHeader, width, height, viewBox.LLx, viewBox.LLy, width, height)
	wr("\n<g fill=\"black\" fill-rule=\"nonzero\" stroke=\"none\">\n")
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		wr("<path d=\"%s\"/>\n", FormatData(p))
	}
	wr("</g>\n</svg>\n")
	if werr == nil {
		werr = bw.Flush()
	}
	return werr
}
