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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/trail"
)

// ErrUnsupported is returned for valid SVG constructs which this package
// cannot represent, for example elliptical arcs in path data.
var ErrUnsupported = errors.New("svgpath: unsupported")

// ParseData parses the value of the "d" attribute of an SVG path element.
//
// All commands except the elliptical arc (A/a) are supported, in both
// absolute and relative form.  Quadratic curves are converted to cubics.
func ParseData(d string) (trail.Path, error) {
	sc := &dataScanner{s: d}
	b := &dataBuilder{data: &path.Data{}}

	var cmd byte
	for {
		sc.skipSeparators()
		if sc.atEOF() {
			break
		}

		if c, ok := sc.command(); ok {
			cmd = c
		} else if cmd == 0 {
			return nil, sc.errorf("path data must start with a command")
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, sc.errorf("unexpected number after close path")
		}
		// else: implicit repetition of the previous command

		if err := b.apply(sc, cmd); err != nil {
			return nil, err
		}

		// after a moveto, further coordinate pairs are lineto commands
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}

	return trail.FromData(b.data), nil
}

// dataBuilder keeps the state needed to interpret path data commands.
type dataBuilder struct {
	data *path.Data

	cur, start vec.Vec2
	hasStart   bool
	closed     bool

	// reflected control points for S/s and T/t
	lastCubic, lastQuad       vec.Vec2
	hasLastCubic, hasLastQuad bool
}

func (b *dataBuilder) apply(sc *dataScanner, cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	var origin vec.Vec2
	if rel {
		origin = b.cur
	}

	point := func() (vec.Vec2, error) {
		x, err := sc.number()
		if err != nil {
			return vec.Vec2{}, err
		}
		y, err := sc.number()
		if err != nil {
			return vec.Vec2{}, err
		}
		return origin.Add(vec.Vec2{X: x, Y: y}), nil
	}

	if cmd != 'M' && cmd != 'm' && !b.hasStart {
		return sc.errorf("drawing command %q before the first moveto", cmd)
	}
	if b.closed && cmd != 'M' && cmd != 'm' {
		// a new subpath starts at the start of the closed one
		b.data = b.data.MoveTo(b.start)
	}
	b.closed = false

	switch cmd {
	case 'M', 'm':
		p, err := point()
		if err != nil {
			return err
		}
		b.data = b.data.MoveTo(p)
		b.cur, b.start, b.hasStart = p, p, true
		b.resetControls()

	case 'L', 'l':
		p, err := point()
		if err != nil {
			return err
		}
		b.lineTo(p)

	case 'H', 'h':
		x, err := sc.number()
		if err != nil {
			return err
		}
		b.lineTo(vec.Vec2{X: origin.X + x, Y: b.cur.Y})

	case 'V', 'v':
		y, err := sc.number()
		if err != nil {
			return err
		}
		b.lineTo(vec.Vec2{X: b.cur.X, Y: origin.Y + y})

	case 'C', 'c':
		var pts [3]vec.Vec2
		for i := range pts {
			p, err := point()
			if err != nil {
				return err
			}
			pts[i] = p
		}
		b.cubeTo(pts[0], pts[1], pts[2])

	case 'S', 's':
		c1 := b.cur
		if b.hasLastCubic {
			c1 = b.cur.Add(b.cur.Sub(b.lastCubic))
		}
		c2, err := point()
		if err != nil {
			return err
		}
		p, err := point()
		if err != nil {
			return err
		}
		b.cubeTo(c1, c2, p)

	case 'Q', 'q':
		c, err := point()
		if err != nil {
			return err
		}
		p, err := point()
		if err != nil {
			return err
		}
		b.quadTo(c, p)

	case 'T', 't':
		c := b.cur
		if b.hasLastQuad {
			c = b.cur.Add(b.cur.Sub(b.lastQuad))
		}
		p, err := point()
		if err != nil {
			return err
		}
		b.quadTo(c, p)

	case 'Z', 'z':
		b.data = b.data.Close()
		b.cur = b.start
		b.closed = true
		b.resetControls()

	case 'A', 'a':
		return fmt.Errorf("%w: elliptical arc at offset %d", ErrUnsupported, sc.pos)

	default:
		return sc.errorf("unknown command %q", cmd)
	}
	return nil
}

func (b *dataBuilder) lineTo(p vec.Vec2) {
	b.data = b.data.LineTo(p)
	b.cur = p
	b.resetControls()
}

func (b *dataBuilder) cubeTo(c1, c2, p vec.Vec2) {
	b.data = b.data.CubeTo(c1, c2, p)
	b.cur = p
	b.resetControls()
	b.lastCubic, b.hasLastCubic = c2, true
}

func (b *dataBuilder) quadTo(c, p vec.Vec2) {
	b.data = b.data.QuadTo(c, p)
	b.cur = p
	b.resetControls()
	b.lastQuad, b.hasLastQuad = c, true
}

func (b *dataBuilder) resetControls() {
	b.hasLastCubic = false
	b.hasLastQuad = false
}

// dataScanner splits path data into commands and numbers.
type dataScanner struct {
	s   string
	pos int
}

func (sc *dataScanner) atEOF() bool {
	return sc.pos >= len(sc.s)
}

func (sc *dataScanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

// command consumes a command letter, if there is one.
func (sc *dataScanner) command() (byte, bool) {
	if sc.atEOF() {
		return 0, false
	}
	c := sc.s[sc.pos]
	if (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E' {
		sc.pos++
		return c, true
	}
	return 0, false
}

// number consumes a number, skipping leading separators.  Numbers may
// follow each other without separator if this is unambiguous, as in
// "1-2" or "0.5.5".
func (sc *dataScanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	s := sc.s
	i := sc.pos

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, sc.errorf("expected number")
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, sc.errorf("invalid number %q", s[start:i])
	}
	sc.pos = i
	return x, nil
}

func (sc *dataScanner) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("svgpath: %s at offset %d", msg, sc.pos)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatData converts p into SVG path data, using absolute commands.
func FormatData(p trail.Path) string {
	var b strings.Builder
	pt := func(v vec.Vec2) {
		b.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
	}
	for _, lt := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		cur := lt.Base
		b.WriteString("M")
		pt(cur)
		for _, s := range lt.Value.Segments {
			switch s.Kind {
			case trail.KindLinear:
				b.WriteString(" L")
				pt(cur.Add(s.End))
			case trail.KindCubic:
				b.WriteString(" C")
				pt(cur.Add(s.C1))
				b.WriteByte(' ')
				pt(cur.Add(s.C2))
				b.WriteByte(' ')
				pt(cur.Add(s.End))
			}
			cur = cur.Add(s.End)
		}
		if lt.Value.Closed {
			b.WriteString(" Z")
		}
	}
	return b.String()
}
