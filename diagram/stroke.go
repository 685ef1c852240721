// seehuhn.de/go/mirror - ray constructions for spherical mirrors
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

package diagram

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	// flatness is the curve approximation tolerance in pixels.
	flatness = 0.25

	// minSegmentLength is the length below which segments are dropped.
	minSegmentLength = 1e-10

	// collinear is the bound on the sine of the turning angle below which
	// two segments are joined without corner geometry.
	collinear = 1e-6

	// cuspCosine detects segments which double back on themselves.
	cuspCosine = -0.9999

	// defaultMiterLimit is used for items without a miter limit.
	defaultMiterLimit = 10
)

// segment is a piece of a flattened path, in device coordinates.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent from a to b
	n    vec.Vec2 // t rotated by 90 degrees
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < minSegmentLength {
		return segment{}, false
	}
	t := d.Mul(1 / l)
	return segment{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

func (s segment) length() float64 {
	return s.b.Sub(s.a).Length()
}

// stroker converts paths into the outline polygons of their stroke.
// All polygons have the same orientation, so that overlapping polygons
// can be filled together.
//
// Closed subpaths are stroked like open ones, with caps where the path
// returns to its start.
type stroker struct {
	width      float64
	capStyle   graphics.LineCapStyle
	joinStyle  graphics.LineJoinStyle
	miterLimit float64
	dash       []float64
	dashPhase  float64

	run []segment
	out []vec.Vec2
}

func newStroker(it Item) *stroker {
	return &stroker{
		width:      it.Width,
		capStyle:   it.Cap,
		joinStyle:  it.Join,
		miterLimit: miterLimit(it),
		dash:       it.Dash,
		dashPhase:  it.DashPhase,
	}
}

func miterLimit(it Item) float64 {
	if it.MiterLimit > 0 {
		return it.MiterLimit
	}
	return defaultMiterLimit
}

// Outline calls emit once for every outline polygon of the stroke of p.
// The slice passed to emit is only valid during the call.
func (s *stroker) Outline(p *path.Data, emit func(poly []vec.Vec2)) {
	if !(s.width > 0) {
		return
	}
	flatten(p, func(sp []segment) {
		if len(s.dash) == 0 {
			s.emitRun(sp, emit)
			return
		}
		s.dashSubpath(sp, func(run []segment) {
			s.emitRun(run, emit)
		})
	})
}

func (s *stroker) emitRun(run []segment, emit func([]vec.Vec2)) {
	if len(run) == 0 {
		return
	}
	s.outlineRun(run)
	if len(s.out) >= 3 {
		emit(s.out)
	}
}

// flatten splits p into subpaths of straight segments and calls emit for
// each non-empty subpath. Curves are approximated to within [flatness].
func flatten(p *path.Data, emit func([]segment)) {
	var segs []segment
	var current, start vec.Vec2
	add := func(a, b vec.Vec2) {
		if seg, ok := newSegment(a, b); ok {
			segs = append(segs, seg)
		}
	}
	flush := func() {
		if len(segs) > 0 {
			emit(segs)
		}
		segs = segs[:0]
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[i]
			start = current
			i++
		case path.CmdLineTo:
			add(current, p.Coords[i])
			current = p.Coords[i]
			i++
		case path.CmdQuadTo:
			c, end := p.Coords[i], p.Coords[i+1]
			// degree elevation
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			flattenCubic(current, c1, c2, end, add)
			current = end
			i += 2
		case path.CmdCubeTo:
			flattenCubic(current, p.Coords[i], p.Coords[i+1], p.Coords[i+2], add)
			current = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			if current != start {
				add(current, start)
			}
			current = start
			flush()
		}
	}
	flush()
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of pieces.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// dashSubpath splits sp into the "on" pieces of the dash pattern and calls
// emit for each of them.
func (s *stroker) dashSubpath(sp []segment, emit func([]segment)) {
	pattern := s.dash
	n := len(pattern)
	total := 0.0
	for _, l := range pattern {
		total += max(l, 0)
	}
	if n%2 == 1 {
		total *= 2
	}
	if total <= 0 {
		emit(sp)
		return
	}
	entry := func(i int) float64 { return max(pattern[i%n], 0) }

	// find the position within the pattern at the start of the path
	dist := math.Mod(s.dashPhase, total)
	if dist < 0 {
		dist += total
	}
	idx := 0
	for dist > 0 && dist >= entry(idx) {
		dist -= entry(idx)
		idx++
	}
	remaining := entry(idx) - dist
	on := idx%2 == 0

	s.run = s.run[:0]
	piece := func(seg segment, from, to, l float64) {
		if to-from < minSegmentLength {
			return
		}
		a, b := seg.a, seg.b
		if from > 0 {
			a = seg.a.Add(seg.t.Mul(from))
		}
		if to < l {
			b = seg.a.Add(seg.t.Mul(to))
		}
		s.run = append(s.run, segment{a: a, b: b, t: seg.t, n: seg.n})
	}

	for _, seg := range sp {
		l := seg.length()
		pos := 0.0
		for l-pos > remaining {
			end := pos + remaining
			if on {
				piece(seg, pos, end, l)
				if len(s.run) > 0 {
					emit(s.run)
					s.run = s.run[:0]
				}
			}
			pos = end
			idx++
			remaining = entry(idx)
			on = idx%2 == 0
		}
		if on {
			piece(seg, pos, l, l)
		}
		remaining -= l - pos
	}
	if on && len(s.run) > 0 {
		emit(s.run)
	}
	s.run = s.run[:0]
}

// outlineRun builds the outline of an open polyline into s.out: the start
// cap, the offset line on the +n side, the end cap, and the offset line on
// the -n side in reverse.
func (s *stroker) outlineRun(segs []segment) {
	d := s.width / 2
	s.out = s.out[:0]

	first, last := segs[0], segs[len(segs)-1]
	s.addCap(first.a, first.t.Mul(-1), d)

	skip := false
	for i, seg := range segs {
		if !skip {
			s.out = append(s.out, seg.a.Add(seg.n.Mul(d)))
		}
		if i == len(segs)-1 {
			s.out = append(s.out, seg.b.Add(seg.n.Mul(d)))
			break
		}
		skip = s.corner(seg.b, seg, segs[i+1], d, 1)
	}

	s.addCap(last.b, last.t, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if !skip {
			s.out = append(s.out, seg.b.Sub(seg.n.Mul(d)))
		}
		if i == 0 {
			s.out = append(s.out, seg.a.Sub(seg.n.Mul(d)))
			break
		}
		skip = s.corner(seg.a, segs[i-1], seg, d, -1)
	}
}

// corner adds the geometry where prev turns into next at p, on the side
// given by the sign of side (+1 for the +n side, traversed forwards, and -1
// for the -n side, traversed backwards).
//
// The result is true if the offset point which would normally start the
// following segment has already been replaced.
func (s *stroker) corner(p vec.Vec2, prev, next segment, d, side float64) bool {
	sin := cross(prev.t, next.t)
	normal := next.n
	if side > 0 {
		normal = prev.n
	}
	switch {
	case math.Abs(sin) < collinear:
		s.out = append(s.out, p.Add(normal.Mul(side*d)))
		return false
	case sin*side > 0:
		return s.innerCorner(p, prev, next, d, side)
	default:
		s.out = append(s.out, p.Add(normal.Mul(side*d)))
		s.addJoin(p, prev.t, next.t, normal.Mul(side), d, side)
		return false
	}
}

// innerCorner replaces the two offset points on the inner side of a corner
// by the intersection of the offset lines, where this exists.
func (s *stroker) innerCorner(p vec.Vec2, prev, next segment, d, side float64) bool {
	cos := prev.t.Dot(next.t)
	halfCos := math.Sqrt((1 + cos) / 2)
	bisector := prev.n.Add(next.n).Mul(side)
	if l := bisector.Length(); cos < 1-1e-9 && halfCos > 1e-9 && l > 1e-9 {
		s.out = append(s.out, p.Add(bisector.Mul(d/(halfCos*l))))
		return true
	}

	a, b := prev.n, next.n
	if side < 0 {
		a, b = b, a
	}
	s.out = append(s.out, p.Add(a.Mul(side*d)), p.Add(b.Mul(side*d)))
	return false
}

// addJoin adds the join on the outer side of a corner at p, where the
// tangent changes from t1 to t2. start is the direction from p to the
// offset point already in the outline.
func (s *stroker) addJoin(p, t1, t2, start vec.Vec2, d, side float64) {
	cos := t1.Dot(t2)
	join := s.joinStyle
	if cos < cuspCosine {
		join = graphics.LineJoinRound
	}

	switch join {
	case graphics.LineJoinMiter:
		halfCos := math.Sqrt((1 + cos) / 2)
		bisector := vec.Vec2{X: -t1.Y, Y: t1.X}.Add(vec.Vec2{X: -t2.Y, Y: t2.X}).Mul(side)
		l := bisector.Length()
		if halfCos > 0 && 1/halfCos <= s.miterLimit+1e-10 && l > minSegmentLength {
			s.out = append(s.out, p.Add(bisector.Mul(d/(halfCos*l))))
		}
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		s.addArc(p, d, start, -angle, false)
	}
	// bevel joins need no extra points
}

// addCap adds a line cap at p, where t points away from the line.
func (s *stroker) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch s.capStyle {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		s.out = append(s.out, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		s.addArc(p, d, n, -math.Pi, true)
	}
	// butt caps need no extra points
}

// addArc adds points on the circle of radius r around c, starting in
// direction dir and sweeping by the given angle (positive from +x towards
// +y). The start point is omitted unless withStart is set.
func (s *stroker) addArc(c vec.Vec2, r float64, dir vec.Vec2, sweep float64, withStart bool) {
	n := 1
	if r > flatness {
		step := 2 * math.Acos(1-flatness/r)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	first := 1
	if withStart {
		first = 0
	}
	for i := first; i <= n; i++ {
		s.out = append(s.out, c.Add(rotate(dir, sweep*float64(i)/float64(n)).Mul(r)))
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
