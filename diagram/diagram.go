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

// Package diagram turns a mirror state into a ray diagram.
//
// [Build] lays out the optical axis, the mirror, the object, the image and
// the visible construction rays as a list of [Item]s in device coordinates
// (pixels, y pointing down). The items can be rasterised with [Render] and
// [WritePNG], written as vector graphics with [WritePDF], or exported with
// [WriteJSON].
package diagram

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/mirror"
)

const (
	// CMToPX is the default number of pixels per centimetre.
	CMToPX = 4

	// MirrorAperture is the default height of the drawn mirror in cm.
	MirrorAperture = 90
)

// Item is a single path to be painted.
type Item struct {
	// Name identifies the item, e.g. "axis", "mirror" or "pf.reflected".
	Name string

	// Path is the geometry in device coordinates.
	Path *path.Data

	// Fill selects filling (nonzero rule) instead of stroking.
	Fill bool

	// Width, Cap, Join, MiterLimit, Dash and DashPhase describe the pen
	// for stroked items. A MiterLimit of zero means the PDF default of 10.
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64

	// Gray is the paint colour, from 0 (black) to 1 (white).
	Gray float64
}

// Diagram is a laid out ray diagram.
type Diagram struct {
	Width, Height int
	Items         []Item
}

// Find returns the first item with the given name.
func (d *Diagram) Find(name string) (Item, bool) {
	for _, it := range d.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Options control the layout of a diagram.
type Options struct {
	Scale     float64 // pixels per centimetre
	Width     int     // canvas width in pixels
	Height    int     // canvas height in pixels
	Aperture  float64 // mirror height in cm
	LineWidth float64 // width of the ray lines in pixels
}

// DefaultOptions gives a 960x540 canvas at [CMToPX] pixels per centimetre.
var DefaultOptions = Options{
	Scale:     CMToPX,
	Width:     960,
	Height:    540,
	Aperture:  MirrorAperture,
	LineWidth: 1.5,
}

// Validate checks that all options are positive.
func (o Options) Validate() error {
	var errs []error
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		errs = append(errs, fmt.Errorf("invalid scale %g", o.Scale))
	}
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", o.Width, o.Height))
	}
	if !(o.Aperture > 0) {
		errs = append(errs, fmt.Errorf("invalid aperture %g", o.Aperture))
	}
	if !(o.LineWidth > 0) {
		errs = append(errs, fmt.Errorf("invalid line width %g", o.LineWidth))
	}
	return errors.Join(errs...)
}

// CTM maps mirror coordinates (cm) to device coordinates. The mirror
// vertex is placed at the centre of the canvas.
func (o Options) CTM() matrix.Matrix {
	return matrix.Matrix{o.Scale, 0, 0, o.Scale, float64(o.Width) / 2, float64(o.Height) / 2}
}

// pen styles
const (
	axisMargin  = 32
	markerSize  = 4
	arrowLength = 9
	arrowWidth  = 7
	clipMargin  = 16
)

var (
	axisDash      = []float64{5, 4}
	extensionDash = []float64{4, 4}
)

// Build lays out the diagram for st.
func Build(st mirror.State, opt Options) (*Diagram, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	b := &builder{
		ctm: opt.CTM(),
		clip: rect.Rect{
			LLx: -clipMargin,
			LLy: -clipMargin,
			URx: float64(opt.Width) + clipMargin,
			URy: float64(opt.Height) + clipMargin,
		},
		lw: opt.LineWidth,
	}
	d := &Diagram{Width: opt.Width, Height: opt.Height}

	vertex := b.toDevice(vec.Vec2{})
	axis := (&path.Data{}).
		MoveTo(vec.Vec2{X: axisMargin, Y: vertex.Y}).
		LineTo(vec.Vec2{X: float64(opt.Width) - axisMargin, Y: vertex.Y})
	d.Items = append(d.Items, Item{
		Name:      "axis",
		Path:      axis,
		Width:     1,
		Cap:       graphics.LineCapButt,
		Dash:      axisDash,
		DashPhase: dashPhaseAt(axisDash, vertex.X-axisMargin),
		Gray:      0.5,
	})

	d.Items = append(d.Items, Item{
		Name:  "mirror",
		Path:  b.mirrorArc(st, opt.Aperture),
		Width: 3,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
		Gray:  0.2,
	})

	for _, m := range []struct {
		name string
		at   vec.Vec2
	}{
		{"focus", st.Focus()},
		{"center", st.Center()},
		{"vertex", vec.Vec2{}},
	} {
		p := b.toDevice(m.at)
		if !inside(p, b.clip) {
			continue
		}
		d.Items = append(d.Items, Item{Name: m.name, Path: disc(p, markerSize), Fill: true, Gray: 0.35})
	}

	obj := st.ObjectPoint()
	d.Items = append(d.Items, b.arrow("object", vec.Vec2{X: obj.X}, obj, 2, 0)...)
	if v := st.ImageDistance(); !math.IsInf(v, 0) {
		img := st.ImagePoint()
		d.Items = append(d.Items, b.arrow("image", vec.Vec2{X: img.X}, img, 2, 0.55)...)
	}

	for _, k := range mirror.Kinds {
		r, ok := st.Ray(k)
		if !ok {
			continue
		}
		for _, role := range mirror.Roles {
			d.Items = append(d.Items, b.raySegment(k, role, r.Segment(role))...)
		}
	}
	return d, nil
}

type builder struct {
	ctm  matrix.Matrix
	clip rect.Rect
	lw   float64
}

func (b *builder) toDevice(p vec.Vec2) vec.Vec2 {
	m := b.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// mirrorArc draws the part of the mirror circle within the aperture, as
// a sequence of cubic Bézier curves.
func (b *builder) mirrorArc(st mirror.State, aperture float64) *path.Data {
	r := st.Radius()
	c := st.Center()
	half := min(aperture/2, r)
	alpha := math.Asin(half / r)

	// angles are measured at the centre, from the direction of the vertex
	toVertex := vec.Vec2{X: -1}
	if !st.Convex() {
		toVertex = vec.Vec2{X: 1}
	}
	at := func(theta float64) (vec.Vec2, vec.Vec2) {
		dir := rotate(toVertex, theta)
		tangent := rotate(toVertex, theta+math.Pi/2)
		return c.Add(dir.Mul(r)), tangent
	}

	const pieces = 4
	step := 2 * alpha / pieces
	k := 4.0 / 3 * math.Tan(step/4) * r

	p0, t0 := at(-alpha)
	res := (&path.Data{}).MoveTo(b.toDevice(p0))
	for i := 1; i <= pieces; i++ {
		p1, t1 := at(-alpha + float64(i)*step)
		res = res.CubeTo(
			b.toDevice(p0.Add(t0.Mul(k))),
			b.toDevice(p1.Sub(t1.Mul(k))),
			b.toDevice(p1),
		)
		p0, t0 = p1, t1
	}
	return res
}

// arrow draws a line from base to tip, in mirror coordinates, with a filled
// head at the tip.
func (b *builder) arrow(name string, base, tip vec.Vec2, width, gray float64) []Item {
	p, q, ok := clipSegment(b.toDevice(base), b.toDevice(tip), b.clip)
	if !ok {
		return nil
	}
	items := []Item{{
		Name:  name,
		Path:  (&path.Data{}).MoveTo(p).LineTo(q),
		Width: width,
		Cap:   graphics.LineCapButt,
		Gray:  gray,
	}}
	if q == b.toDevice(tip) {
		if head := arrowHead(p, q, 1); head != nil {
			items = append(items, Item{Name: name + ".head", Path: head, Fill: true, Gray: gray})
		}
	}
	return items
}

// raySegment converts one segment of a construction ray.
func (b *builder) raySegment(k mirror.Kind, role mirror.Role, s mirror.Segment) []Item {
	a, c, ok := s.Points()
	if !ok {
		return nil
	}
	p, q, ok := clipSegment(b.toDevice(a), b.toDevice(c), b.clip)
	if !ok {
		return nil
	}
	name := k.String() + "." + role.String()
	it := Item{
		Name:  name,
		Path:  (&path.Data{}).MoveTo(p).LineTo(q),
		Width: b.lw,
		Cap:   graphics.LineCapRound,
		Gray:  0.1,
	}
	switch role {
	case mirror.RoleExtended:
		it.Dash = extensionDash
		it.Cap = graphics.LineCapButt
		it.Gray = 0.4
	case mirror.RoleExtendedIncident:
		it.Dash = extensionDash
		it.Cap = graphics.LineCapButt
		it.Width = min(1, b.lw)
		it.Gray = 0.4
	}
	items := []Item{it}
	if !role.Dashed() {
		if head := arrowHead(p, q, 0.5); head != nil {
			items = append(items, Item{Name: name + ".head", Path: head, Fill: true, Gray: it.Gray})
		}
	}
	return items
}

// arrowHead returns a triangle pointing from p towards q, with its tip at
// the fraction at of the way. The result is nil if the segment is shorter
// than the head.
func arrowHead(p, q vec.Vec2, at float64) *path.Data {
	d := q.Sub(p)
	l := d.Length()
	if l < arrowLength {
		return nil
	}
	t := d.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	tip := p.Add(d.Mul(at))
	back := tip.Sub(t.Mul(arrowLength))
	return (&path.Data{}).
		MoveTo(tip).
		LineTo(back.Add(n.Mul(arrowWidth / 2))).
		LineTo(back.Sub(n.Mul(arrowWidth / 2))).
		Close()
}

// disc returns a circle of radius r around c, made of four Bézier curves.
func disc(c vec.Vec2, r float64) *path.Data {
	const k = 0.5522847498
	kr := k * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	return (&path.Data{}).
		MoveTo(pt(0, -r)).
		CubeTo(pt(kr, -r), pt(r, -kr), pt(r, 0)).
		CubeTo(pt(r, kr), pt(kr, r), pt(0, r)).
		CubeTo(pt(-kr, r), pt(-r, kr), pt(-r, 0)).
		CubeTo(pt(-r, -kr), pt(-kr, -r), pt(0, -r)).
		Close()
}

// dashPhaseAt returns the phase which makes a dash of the pattern start at
// distance s along the path.
func dashPhaseAt(pattern []float64, s float64) float64 {
	period := 0.0
	for _, l := range pattern {
		period += l
	}
	if len(pattern)%2 == 1 {
		period *= 2
	}
	if !(period > 0) {
		return 0
	}
	phase := math.Mod(-s, period)
	if phase < 0 {
		phase += period
	}
	return phase
}

func inside(p vec.Vec2, r rect.Rect) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

func rotate(v vec.Vec2, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// clipSegment clips the segment from p to q to the rectangle r
// (Liang-Barsky). The result is false if no part of the segment lies
// inside r.
func clipSegment(p, q vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	t0, t1 := 0.0, 1.0
	d := q.Sub(p)
	edges := [4][2]float64{
		{-d.X, p.X - r.LLx},
		{d.X, r.URx - p.X},
		{-d.Y, p.Y - r.LLy},
		{d.Y, r.URy - p.Y},
	}
	for _, e := range edges {
		den, num := e[0], e[1]
		if den == 0 {
			if num < 0 {
				return p, q, false
			}
			continue
		}
		t := num / den
		if den < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return p, q, false
		}
	}
	a, b := p, q
	if t0 > 0 {
		a = p.Add(d.Mul(t0))
	}
	if t1 < 1 {
		b = p.Add(d.Mul(t1))
	}
	return a, b, true
}
