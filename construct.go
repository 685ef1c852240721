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

package mirror

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Lengths (in cm) of the finite stubs drawn for rays which diverge or
// which end at a virtual image.
const (
	stubOvershoot = 8  // how far a stub continues past its reference point
	convexStubMin = 30 // minimum stub length for convex mirrors
	vertexStubCut = 24 // shortening of the vertex stub for virtual images
	vertexStubMin = 20
)

// construction caches the points shared by all ray builders.
type construction struct {
	obj, img      vec.Vec2
	center, focus vec.Vec2
	r, f, u, h    float64
}

func newConstruction(s State) *construction {
	return &construction{
		obj:    s.ObjectPoint(),
		img:    s.ImagePoint(),
		center: s.Center(),
		focus:  s.Focus(),
		r:      s.radius,
		f:      s.FocalLength(),
		u:      s.distance,
		h:      s.objectHeight,
	}
}

type builder func(c *construction) RayData

// builders is indexed by ray kind and regime.
var builders = [numKinds][numRegimes]builder{
	PF: {
		Convex:            (*construction).pfConvex,
		ConcaveReal:       (*construction).pfReal,
		ConcaveVirtual:    (*construction).pfVirtual,
		ConcaveDegenerate: (*construction).pfDegenerate,
	},
	FP: {
		Convex:            (*construction).fpConvex,
		ConcaveReal:       (*construction).fpReal,
		ConcaveVirtual:    (*construction).fpVirtual,
		ConcaveDegenerate: (*construction).fpDegenerate,
	},
	CC: {
		Convex:            (*construction).ccConvex,
		ConcaveReal:       (*construction).ccReal,
		ConcaveVirtual:    (*construction).ccVirtual,
		ConcaveDegenerate: (*construction).ccDegenerate,
	},
	V: {
		Convex:            (*construction).vConvex,
		ConcaveReal:       (*construction).vReal,
		ConcaveVirtual:    (*construction).vVirtual,
		ConcaveDegenerate: (*construction).vDegenerate,
	},
}

// Ray constructs the construction ray of kind k.
// The second result is false if the ray is hidden.
func (s State) Ray(k Kind) (RayData, bool) {
	if k < 0 || k >= numKinds || !s.visibility.Show(k) {
		return RayData{}, false
	}
	return builders[k][s.Regime()](newConstruction(s)), true
}

// PFRay returns the ray which runs parallel to the axis and is reflected
// through the focal point.
func (s State) PFRay() (RayData, bool) { return s.Ray(PF) }

// FPRay returns the ray which runs through the focal point and is reflected
// parallel to the axis.
func (s State) FPRay() (RayData, bool) { return s.Ray(FP) }

// CCRay returns the ray along the normal through the centre of curvature.
func (s State) CCRay() (RayData, bool) { return s.Ray(CC) }

// VRay returns the ray which meets the mirror at the vertex.
func (s State) VRay() (RayData, bool) { return s.Ray(V) }

// mirrorHit casts a ray from the object and falls back to the point where
// the line through the object and through crosses x = 0.
func (c *construction) mirrorHit(dir, through vec.Vec2) vec.Vec2 {
	if hit, ok := RaycastToMirror(c.obj, dir, c.center, c.r); ok {
		return hit
	}
	return axisCrossing(c.obj, through)
}

// parallelHit is where a ray parallel to the axis at height y meets
// the mirror.
func (c *construction) parallelHit(y float64) vec.Vec2 {
	start := vec.Vec2{X: c.obj.X, Y: y}
	if hit, ok := RaycastToMirror(start, vec.Vec2{X: 1}, c.center, c.r); ok {
		return hit
	}
	return vec.Vec2{X: 0, Y: y}
}

// parallel to the axis, then through the focal point

func (c *construction) pfReal() RayData {
	hit := c.parallelHit(c.obj.Y)
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, c.img),
	}
}

func (c *construction) pfVirtual() RayData {
	hit := c.parallelHit(c.obj.Y)
	ext := math.Sqrt(c.h*c.h + c.f*c.f + stubOvershoot)
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, MakeBehindPoint(hit, c.img, c.f+stubOvershoot)),
		Extended:  Present(hit, MakeBehindPoint(c.img, hit, ext)),
	}
}

func (c *construction) pfDegenerate() RayData {
	hit := c.parallelHit(c.obj.Y)
	toFocus := c.focus.Sub(hit).Length()
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, pointToward(hit, c.focus, toFocus+stubOvershoot)),
	}
}

func (c *construction) pfConvex() RayData {
	hit := c.parallelHit(c.obj.Y)
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, MakeBehindPoint(hit, c.focus, max(c.u, convexStubMin))),
		Extended:  Present(hit, MakeBehindPoint(c.focus, hit, stubOvershoot)),
	}
}

// through the focal point, then parallel to the axis

func (c *construction) fpReal() RayData {
	hit := c.mirrorHit(c.focus.Sub(c.obj), c.focus)
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, vec.Vec2{X: c.img.X, Y: hit.Y}),
	}
}

// fpVirtual covers an object inside the focal length. The line from the
// focal point through the object leads away from the mirror, so only the
// dashed construction line is drawn.
func (c *construction) fpVirtual() RayData {
	return RayData{
		ExtendedIncident: Present(c.obj, c.focus),
	}
}

// fpDegenerate covers an object in the focal plane. The line through the
// object and the focal point is perpendicular to the axis; the ray is
// replaced by one at the height where that line meets x = 0, which leaves
// the mirror parallel and never meets the other rays.
func (c *construction) fpDegenerate() RayData {
	hit := c.parallelHit(LinearYAtX(c.obj, c.focus, 0))
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, vec.Vec2{X: c.obj.X - c.f, Y: hit.Y}),
	}
}

func (c *construction) fpConvex() RayData {
	hit := c.mirrorHit(c.focus.Sub(c.obj), c.focus)
	return RayData{
		Incident:         Present(c.obj, hit),
		Reflected:        Present(hit, vec.Vec2{X: c.obj.X, Y: hit.Y}),
		Extended:         Present(hit, vec.Vec2{X: c.img.X, Y: hit.Y}),
		ExtendedIncident: Present(hit, c.focus),
	}
}

// through the centre of curvature

// ccHit finds where the line through the object and the centre of
// curvature meets the mirror, travelling towards the mirror.
//
// An object standing at the centre gives a line perpendicular to the axis,
// which misses the mirror; the ray is then taken parallel to the axis.
func (c *construction) ccHit() vec.Vec2 {
	dir := c.center.Sub(c.obj)
	if dir.X < 0 {
		dir = dir.Mul(-1)
	}
	if hit, ok := RaycastToMirror(c.obj, dir, c.center, c.r); ok {
		return hit
	}
	return c.parallelHit(c.obj.Y)
}

func (c *construction) ccReal() RayData {
	hit := c.ccHit()
	res := RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, c.img),
	}
	if c.obj.X > c.center.X+epsilon {
		// the centre lies behind the object
		res.ExtendedIncident = Present(c.obj, c.center)
	}
	return res
}

// ccVirtual places the hit where the line from the centre through the
// virtual image meets the mirror.
func (c *construction) ccVirtual() RayData {
	angle := math.Atan2(c.img.Y-c.center.Y, c.img.X-c.center.X)
	hit := vec.Vec2{
		X: c.center.X + c.r*math.Cos(angle),
		Y: c.center.Y + c.r*math.Sin(angle),
	}
	ext := math.Sqrt(c.h*c.h + c.r*c.r + stubOvershoot)
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, MakeBehindPoint(hit, c.img, c.r+stubOvershoot)),
		Extended:  Present(hit, MakeBehindPoint(c.img, hit, ext)),
	}
}

func (c *construction) ccDegenerate() RayData {
	hit := c.ccHit()
	toCenter := c.center.Sub(hit).Length()
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, pointToward(hit, c.center, toCenter+stubOvershoot)),
	}
}

func (c *construction) ccConvex() RayData {
	hit := c.ccHit()
	return RayData{
		Incident:  Present(c.obj, hit),
		Reflected: Present(hit, MakeBehindPoint(hit, c.center, max(c.u, convexStubMin))),
		Extended:  Present(hit, c.center),
	}
}

// to the vertex

func (c *construction) vReal() RayData {
	var vertex vec.Vec2
	return RayData{
		Incident:  Present(c.obj, vertex),
		Reflected: Present(vertex, c.img),
	}
}

// vVirtual draws the reflected ray opposite to the direction of the
// virtual image, as seen from the vertex.
func (c *construction) vVirtual() RayData {
	var vertex vec.Vec2
	angle := math.Atan2(c.img.Y, c.img.X) + math.Pi
	length := max(c.f-vertexStubCut, vertexStubMin)
	end := vec.Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
	return RayData{
		Incident:  Present(c.obj, vertex),
		Reflected: Present(vertex, end),
		Extended:  Present(vertex, c.img),
	}
}

// vDegenerate reflects the incident ray about the axis.
func (c *construction) vDegenerate() RayData {
	var vertex vec.Vec2
	in := vertex.Sub(c.obj)
	out := vec.Vec2{X: -in.X, Y: in.Y}
	return RayData{
		Incident:  Present(c.obj, vertex),
		Reflected: Present(vertex, unit(out).Mul(c.u)),
	}
}

func (c *construction) vConvex() RayData {
	var vertex vec.Vec2
	return RayData{
		Incident:  Present(c.obj, vertex),
		Reflected: Present(vertex, MakeBehindPoint(vertex, c.img, max(c.u, convexStubMin))),
		Extended:  Present(vertex, c.img),
	}
}
