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

// LineCircleIntersection intersects the ray origin + t*dir with the circle
// of radius r around center. It returns the smallest root with t > 1e-9.
// The result is false if the line misses the circle or if both roots lie
// at or behind the origin.
//
// dir need not be normalised.
func LineCircleIntersection(origin, dir, center vec.Vec2, r float64) (float64, bool) {
	a := dir.Dot(dir)
	if a < epsilon*epsilon {
		return 0, false
	}
	oc := origin.Sub(center)
	halfB := oc.Dot(dir)
	c := oc.Dot(oc) - r*r

	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(disc)

	// t0 <= t1 since a > 0
	t0 := (-halfB - sqrtD) / a
	t1 := (-halfB + sqrtD) / a
	switch {
	case t0 > epsilon:
		return t0, true
	case t1 > epsilon:
		return t1, true
	default:
		return 0, false
	}
}

// RaycastToMirror returns the point where the ray origin + t*dir, t > 0,
// meets the mirror surface. The mirror is the half of the circle around
// center which contains the vertex (the origin of the coordinate system).
// If the ray first crosses the other half, it is followed through to its
// second intersection.
//
// The result is false if the ray does not hit the mirror. Callers must
// then substitute a fallback point.
func RaycastToMirror(origin, dir, center vec.Vec2, r float64) (vec.Vec2, bool) {
	t, ok := LineCircleIntersection(origin, dir, center, r)
	if !ok {
		return vec.Vec2{}, false
	}
	hit := origin.Add(dir.Mul(t))
	if onMirrorSide(hit, center) {
		return hit, true
	}

	t2, ok := LineCircleIntersection(hit, dir, center, r)
	if !ok {
		return vec.Vec2{}, false
	}
	hit = hit.Add(dir.Mul(t2))
	if !onMirrorSide(hit, center) {
		return vec.Vec2{}, false
	}
	return hit, true
}

// onMirrorSide reports whether p lies in the half plane, bounded by the line
// through center perpendicular to the axis, which contains the vertex.
func onMirrorSide(p, center vec.Vec2) bool {
	toVertex := center.Mul(-1)
	return p.Sub(center).Dot(toVertex) > 0
}

// LinearYAtX returns the y-coordinate at x on the line through a and b.
// For a (nearly) vertical line the result is a.Y.
func LinearYAtX(a, b vec.Vec2, x float64) float64 {
	if math.Abs(b.X-a.X) < epsilon {
		return a.Y
	}
	t := (x - a.X) / (b.X - a.X)
	return a.Y + t*(b.Y-a.Y)
}

// MakeBehindPoint continues the direction from target to hit by length
// beyond hit.
func MakeBehindPoint(hit, target vec.Vec2, length float64) vec.Vec2 {
	d := target.Sub(hit)
	norm := d.Length()
	if norm == 0 {
		norm = 1
	}
	return hit.Sub(d.Mul(length / norm))
}

// pointToward returns the point at the given distance from p in the
// direction of q.
func pointToward(p, q vec.Vec2, length float64) vec.Vec2 {
	return unit(q.Sub(p)).Mul(length).Add(p)
}

// unit scales v to length one. The zero vector is returned unchanged.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		l = 1
	}
	return v.Mul(1 / l)
}

// axisCrossing returns the point at x = 0 on the line through a and b.
// It is the fallback when a ray misses the mirror circle.
func axisCrossing(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: 0, Y: LinearYAtX(a, b, 0)}
}
