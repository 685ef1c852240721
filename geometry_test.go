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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestLineCircleIntersection(t *testing.T) {
	cases := []struct {
		name        string
		origin, dir vec.Vec2
		center      vec.Vec2
		r           float64
		wantT       float64
		wantOK      bool
	}{
		{"outside", pt(-5, 0), pt(1, 0), pt(0, 0), 1, 4, true},
		{"inside", pt(0, 0), pt(1, 0), pt(0, 0), 1, 1, true},
		{"scaled direction", pt(-5, 0), pt(2, 0), pt(0, 0), 1, 2, true},
		{"tangent", pt(-5, 1), pt(1, 0), pt(0, 0), 1, 5, true},
		{"miss", pt(-5, 2), pt(1, 0), pt(0, 0), 1, 0, false},
		{"behind", pt(5, 0), pt(1, 0), pt(0, 0), 1, 0, false},
		{"zero direction", pt(-5, 0), pt(0, 0), pt(0, 0), 1, 0, false},
		{"on circle leaving", pt(1, 0), pt(1, 0), pt(0, 0), 1, 0, false},
		{"on circle entering", pt(-1, 0), pt(1, 0), pt(0, 0), 1, 2, true},
		{"offset centre", pt(0, 3), pt(0, 1), pt(0, 10), 2, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LineCircleIntersection(tc.origin, tc.dir, tc.center, tc.r)
			if ok != tc.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tc.wantOK)
			}
			if ok && math.Abs(got-tc.wantT) > 1e-12 {
				t.Errorf("t = %g, want %g", got, tc.wantT)
			}
		})
	}
}

func TestRaycastToMirror(t *testing.T) {
	cases := []struct {
		name        string
		origin, dir vec.Vec2
		center      vec.Vec2
		r           float64
		want        vec.Vec2
		wantOK      bool
	}{
		{"concave from inside", pt(-5, 0), pt(1, 0), pt(-10, 0), 10, pt(0, 0), true},
		{"concave skips far side", pt(-25, 0), pt(1, 0), pt(-10, 0), 10, pt(0, 0), true},
		{"convex", pt(-5, 0), pt(1, 0), pt(10, 0), 10, pt(0, 0), true},
		{"convex above axis", pt(-5, -6), pt(1, 0), pt(10, 0), 10, pt(2, -6), true},
		{"concave above axis", pt(-5, -6), pt(1, 0), pt(-10, 0), 10, pt(-2, -6), true},
		{"miss", pt(-5, -20), pt(1, 0), pt(10, 0), 10, vec.Vec2{}, false},
		{"away from mirror", pt(-5, 0), pt(-1, 0), pt(10, 0), 10, vec.Vec2{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RaycastToMirror(tc.origin, tc.dir, tc.center, tc.r)
			if ok != tc.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tc.wantOK)
			}
			if ok && !near(got, tc.want, 1e-9) {
				t.Errorf("hit = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLinearYAtX(t *testing.T) {
	cases := []struct {
		a, b vec.Vec2
		x    float64
		want float64
	}{
		{pt(0, 0), pt(2, 4), 1, 2},
		{pt(0, 0), pt(2, 4), 3, 6},
		{pt(-10, -5), pt(10, 5), 0, 0},
		{pt(1, 1), pt(1, 5), 7, 1},
		{pt(1, 1), pt(1+1e-12, 5), 0, 1},
	}
	for _, tc := range cases {
		if got := LinearYAtX(tc.a, tc.b, tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("LinearYAtX(%v, %v, %g) = %g, want %g", tc.a, tc.b, tc.x, got, tc.want)
		}
	}
}

func TestMakeBehindPoint(t *testing.T) {
	got := MakeBehindPoint(pt(0, 0), pt(3, 4), 10)
	if !near(got, pt(-6, -8), 1e-12) {
		t.Errorf("got %v, want (-6, -8)", got)
	}

	got = MakeBehindPoint(pt(1, 1), pt(1, 3), 2)
	if !near(got, pt(1, -1), 1e-12) {
		t.Errorf("got %v, want (1, -1)", got)
	}

	// zero-length direction must not produce NaN
	got = MakeBehindPoint(pt(2, 3), pt(2, 3), 5)
	if got != pt(2, 3) {
		t.Errorf("got %v, want (2, 3)", got)
	}
}

func TestPointToward(t *testing.T) {
	got := pointToward(pt(1, 1), pt(4, 5), 10)
	if !near(got, pt(7, 9), 1e-12) {
		t.Errorf("got %v, want (7, 9)", got)
	}
	got = pointToward(pt(1, 1), pt(1, 1), 10)
	if got != pt(1, 1) {
		t.Errorf("degenerate: got %v, want (1, 1)", got)
	}
}
