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

// grid calls fn for a grid of radius and distance values covering the
// default limits.
func grid(fn func(radius, distance float64)) {
	for radius := 64.0; radius <= 150; radius += 2.5 {
		for distance := 24.0; distance <= 125; distance += 1.75 {
			fn(radius, distance)
		}
	}
}

func concave(radius, distance float64) State {
	return DefaultLimits.State(radius, distance, 16, false, Visibility{})
}

func convex(radius, distance float64) State {
	return DefaultLimits.State(radius, distance, 16, true, Visibility{})
}

func TestFocalLength(t *testing.T) {
	st := concave(96, 66)
	if st.FocalLength() != 48 {
		t.Errorf("FocalLength = %g, want 48", st.FocalLength())
	}
	if st.SignedFocalLength() != 48 {
		t.Errorf("SignedFocalLength = %g, want 48", st.SignedFocalLength())
	}
	st = convex(96, 66)
	if st.SignedFocalLength() != -48 {
		t.Errorf("convex SignedFocalLength = %g, want -48", st.SignedFocalLength())
	}
}

func TestMirrorEquation(t *testing.T) {
	grid(func(radius, distance float64) {
		st := concave(radius, distance)
		f := st.FocalLength()
		if distance <= f {
			return
		}
		u, v := st.Distance(), st.ImageDistance()
		if d := 1/u + 1/v - 1/f; math.Abs(d) > 1e-6 {
			t.Errorf("R=%g u=%g: 1/u+1/v-1/f = %g", radius, distance, d)
		}
	})
}

func TestRealImageBeyondCenter(t *testing.T) {
	grid(func(radius, distance float64) {
		if distance <= radius {
			return
		}
		st := concave(radius, distance)
		m := st.Magnification()
		if st.IsVirtual() || m >= 0 || math.Abs(m) >= 1 {
			t.Errorf("R=%g u=%g: virtual=%t m=%g", radius, distance, st.IsVirtual(), m)
		}
		if st.Regime() != ConcaveReal {
			t.Errorf("R=%g u=%g: regime %s", radius, distance, st.Regime())
		}
	})
}

func TestVirtualImageInsideFocalLength(t *testing.T) {
	grid(func(radius, distance float64) {
		st := concave(radius, distance)
		if distance >= st.FocalLength() {
			return
		}
		if !st.IsVirtual() || st.ImageDistance() >= 0 {
			t.Errorf("R=%g u=%g: virtual=%t v=%g",
				radius, distance, st.IsVirtual(), st.ImageDistance())
		}
		if st.Magnification() <= 1 {
			t.Errorf("R=%g u=%g: m=%g, want > 1", radius, distance, st.Magnification())
		}
		if st.Regime() != ConcaveVirtual {
			t.Errorf("R=%g u=%g: regime %s", radius, distance, st.Regime())
		}
	})
}

func TestConvexImage(t *testing.T) {
	grid(func(radius, distance float64) {
		st := convex(radius, distance)
		m := st.Magnification()
		if !st.IsVirtual() || m <= 0 || m >= 1 {
			t.Errorf("R=%g u=%g: virtual=%t m=%g", radius, distance, st.IsVirtual(), m)
		}
		if st.Regime() != Convex {
			t.Errorf("R=%g u=%g: regime %s", radius, distance, st.Regime())
		}
	})
}

func TestObjectAtFocalPoint(t *testing.T) {
	st := concave(100, 50)
	if !math.IsInf(st.ImageDistance(), 1) {
		t.Errorf("ImageDistance = %g, want +Inf", st.ImageDistance())
	}
	if !math.IsInf(st.Magnification(), 1) {
		t.Errorf("Magnification = %g, want +Inf", st.Magnification())
	}
	if !math.IsInf(st.ImageHeight(), 1) {
		t.Errorf("ImageHeight = %g, want +Inf", st.ImageHeight())
	}
	if !st.IsVirtual() {
		t.Error("image at infinity is not classified virtual")
	}
	if st.Regime() != ConcaveDegenerate {
		t.Errorf("regime %s, want %s", st.Regime(), ConcaveDegenerate)
	}
	want := vec.Vec2{X: -10000, Y: -16}
	if got := st.ImagePoint(); got != want {
		t.Errorf("ImagePoint = %v, want %v", got, want)
	}
}

func TestEnlargedVirtualImage(t *testing.T) {
	st := concave(100, 40)
	if st.FocalLength() != 50 {
		t.Fatalf("FocalLength = %g", st.FocalLength())
	}
	if v := st.ImageDistance(); math.Abs(v+200) > 1e-9 {
		t.Errorf("ImageDistance = %g, want -200", v)
	}
	if m := st.Magnification(); math.Abs(m-5) > 1e-9 {
		t.Errorf("Magnification = %g, want 5", m)
	}
	if h := st.ImageHeight(); math.Abs(h-80) > 1e-9 {
		t.Errorf("ImageHeight = %g, want 80", h)
	}
	if !st.IsVirtual() {
		t.Error("image is not virtual")
	}
	img := st.ImagePoint()
	if math.Abs(img.X-200) > 1e-9 || math.Abs(img.Y+80) > 1e-9 {
		t.Errorf("ImagePoint = %v, want (200, -80)", img)
	}
}

func TestPoints(t *testing.T) {
	st := DefaultLimits.State(96, 150, 10, false, Visibility{})
	if got, want := st.ObjectPoint(), (vec.Vec2{X: -150, Y: -10}); got != want {
		t.Errorf("ObjectPoint = %v, want %v", got, want)
	}
	v := st.ImageDistance()
	if got := st.ImagePoint(); got.X != -v || got.Y != -st.ImageHeight() {
		t.Errorf("ImagePoint = %v, want (%g, %g)", got, -v, -st.ImageHeight())
	}
	// inverted real image below the axis
	if st.ImagePoint().Y <= 0 {
		t.Errorf("real image at y=%g, want > 0", st.ImagePoint().Y)
	}

	if got, want := st.Center(), (vec.Vec2{X: -96}); got != want {
		t.Errorf("concave Center = %v, want %v", got, want)
	}
	if got, want := st.Focus(), (vec.Vec2{X: -48}); got != want {
		t.Errorf("concave Focus = %v, want %v", got, want)
	}
	st = DefaultLimits.State(96, 150, 10, true, Visibility{})
	if got, want := st.Center(), (vec.Vec2{X: 96}); got != want {
		t.Errorf("convex Center = %v, want %v", got, want)
	}
	if got, want := st.Focus(), (vec.Vec2{X: 48}); got != want {
		t.Errorf("convex Focus = %v, want %v", got, want)
	}
}
