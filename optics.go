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

// epsilon is the threshold below which denominators and lengths are
// treated as zero.
const epsilon = 1e-9

// farAway is the distance along the axis used to place an image at infinity.
const farAway = 10000

// State is an immutable snapshot of the mirror parameters.
// All methods are pure functions of the snapshot; equal states give
// identical results.
//
// The zero State is not useful; obtain one from [Session.State] or
// [Limits.State].
type State struct {
	radius       float64
	distance     float64
	objectHeight float64
	convex       bool
	visibility   Visibility
}

// Radius returns the (positive) radius of curvature.
func (s State) Radius() float64 { return s.radius }

// Distance returns the object distance u from the vertex.
func (s State) Distance() float64 { return s.distance }

// ObjectHeight returns the height of the object above the axis.
func (s State) ObjectHeight() float64 { return s.objectHeight }

// Convex reports whether the mirror is convex.
func (s State) Convex() bool { return s.convex }

// Visibility returns the ray visibility flags.
func (s State) Visibility() Visibility { return s.visibility }

// FocalLength returns the unsigned focal length R/2.
func (s State) FocalLength() float64 {
	return s.radius * 0.5
}

// SignedFocalLength returns the focal length as used in the mirror
// equation: positive for concave mirrors, negative for convex ones.
func (s State) SignedFocalLength() float64 {
	if s.convex {
		return -s.FocalLength()
	}
	return s.FocalLength()
}

// ImageDistance solves 1/u + 1/v = 1/f for v.
// Negative values indicate an image behind the mirror.
// If the object sits at the focal point the result is +Inf.
func (s State) ImageDistance() float64 {
	u := s.distance
	f := s.SignedFocalLength()
	if math.Abs(u-f) < epsilon {
		return math.Inf(1)
	}
	return u * f / (u - f)
}

// Magnification returns -v/u, or +Inf if the image is at infinity.
func (s State) Magnification() float64 {
	v := s.ImageDistance()
	if !isFinite(v) {
		return math.Inf(1)
	}
	return -v / s.distance
}

// ImageHeight returns the signed image height; negative heights describe
// an inverted image.
func (s State) ImageHeight() float64 {
	m := s.Magnification()
	if !isFinite(m) {
		return math.Inf(1)
	}
	return s.objectHeight * m
}

// IsVirtual reports whether the image is virtual. An image at infinity
// counts as virtual.
func (s State) IsVirtual() bool {
	v := s.ImageDistance()
	return v < 0 || !isFinite(v)
}

// ObjectPoint returns the tip of the object.
func (s State) ObjectPoint() vec.Vec2 {
	return vec.Vec2{X: -s.distance, Y: -s.objectHeight}
}

// ImagePoint returns the tip of the image.
//
// When the image is at infinity, the returned point lies far out along the
// axis at the height of the object. This is only meant for drawing.
func (s State) ImagePoint() vec.Vec2 {
	v := s.ImageDistance()
	if !isFinite(v) {
		sign := 1.0
		if s.convex {
			sign = -1
		}
		return vec.Vec2{X: -sign * farAway, Y: -s.objectHeight}
	}
	y := -s.objectHeight
	if h := s.ImageHeight(); isFinite(h) {
		y = -h
	}
	return vec.Vec2{X: -v, Y: y}
}

// Center returns the centre of curvature.
// It lies behind a convex mirror and in front of a concave one.
func (s State) Center() vec.Vec2 {
	if s.convex {
		return vec.Vec2{X: s.radius}
	}
	return vec.Vec2{X: -s.radius}
}

// Focus returns the principal focal point, half way between the vertex and
// the centre of curvature.
func (s State) Focus() vec.Vec2 {
	return s.Center().Mul(0.5)
}

// Regime classifies the state for the ray constructions.
func (s State) Regime() Regime {
	switch v := s.ImageDistance(); {
	case s.convex:
		return Convex
	case !isFinite(v):
		return ConcaveDegenerate
	case v < 0:
		return ConcaveVirtual
	default:
		return ConcaveReal
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
