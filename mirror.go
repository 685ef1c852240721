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

// Package mirror computes image formation and the classic construction rays
// for a single spherical mirror.
//
// The mirror vertex is the origin, the optical axis is the x-axis and the
// object stands to the left of the mirror at negative x. Following screen
// conventions the y-axis points down, so an object above the axis has a
// negative y-coordinate. All lengths are in centimetres.
//
// A [Session] owns the mutable parameters and clamps every update into the
// configured [Limits]. Its [Session.State] method returns an immutable
// [State] snapshot from which all derived quantities and rays are computed
// as pure functions.
package mirror

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Range is a closed interval of admissible values.
type Range struct {
	Min, Max float64
}

// Clamp returns x moved into the interval [Min, Max].
// NaN is mapped to Min.
func (r Range) Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return r.Min
	}
	return min(max(x, r.Min), r.Max)
}

// Contains reports whether x lies in the interval.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Limits gives the admissible ranges for the mirror parameters.
type Limits struct {
	Radius   Range
	Distance Range
	Height   Range
}

// DefaultLimits are the ranges used by [NewSession].
var DefaultLimits = Limits{
	Radius:   Range{Min: 64, Max: 150},
	Distance: Range{Min: 24, Max: 125},
	Height:   Range{Min: 4, Max: 32},
}

// Validate checks that all ranges are non-empty and strictly positive.
func (l Limits) Validate() error {
	check := func(name string, r Range) error {
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
			return fmt.Errorf("%s range [%g, %g] is not finite", name, r.Min, r.Max)
		}
		if r.Min <= 0 {
			return fmt.Errorf("%s range [%g, %g] must be positive", name, r.Min, r.Max)
		}
		if r.Min > r.Max {
			return fmt.Errorf("%s range [%g, %g] is empty", name, r.Min, r.Max)
		}
		return nil
	}
	if err := check("radius", l.Radius); err != nil {
		return err
	}
	if err := check("distance", l.Distance); err != nil {
		return err
	}
	return check("height", l.Height)
}

// State returns a snapshot with the given parameters, clamped into l.
func (l Limits) State(radius, distance, height float64, convex bool, vis Visibility) State {
	return State{
		radius:       l.Radius.Clamp(radius),
		distance:     l.Distance.Clamp(distance),
		objectHeight: l.Height.Clamp(height),
		convex:       convex,
		visibility:   vis,
	}
}

// Visibility holds the show/hide flag of each construction ray.
type Visibility struct {
	PF bool // parallel, then through the focal point
	FP bool // through the focal point, then parallel
	CC bool // through the centre of curvature
	V  bool // to the vertex
}

// Show reports whether rays of kind k are visible.
func (v Visibility) Show(k Kind) bool {
	switch k {
	case PF:
		return v.PF
	case FP:
		return v.FP
	case CC:
		return v.CC
	case V:
		return v.V
	}
	return false
}

// VisibilityPatch is a partial update of a [Visibility].
// Nil fields leave the corresponding flag unchanged.
type VisibilityPatch struct {
	PF, FP, CC, V *bool
}

// Apply returns v with the non-nil fields of p applied.
func (p VisibilityPatch) Apply(v Visibility) Visibility {
	if p.PF != nil {
		v.PF = *p.PF
	}
	if p.FP != nil {
		v.FP = *p.FP
	}
	if p.CC != nil {
		v.CC = *p.CC
	}
	if p.V != nil {
		v.V = *p.V
	}
	return v
}

// Session owns the parameters of one simulation.
//
// A Session is not safe for concurrent use.
type Session struct {
	limits Limits
	state  State
}

// NewSession returns a session with [DefaultLimits] and the default
// configuration: a concave mirror of radius 96, an object of height 16 at
// distance 66, and only the focal-parallel ray shown.
//
// NewSession panics if [DefaultLimits] has been changed to invalid ranges.
func NewSession() *Session {
	s, err := NewSessionWithLimits(DefaultLimits)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSessionWithLimits returns a session using the given limits.
// The default parameters of [NewSession] are clamped into l.
func NewSessionWithLimits(l Limits) (*Session, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	return &Session{
		limits: l,
		state:  l.State(96, 66, 16, false, Visibility{FP: true}),
	}, nil
}

// Limits returns the ranges used for clamping.
func (s *Session) Limits() Limits {
	return s.limits
}

// State returns a snapshot of the current parameters.
func (s *Session) State() State {
	return s.state
}

// SetRadius sets the radius of curvature, clamped into the radius range.
func (s *Session) SetRadius(r float64) {
	s.state.radius = s.limits.Radius.Clamp(r)
}

// SetFocalLength sets the radius to 2f, clamped into the radius range.
func (s *Session) SetFocalLength(f float64) {
	s.SetRadius(2 * f)
}

// SetDistance sets the object distance, clamped into the distance range.
func (s *Session) SetDistance(d float64) {
	s.state.distance = s.limits.Distance.Clamp(d)
}

// SetObjectHeight sets the object height, clamped into the height range.
func (s *Session) SetObjectHeight(h float64) {
	s.state.objectHeight = s.limits.Height.Clamp(h)
}

// SetConvex selects a convex (true) or concave (false) mirror.
func (s *Session) SetConvex(convex bool) {
	s.state.convex = convex
}

// SetRayVisibility merges p into the current ray visibility.
func (s *Session) SetRayVisibility(p VisibilityPatch) {
	s.state.visibility = p.Apply(s.state.visibility)
}

// UpdateRayVisibility replaces the ray visibility by fn applied to it.
func (s *Session) UpdateRayVisibility(fn func(Visibility) Visibility) {
	s.state.visibility = fn(s.state.visibility)
}

// Radius returns the radius of curvature.
func (s *Session) Radius() float64 { return s.state.Radius() }

// FocalLength returns the unsigned focal length.
func (s *Session) FocalLength() float64 { return s.state.FocalLength() }

// Distance returns the object distance.
func (s *Session) Distance() float64 { return s.state.Distance() }

// ObjectHeight returns the object height.
func (s *Session) ObjectHeight() float64 { return s.state.ObjectHeight() }

// Convex reports whether the mirror is convex.
func (s *Session) Convex() bool { return s.state.Convex() }

// Visibility returns the ray visibility flags.
func (s *Session) Visibility() Visibility { return s.state.Visibility() }

// ImageDistance returns the image distance of the current state.
func (s *Session) ImageDistance() float64 { return s.state.ImageDistance() }

// Magnification returns the magnification of the current state.
func (s *Session) Magnification() float64 { return s.state.Magnification() }

// ImageHeight returns the signed image height of the current state.
func (s *Session) ImageHeight() float64 { return s.state.ImageHeight() }

// IsVirtual reports whether the current image is virtual.
func (s *Session) IsVirtual() bool { return s.state.IsVirtual() }

// ObjectPoint returns the tip of the object.
func (s *Session) ObjectPoint() vec.Vec2 { return s.state.ObjectPoint() }

// ImagePoint returns the tip of the image.
func (s *Session) ImagePoint() vec.Vec2 { return s.state.ImagePoint() }

// PFRay returns the parallel-focal ray, if visible.
func (s *Session) PFRay() (RayData, bool) { return s.state.PFRay() }

// FPRay returns the focal-parallel ray, if visible.
func (s *Session) FPRay() (RayData, bool) { return s.state.FPRay() }

// CCRay returns the ray through the centre of curvature, if visible.
func (s *Session) CCRay() (RayData, bool) { return s.state.CCRay() }

// VRay returns the vertex ray, if visible.
func (s *Session) VRay() (RayData, bool) { return s.state.VRay() }
