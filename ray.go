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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Segment is a line segment which may be absent.
// The zero Segment is absent.
type Segment struct {
	a, b    vec.Vec2
	present bool
}

// Present returns the segment from a to b.
func Present(a, b vec.Vec2) Segment {
	return Segment{a: a, b: b, present: true}
}

// Absent is the segment which is not drawn.
var Absent = Segment{}

// Points returns the end points of the segment.
// The last result is false if the segment is absent.
func (s Segment) Points() (a, b vec.Vec2, ok bool) {
	return s.a, s.b, s.present
}

// IsPresent reports whether the segment should be drawn.
func (s Segment) IsPresent() bool {
	return s.present
}

func (s Segment) String() string {
	if !s.present {
		return "absent"
	}
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.a.X, s.a.Y, s.b.X, s.b.Y)
}

// RayData is the geometry of one construction ray.
type RayData struct {
	// Incident runs from the object to the mirror.
	Incident Segment

	// Reflected leaves the mirror.
	Reflected Segment

	// Extended is the dashed back-projection of the reflected ray, towards
	// a virtual image.
	Extended Segment

	// ExtendedIncident is the dashed continuation of the incident ray.
	ExtendedIncident Segment
}

// Segment returns the segment with the given role.
func (r RayData) Segment(role Role) Segment {
	switch role {
	case RoleIncident:
		return r.Incident
	case RoleReflected:
		return r.Reflected
	case RoleExtended:
		return r.Extended
	case RoleExtendedIncident:
		return r.ExtendedIncident
	}
	return Absent
}

// Role identifies the function of a segment within a [RayData].
type Role int

// These are the segment roles.
const (
	RoleIncident Role = iota
	RoleReflected
	RoleExtended
	RoleExtendedIncident

	numRoles
)

// Roles lists the segment roles in drawing order.
var Roles = [numRoles]Role{RoleIncident, RoleReflected, RoleExtended, RoleExtendedIncident}

func (r Role) String() string {
	switch r {
	case RoleIncident:
		return "incident"
	case RoleReflected:
		return "reflected"
	case RoleExtended:
		return "extended"
	case RoleExtendedIncident:
		return "extendedIncident"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Dashed reports whether segments of this role are back-projections,
// conventionally drawn dashed.
func (r Role) Dashed() bool {
	return r == RoleExtended || r == RoleExtendedIncident
}

// Kind identifies one of the four construction rays.
type Kind int

// These are the construction rays.
const (
	PF Kind = iota // parallel to the axis, reflected through the focal point
	FP             // through the focal point, reflected parallel to the axis
	CC             // through the centre of curvature, reflected onto itself
	V              // to the vertex, reflected symmetric to the axis

	numKinds
)

// Kinds lists all construction rays.
var Kinds = [numKinds]Kind{PF, FP, CC, V}

func (k Kind) String() string {
	switch k {
	case PF:
		return "pf"
	case FP:
		return "fp"
	case CC:
		return "cc"
	case V:
		return "v"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts the short name of a ray ("pf", "fp", "cc" or "v")
// into a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown ray %q", name)
}

// Regime selects the branch of each ray construction.
type Regime int

// These are the possible regimes.
const (
	Convex            Regime = iota // any convex mirror; image virtual
	ConcaveReal                     // object outside the focal length
	ConcaveVirtual                  // object inside the focal length
	ConcaveDegenerate               // object at the focal point; image at infinity

	numRegimes
)

func (r Regime) String() string {
	switch r {
	case Convex:
		return "convex"
	case ConcaveReal:
		return "concave-real"
	case ConcaveVirtual:
		return "concave-virtual"
	case ConcaveDegenerate:
		return "concave-degenerate"
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}
