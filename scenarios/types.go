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

// Package scenarios is a catalogue of named mirror configurations.
//
// The scenarios cover every regime of the ray constructions, together with
// a few configurations which lie outside the admissible ranges and are
// clamped. They are used for tests, benchmarks and by the command line
// tool.
package scenarios

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/mirror"
)

// Scenario defines one configuration of mirror and object.
type Scenario struct {
	Name     string // lowercase a-z, 0-9 and _ only
	Radius   float64
	Distance float64
	Height   float64
	Convex   bool
	Rays     mirror.Visibility
}

// Apply sets all parameters of s to the scenario's values.
// Values outside the session's limits are clamped.
func (sc Scenario) Apply(s *mirror.Session) {
	s.SetRadius(sc.Radius)
	s.SetDistance(sc.Distance)
	s.SetObjectHeight(sc.Height)
	s.SetConvex(sc.Convex)
	s.UpdateRayVisibility(func(mirror.Visibility) mirror.Visibility {
		return sc.Rays
	})
}

// State returns the scenario as a snapshot with the default limits.
func (sc Scenario) State() mirror.State {
	return mirror.DefaultLimits.State(sc.Radius, sc.Distance, sc.Height, sc.Convex, sc.Rays)
}

// All contains all scenarios, grouped by category.
var All = map[string][]Scenario{
	"concave_real":    concaveReal,
	"concave_virtual": concaveVirtual,
	"convex":          convex,
	"degenerate":      degenerate,
	"clamped":         clamped,
}

// Categories returns the category names in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(All))
}

// FullName returns the name of a scenario prefixed by its category.
func FullName(category string, sc Scenario) string {
	return category + "_" + sc.Name
}

// Lookup finds a scenario by its full name.
func Lookup(name string) (Scenario, error) {
	for _, category := range Categories() {
		for _, sc := range All[category] {
			if FullName(category, sc) == name {
				return sc, nil
			}
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}

var allRays = mirror.Visibility{PF: true, FP: true, CC: true, V: true}
