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

package scenarios

import "seehuhn.de/go/mirror"

var concaveReal = []Scenario{
	{
		Name:     "default",
		Radius:   96,
		Distance: 66,
		Height:   16,
		Rays:     mirror.Visibility{FP: true},
	},
	{
		Name:     "between_focus_and_center",
		Radius:   96,
		Distance: 66,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "at_center",
		Radius:   96,
		Distance: 96,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "beyond_center",
		Radius:   64,
		Distance: 100,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "far_away",
		Radius:   64,
		Distance: 125,
		Height:   32,
		Rays:     allRays,
	},
	{
		Name:     "just_outside_focus",
		Radius:   120,
		Distance: 64,
		Height:   8,
		Rays:     allRays,
	},
}

var concaveVirtual = []Scenario{
	{
		Name:     "inside_focus",
		Radius:   100,
		Distance: 40,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "close_to_vertex",
		Radius:   150,
		Distance: 24,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "tall_object",
		Radius:   120,
		Distance: 30,
		Height:   32,
		Rays:     mirror.Visibility{PF: true, CC: true},
	},
	{
		Name:     "just_inside_focus",
		Radius:   120,
		Distance: 56,
		Height:   8,
		Rays:     allRays,
	},
}
