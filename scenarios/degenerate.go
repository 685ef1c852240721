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

// degenerate scenarios have the object in the focal plane of a concave
// mirror, so that the image lies at infinity.
var degenerate = []Scenario{
	{
		Name:     "at_focus",
		Radius:   100,
		Distance: 50,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "at_focus_small",
		Radius:   64,
		Distance: 32,
		Height:   4,
		Rays:     allRays,
	},
	{
		Name:     "at_focus_large",
		Radius:   150,
		Distance: 75,
		Height:   32,
		Rays:     allRays,
	},
}

// clamped scenarios use parameters outside of the default limits.
var clamped = []Scenario{
	{
		Name:     "radius_too_small",
		Radius:   10,
		Distance: 66,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "distance_too_large",
		Radius:   96,
		Distance: 500,
		Height:   16,
		Rays:     allRays,
	},
	{
		Name:     "negative_height",
		Radius:   96,
		Distance: 66,
		Height:   -5,
		Rays:     allRays,
	},
	{
		Name:     "everything_too_large",
		Radius:   1000,
		Distance: 1000,
		Height:   1000,
		Convex:   true,
		Rays:     allRays,
	},
}
