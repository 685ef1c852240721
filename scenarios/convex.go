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

var convex = []Scenario{
	{
		Name:     "default",
		Radius:   96,
		Distance: 66,
		Height:   16,
		Convex:   true,
		Rays:     allRays,
	},
	{
		Name:     "large_radius",
		Radius:   150,
		Distance: 125,
		Height:   32,
		Convex:   true,
		Rays:     allRays,
	},
	{
		Name:     "small_radius_near",
		Radius:   64,
		Distance: 24,
		Height:   4,
		Convex:   true,
		Rays:     allRays,
	},
	{
		Name:     "object_at_focal_distance",
		Radius:   100,
		Distance: 50,
		Height:   16,
		Convex:   true,
		Rays:     allRays,
	},
}
