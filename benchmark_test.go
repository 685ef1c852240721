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

package mirror_test

import (
	"testing"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/scenarios"
)

func BenchmarkRays(b *testing.B) {
	for _, category := range scenarios.Categories() {
		for _, sc := range scenarios.All[category] {
			st := sc.State()
			b.Run(scenarios.FullName(category, sc), func(b *testing.B) {
				for b.Loop() {
					for _, k := range mirror.Kinds {
						_, _ = st.Ray(k)
					}
				}
			})
		}
	}
}

func BenchmarkSessionUpdate(b *testing.B) {
	s := mirror.NewSession()
	d := 24.0
	for b.Loop() {
		d += 0.5
		if d > 125 {
			d = 24
		}
		s.SetDistance(d)
		_ = s.ImageDistance()
	}
}
