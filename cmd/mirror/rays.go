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

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mirror"
)

func newRaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rays",
		Short: "Print the visible construction rays as JSON",
		Long: `Print the segments of all visible construction rays as JSON, in mirror
coordinates (cm, vertex at the origin, y pointing down). Absent segments
are omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(raysJSON(a.session.State()))
		},
	}
}

type jsonRays struct {
	Regime string                             `json:"regime"`
	Object [2]float64                         `json:"object"`
	Image  *[2]float64                        `json:"image,omitempty"`
	Rays   map[string]map[string][][2]float64 `json:"rays"`
}

func raysJSON(st mirror.State) jsonRays {
	obj := st.ObjectPoint()
	res := jsonRays{
		Regime: st.Regime().String(),
		Object: [2]float64{obj.X, obj.Y},
		Rays:   make(map[string]map[string][][2]float64),
	}
	if st.Regime() != mirror.ConcaveDegenerate {
		img := st.ImagePoint()
		res.Image = &[2]float64{img.X, img.Y}
	}
	for _, k := range mirror.Kinds {
		r, ok := st.Ray(k)
		if !ok {
			continue
		}
		segs := make(map[string][][2]float64)
		for _, role := range mirror.Roles {
			p, q, ok := r.Segment(role).Points()
			if !ok {
				continue
			}
			segs[role.String()] = [][2]float64{{p.X, p.Y}, {q.X, q.Y}}
		}
		res.Rays[k.String()] = segs
	}
	return res
}
