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
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/internal/config"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display the mirror, object and image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeInfo(cmd, a.session.State())
			return nil
		},
	}
}

func writeInfo(cmd *cobra.Command, st mirror.State) {
	kind := "concave"
	if st.Convex() {
		kind = "convex"
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Mirror:")
	fmt.Fprintf(out, "  Type: %s\n", kind)
	fmt.Fprintf(out, "  Radius: %.2f cm\n", st.Radius())
	fmt.Fprintf(out, "  Focal length: %.2f cm\n\n", st.SignedFocalLength())

	fmt.Fprintln(out, "Object:")
	fmt.Fprintf(out, "  Distance: %.2f cm\n", st.Distance())
	fmt.Fprintf(out, "  Height: %.2f cm\n\n", st.ObjectHeight())

	fmt.Fprintln(out, "Image:")
	if v := st.ImageDistance(); math.IsInf(v, 0) {
		fmt.Fprintln(out, "  Distance: infinite")
	} else {
		nature := "real"
		if st.IsVirtual() {
			nature = "virtual"
		}
		orientation := "upright"
		if st.Magnification() < 0 {
			orientation = "inverted"
		}
		fmt.Fprintf(out, "  Distance: %.2f cm\n", v)
		fmt.Fprintf(out, "  Height: %.2f cm\n", st.ImageHeight())
		fmt.Fprintf(out, "  Magnification: %.3f\n", st.Magnification())
		fmt.Fprintf(out, "  Nature: %s, %s\n", nature, orientation)
	}
	fmt.Fprintln(out)

	rays := strings.Join(config.RayNames(st.Visibility()), ",")
	if rays == "" {
		rays = "none"
	}
	fmt.Fprintf(out, "Regime: %s\n", st.Regime())
	fmt.Fprintf(out, "Rays: %s\n", rays)
}
