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

// Command mirror computes images and construction rays for a spherical
// mirror and draws ray diagrams.
//
// Default parameters are read from MIRROR_* environment variables and can
// be overridden by command line flags.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/internal/config"
	"seehuhn.de/go/mirror/scenarios"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all sub-commands.
type app struct {
	cfg      *config.Config
	focal    float64
	rays     string
	scenario string

	session *mirror.Session
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, rays: strings.Join(cfg.Rays, ",")}

	rootCmd := &cobra.Command{
		Use:   "mirror",
		Short: "Ray constructions for spherical mirrors",
		Long: `mirror locates the image of an object in front of a concave or convex
spherical mirror and constructs the four classic rays: parallel-focal (pf),
focal-parallel (fp), through the centre of curvature (cc) and to the
vertex (v). Diagrams can be written as PNG, PDF or JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.scenario, "scenario", "", "start from a named scenario")
	flags.Float64Var(&cfg.Radius, "radius", cfg.Radius, "radius of curvature in cm")
	flags.Float64Var(&a.focal, "focal", cfg.Radius/2, "focal length in cm (overrides --radius)")
	flags.Float64Var(&cfg.Distance, "distance", cfg.Distance, "object distance in cm")
	flags.Float64Var(&cfg.ObjectHeight, "height", cfg.ObjectHeight, "object height in cm")
	flags.BoolVar(&cfg.Convex, "convex", cfg.Convex, "use a convex mirror")
	flags.StringVar(&a.rays, "rays", a.rays, `visible rays, e.g. "pf,fp,cc,v" or "all"`)
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "diagram scale in pixels per cm")

	rootCmd.AddCommand(
		newInfoCmd(a),
		newRaysCmd(a),
		newRenderCmd(a),
		newScenariosCmd(a),
	)
	return rootCmd
}

// setup configures logging and builds the session from the configuration,
// the scenario and the flags, in this order.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.LogLevel}))
	slog.SetDefault(logger)

	flags := cmd.Flags()
	a.cfg.Rays = strings.Split(a.rays, ",")
	s, err := a.cfg.Session()
	if err != nil {
		return err
	}
	a.session = s

	if a.scenario != "" {
		sc, err := scenarios.Lookup(a.scenario)
		if err != nil {
			return err
		}
		sc.Apply(a.session)
		slog.Debug("scenario applied", "name", a.scenario)
		if flags.Changed("radius") {
			a.session.SetRadius(a.cfg.Radius)
		}
		if flags.Changed("distance") {
			a.session.SetDistance(a.cfg.Distance)
		}
		if flags.Changed("height") {
			a.session.SetObjectHeight(a.cfg.ObjectHeight)
		}
		if flags.Changed("convex") {
			a.session.SetConvex(a.cfg.Convex)
		}
		if flags.Changed("rays") {
			vis, err := config.ParseRays(a.cfg.Rays)
			if err != nil {
				return err
			}
			a.session.UpdateRayVisibility(func(mirror.Visibility) mirror.Visibility { return vis })
		}
	}
	if flags.Changed("focal") {
		a.session.SetFocalLength(a.focal)
	}

	st := a.session.State()
	if flags.Changed("focal") {
		if st.Radius() != 2*a.focal {
			slog.Warn("focal length clamped", "requested", a.focal, "used", st.FocalLength())
		}
	} else if flags.Changed("radius") && st.Radius() != a.cfg.Radius {
		slog.Warn("radius clamped", "requested", a.cfg.Radius, "used", st.Radius())
	}
	if flags.Changed("distance") && st.Distance() != a.cfg.Distance {
		slog.Warn("distance clamped", "requested", a.cfg.Distance, "used", st.Distance())
	}
	if flags.Changed("height") && st.ObjectHeight() != a.cfg.ObjectHeight {
		slog.Warn("height clamped", "requested", a.cfg.ObjectHeight, "used", st.ObjectHeight())
	}
	slog.Debug("state",
		"radius", st.Radius(),
		"distance", st.Distance(),
		"height", st.ObjectHeight(),
		"convex", st.Convex(),
		"regime", st.Regime())
	return nil
}
