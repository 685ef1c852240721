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
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mirror/diagram"
	"seehuhn.de/go/mirror/scenarios"
)

func newScenariosCmd(a *app) *cobra.Command {
	var exportDir string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenarios",
		Long: `List the built-in scenarios. With --export, a PNG diagram of every
scenario is written to the given directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportDir != "" {
				return exportScenarios(exportDir, a)
			}
			return listScenarios(cmd)
		},
	}
	cmd.Flags().StringVar(&exportDir, "export", "", "write a PNG of every scenario to this directory")
	return cmd
}

func listScenarios(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tDISTANCE\tHEIGHT\tMIRROR\tREGIME")
	for _, category := range scenarios.Categories() {
		for _, sc := range scenarios.All[category] {
			kind := "concave"
			if sc.Convex {
				kind = "convex"
			}
			fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\t%s\n",
				scenarios.FullName(category, sc),
				sc.Radius, sc.Distance, sc.Height, kind, sc.State().Regime())
		}
	}
	return w.Flush()
}

func exportScenarios(dir string, a *app) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	opt := a.cfg.Options()
	for _, category := range scenarios.Categories() {
		for _, sc := range scenarios.All[category] {
			d, err := diagram.Build(sc.State(), opt)
			if err != nil {
				return err
			}
			fname := filepath.Join(dir, scenarios.FullName(category, sc)+".png")
			if err := writeDiagram(fname, d); err != nil {
				return err
			}
		}
	}
	return nil
}
