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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/mirror/diagram"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the ray diagram",
		Long: `Draw the ray diagram for the current parameters. The output format is
chosen by the file name extension: .png, .pdf or .json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := diagram.Build(a.session.State(), a.cfg.Options())
			if err != nil {
				return err
			}
			return writeDiagram(output, d)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.png, .pdf or .json)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// writeDiagram writes d to fname, in the format given by the extension.
func writeDiagram(fname string, d *diagram.Diagram) error {
	ext := strings.ToLower(filepath.Ext(fname))
	switch ext {
	case ".pdf":
		if err := diagram.WritePDF(fname, d); err != nil {
			return err
		}
	case ".png", ".json":
		fd, err := os.Create(fname)
		if err != nil {
			return err
		}
		if ext == ".png" {
			err = diagram.WritePNG(fd, d)
		} else {
			err = diagram.WriteJSON(fd, d)
		}
		if err != nil {
			fd.Close()
			return fmt.Errorf("writing %s: %w", fname, err)
		}
		if err := fd.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	slog.Info("diagram written", "file", fname, "items", len(d.Items))
	return nil
}
