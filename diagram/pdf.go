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

package diagram

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes d as a single page PDF file. One pixel becomes one PDF
// point; strokes and dashes are expressed with the native PDF operators.
func WritePDF(fname string, d *Diagram) error {
	paper := &pdf.Rectangle{
		URx: float64(d.Width),
		URy: float64(d.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fname, err)
	}

	// PDF has the origin at the bottom left, device coordinates have it at
	// the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(d.Height)})

	var dash []float64
	var phase float64
	for _, it := range d.Items {
		if it.Fill {
			page.SetFillColor(color.DeviceGray(it.Gray))
		} else {
			page.SetStrokeColor(color.DeviceGray(it.Gray))
			page.SetLineWidth(it.Width)
			page.SetLineCap(it.Cap)
			page.SetLineJoin(it.Join)
			page.SetMiterLimit(miterLimit(it))
			if !slices.Equal(dash, it.Dash) || phase != it.DashPhase {
				page.SetLineDash(it.Dash, it.DashPhase)
				dash, phase = it.Dash, it.DashPhase
			}
		}

		var current, start vec.Vec2
		i := 0
		for _, cmd := range it.Path.Cmds {
			pts := it.Path.Coords[i:]
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
				current, start = pts[0], pts[0]
				i++
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
				current = pts[0]
				i++
			case path.CmdQuadTo:
				// PDF has no quadratic curves
				c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
				c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
				current = pts[1]
				i += 2
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				current = pts[2]
				i += 3
			case path.CmdClose:
				page.ClosePath()
				current = start
			}
		}

		if it.Fill {
			page.Fill()
		} else {
			page.Stroke()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
