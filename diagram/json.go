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
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/path"
)

type jsonDiagram struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Items  []jsonItem `json:"items"`
}

type jsonItem struct {
	Name       string        `json:"name"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
	Gray       float64       `json:"gray"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// WriteJSON writes the items of d to w as indented JSON. Paths are given
// as lists of SVG-style commands ("M", "L", "Q", "C", "Z").
func WriteJSON(w io.Writer, d *Diagram) error {
	out := jsonDiagram{Width: d.Width, Height: d.Height}
	for _, it := range d.Items {
		ji := jsonItem{
			Name: it.Name,
			Path: pathToJSON(it.Path),
			Gray: it.Gray,
		}
		if it.Fill {
			ji.Op = "fill"
		} else {
			ji.Op = "stroke"
			ji.LineWidth = it.Width
			ji.LineCap = it.Cap.String()
			ji.LineJoin = it.Join.String()
			ji.MiterLimit = miterLimit(it)
			ji.Dash = it.Dash
			ji.DashPhase = it.DashPhase
		}
		out.Items = append(out.Items, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	i := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for j, pt := range p.Coords[i : i+n] {
			seg.Pts[j] = []float64{pt.X, pt.Y}
		}
		i += n
		segs = append(segs, seg)
	}
	return segs
}
