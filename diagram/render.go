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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Render paints the items of d onto dst, in order. Device coordinates are
// relative to dst.Bounds().Min.
func Render(dst draw.Image, d *Diagram) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	z := vector.NewRasterizer(w, h)

	for _, it := range d.Items {
		z.Reset(w, h)
		if it.Fill {
			fillPath(z, it.Path)
		} else {
			newStroker(it).Outline(it.Path, func(poly []vec.Vec2) {
				addPolygon(z, poly)
			})
		}
		src := image.NewUniform(color.Gray{Y: grayLevel(it.Gray)})
		z.Draw(dst, bounds, src, image.Point{})
	}
}

// Rasterize renders d onto a new white image.
func Rasterize(d *Diagram) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, d.Width, d.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	Render(img, d)
	return img
}

// WritePNG renders d and writes it to w in PNG format.
func WritePNG(w io.Writer, d *Diagram) error {
	return png.Encode(w, Rasterize(d))
}

// fillPath adds the subpaths of p to z. Open subpaths are closed
// implicitly.
func fillPath(z *vector.Rasterizer, p *path.Data) {
	f32 := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }
	i := 0
	open := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(p.Coords[i]))
			open = true
			i++
		case path.CmdLineTo:
			z.LineTo(f32(p.Coords[i]))
			i++
		case path.CmdQuadTo:
			bx, by := f32(p.Coords[i])
			cx, cy := f32(p.Coords[i+1])
			z.QuadTo(bx, by, cx, cy)
			i += 2
		case path.CmdCubeTo:
			bx, by := f32(p.Coords[i])
			cx, cy := f32(p.Coords[i+1])
			dx, dy := f32(p.Coords[i+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			i += 3
		case path.CmdClose:
			if open {
				z.ClosePath()
			}
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

func addPolygon(z *vector.Rasterizer, poly []vec.Vec2) {
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func grayLevel(g float64) uint8 {
	return uint8(min(max(g, 0), 1)*255 + 0.5)
}
