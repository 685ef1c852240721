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
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/mirror"
)

func TestRasterize(t *testing.T) {
	d := mustBuild(t, mirror.NewSession().State())
	img := Rasterize(d)

	if b := img.Bounds(); b.Dx() != 960 || b.Dy() != 540 {
		t.Fatalf("bounds %v", b)
	}
	if y := img.GrayAt(480, 270).Y; y >= 128 {
		t.Errorf("vertex pixel %d, want dark", y)
	}
	if y := img.GrayAt(0, 0).Y; y != 255 {
		t.Errorf("corner pixel %d, want white", y)
	}
	// the axis starts with a shortened dash, so that a dash begins at the
	// vertex
	if y := img.GrayAt(33, 270).Y; y == 255 {
		t.Error("axis not drawn")
	}
	if y := img.GrayAt(36, 270).Y; y != 255 {
		t.Errorf("axis gap pixel %d, want white", y)
	}
}

func TestWritePNG(t *testing.T) {
	d := mustBuild(t, mirror.NewSession().State())
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, d); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != d.Width || b.Dy() != d.Height {
		t.Errorf("bounds %v", b)
	}
}

func TestWritePDF(t *testing.T) {
	st := mirror.DefaultLimits.State(100, 40, 16, false,
		mirror.Visibility{PF: true, FP: true, CC: true, V: true})
	d := mustBuild(t, st)

	fname := filepath.Join(t.TempDir(), "virtual.pdf")
	if err := WritePDF(fname, d); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %q", data[:min(len(data), 8)])
	}
}

func TestGrayLevel(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want uint8
	}{
		{-1, 0}, {0, 0}, {0.5, 128}, {1, 255}, {2, 255},
	} {
		if got := grayLevel(tc.in); got != tc.want {
			t.Errorf("grayLevel(%g) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
