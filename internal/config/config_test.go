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

package config

import (
	"log/slog"
	"slices"
	"testing"

	"seehuhn.de/go/mirror"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Radius != 96 || cfg.Distance != 66 || cfg.ObjectHeight != 16 || cfg.Convex {
		t.Errorf("unexpected mirror defaults %+v", cfg)
	}
	if !slices.Equal(cfg.Rays, []string{"fp"}) {
		t.Errorf("rays %v", cfg.Rays)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("log level %v", cfg.LogLevel)
	}

	s, err := cfg.Session()
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != mirror.NewSession().State() {
		t.Errorf("default session differs: %+v", s.State())
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("MIRROR_RADIUS", "120")
	t.Setenv("MIRROR_DISTANCE", "500")
	t.Setenv("MIRROR_CONVEX", "true")
	t.Setenv("MIRROR_RAYS", "pf,cc")
	t.Setenv("MIRROR_CANVAS_WIDTH", "640")
	t.Setenv("MIRROR_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level %v", cfg.LogLevel)
	}
	if opt := cfg.Options(); opt.Width != 640 || opt.Height != 540 {
		t.Errorf("canvas %dx%d", opt.Width, opt.Height)
	}

	s, err := cfg.Session()
	if err != nil {
		t.Fatal(err)
	}
	if s.Radius() != 120 || !s.Convex() {
		t.Errorf("radius %g, convex %t", s.Radius(), s.Convex())
	}
	// the distance is clamped
	if want := mirror.DefaultLimits.Distance.Max; s.Distance() != want {
		t.Errorf("distance %g, want %g", s.Distance(), want)
	}
	if want := (mirror.Visibility{PF: true, CC: true}); s.Visibility() != want {
		t.Errorf("visibility %+v", s.Visibility())
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct{ key, value string }{
		{"MIRROR_RADIUS", "large"},
		{"MIRROR_RAYS", "pf,xx"},
		{"MIRROR_LOG_LEVEL", "loud"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s accepted", tc.key, tc.value)
			}
		})
	}
}

func TestParseRays(t *testing.T) {
	all := mirror.Visibility{PF: true, FP: true, CC: true, V: true}
	cases := []struct {
		in   []string
		want mirror.Visibility
	}{
		{nil, mirror.Visibility{}},
		{[]string{"none"}, mirror.Visibility{}},
		{[]string{"all"}, all},
		{[]string{" PF ", "v"}, mirror.Visibility{PF: true, V: true}},
		{[]string{"fp", ""}, mirror.Visibility{FP: true}},
	}
	for _, tc := range cases {
		got, err := ParseRays(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
		if back, _ := ParseRays(RayNames(got)); back != got {
			t.Errorf("%q: RayNames does not round trip", tc.in)
		}
	}
}
