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

// Package config reads the default parameters of the mirror tool from the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/diagram"
)

// Config holds the settings read from MIRROR_* environment variables.
type Config struct {
	Radius       float64    `envconfig:"RADIUS" default:"96"`
	Distance     float64    `envconfig:"DISTANCE" default:"66"`
	ObjectHeight float64    `envconfig:"OBJECT_HEIGHT" default:"16"`
	Convex       bool       `envconfig:"CONVEX" default:"false"`
	Rays         []string   `envconfig:"RAYS" default:"fp"`
	Scale        float64    `envconfig:"SCALE" default:"4"`
	CanvasWidth  int        `envconfig:"CANVAS_WIDTH" default:"960"`
	CanvasHeight int        `envconfig:"CANVAS_HEIGHT" default:"540"`
	LogLevel     slog.Level `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mirror", &cfg); err != nil {
		return nil, err
	}
	if _, err := ParseRays(cfg.Rays); err != nil {
		return nil, fmt.Errorf("MIRROR_RAYS: %w", err)
	}
	return &cfg, nil
}

// Session returns a new session with the configured parameters.
// Out of range values are clamped.
func (c *Config) Session() (*mirror.Session, error) {
	vis, err := ParseRays(c.Rays)
	if err != nil {
		return nil, err
	}
	s := mirror.NewSession()
	s.SetRadius(c.Radius)
	s.SetDistance(c.Distance)
	s.SetObjectHeight(c.ObjectHeight)
	s.SetConvex(c.Convex)
	s.UpdateRayVisibility(func(mirror.Visibility) mirror.Visibility { return vis })
	return s, nil
}

// Options returns the diagram layout for the configured canvas.
func (c *Config) Options() diagram.Options {
	opt := diagram.DefaultOptions
	opt.Scale = c.Scale
	opt.Width = c.CanvasWidth
	opt.Height = c.CanvasHeight
	return opt
}

// ParseRays converts a list of ray names into a visibility.
// The name "all" selects every ray, "none" and empty names are ignored.
func ParseRays(names []string) (mirror.Visibility, error) {
	var vis mirror.Visibility
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "", "none":
			continue
		case "all":
			vis = mirror.Visibility{PF: true, FP: true, CC: true, V: true}
			continue
		}
		k, err := mirror.ParseKind(name)
		if err != nil {
			return mirror.Visibility{}, err
		}
		switch k {
		case mirror.PF:
			vis.PF = true
		case mirror.FP:
			vis.FP = true
		case mirror.CC:
			vis.CC = true
		case mirror.V:
			vis.V = true
		}
	}
	return vis, nil
}

// RayNames lists the visible rays of vis by their short names.
func RayNames(vis mirror.Visibility) []string {
	var res []string
	for _, k := range mirror.Kinds {
		if vis.Show(k) {
			res = append(res, k.String())
		}
	}
	return res
}
