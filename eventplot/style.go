// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventplot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Style controls how a chart is drawn. It can be loaded from a YAML
// file; fields missing from the file keep their DefaultStyle values.
//
// Example:
//
//	title: "CA simulation"
//	palette: kindlmann
//	band_height: 0.6
//	size:
//	  width_cm: 30
//	legend:
//	  outside: false
//	  left: true
type Style struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`

	// Palette is an eventcolor palette name.
	Palette string `yaml:"palette"`

	// BandHeight is the height of event rectangles relative to the
	// distance between queue rows.
	BandHeight float64 `yaml:"band_height"`

	// HideGrid removes the vertical grid lines.
	HideGrid bool `yaml:"hide_grid"`

	Size struct {
		// Width and Height are the image size in centimeters.
		// A zero Height is derived from the number of queues.
		Width  float64 `yaml:"width_cm"`
		Height float64 `yaml:"height_cm"`
		DPI    int     `yaml:"dpi"`
	} `yaml:"size"`

	Font struct {
		Title  float64 `yaml:"title"`  // points
		Ticks  float64 `yaml:"ticks"`  // points
		Legend float64 `yaml:"legend"` // points
	} `yaml:"font"`

	Legend struct {
		Hide bool `yaml:"hide"`

		// Outside draws the legend in a column of the given
		// Width, in centimeters, to the right of the plot.
		// Otherwise it is drawn in a corner of the plot chosen
		// by Left and Bottom.
		Outside bool    `yaml:"outside"`
		Width   float64 `yaml:"width_cm"`
		Left    bool    `yaml:"left"`
		Bottom  bool    `yaml:"bottom"`
	} `yaml:"legend"`
}

// DefaultStyle returns the default Style.
func DefaultStyle() Style {
	var s Style
	s.XLabel = "Time"
	s.YLabel = "Queues"
	s.Size.Width = 20
	s.Size.DPI = 150
	s.Font.Title = 14
	s.Font.Ticks = 9
	s.Font.Legend = 8
	s.Legend.Outside = true
	s.Legend.Width = 4
	return s
}

// LoadStyle reads a YAML Style from path, on top of DefaultStyle.
// Unknown keys are an error.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes as io.EOF and leaves s unchanged.
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Check(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Check reports the first invalid field of s.
func (s Style) Check() error {
	switch {
	case s.BandHeight < 0 || s.BandHeight > 1:
		return fmt.Errorf("band_height %v not in (0, 1]", s.BandHeight)
	case s.Size.Width <= 0:
		return fmt.Errorf("size.width_cm %v must be positive", s.Size.Width)
	case s.Size.Height < 0:
		return fmt.Errorf("size.height_cm %v must not be negative", s.Size.Height)
	case s.Size.DPI <= 0:
		return fmt.Errorf("size.dpi %v must be positive", s.Size.DPI)
	case s.Legend.Outside && !s.Legend.Hide && (s.Legend.Width <= 0 || s.Legend.Width >= s.Size.Width):
		return fmt.Errorf("legend.width_cm %v not in (0, %v)", s.Legend.Width, s.Size.Width)
	}
	return nil
}

// height returns the image height in centimeters for a chart with
// rows queue rows.
func (s Style) height(rows int) float64 {
	if s.Size.Height > 0 {
		return s.Size.Height
	}
	h := 4 + 1.2*float64(rows)
	if h < 8 {
		h = 8
	}
	return h
}
