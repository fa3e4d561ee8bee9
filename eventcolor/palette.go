// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventcolor

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotutil"
)

// DefaultPalette is the name of the palette used when none is given.
const DefaultPalette = "spectral"

// A Cycle is a fixed list of colors. Assign indexes it directly rather
// than sampling it.
type Cycle []color.Color

// At returns the color at position t of the cycle, treating it as a
// step function over [0, 1].
func (c Cycle) At(t float64) (color.Color, error) {
	if len(c) == 0 {
		return nil, fmt.Errorf("empty color cycle")
	}
	if err := checkRange(t); err != nil {
		return nil, err
	}
	i := int(t * float64(len(c)))
	if i == len(c) {
		i--
	}
	return c[i], nil
}

// A ramp is a continuous palette that linearly interpolates between
// equally spaced control colors.
type ramp []color.NRGBA

func newRamp(colors []color.Color) ramp {
	r := make(ramp, len(colors))
	for i, c := range colors {
		r[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return r
}

func (r ramp) At(t float64) (color.Color, error) {
	if err := checkRange(t); err != nil {
		return nil, err
	}
	if len(r) == 1 {
		return r[0], nil
	}
	pos := t * float64(len(r)-1)
	i := int(pos)
	if i >= len(r)-1 {
		return r[len(r)-1], nil
	}
	f := pos - float64(i)
	a, b := r[i], r[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}, nil
}

func checkRange(t float64) error {
	switch {
	case math.IsNaN(t):
		return palette.ErrNaN
	case t < 0:
		return palette.ErrUnderflow
	case t > 1:
		return palette.ErrOverflow
	}
	return nil
}

// unit sets the range of a gonum color map to [0, 1].
func unit(cm palette.ColorMap) Palette {
	cm.SetMin(0)
	cm.SetMax(1)
	return cm
}

var palettes = map[string]func() (Palette, error){
	"spectral": func() (Palette, error) {
		p, err := brewer.GetPalette(brewer.TypeDiverging, "Spectral", 11)
		if err != nil {
			return nil, err
		}
		return newRamp(p.Colors()), nil
	},
	"smoothbluered":     func() (Palette, error) { return unit(moreland.SmoothBlueRed()), nil },
	"kindlmann":         func() (Palette, error) { return unit(moreland.Kindlmann()), nil },
	"extendedkindlmann": func() (Palette, error) { return unit(moreland.ExtendedKindlmann()), nil },
	"blackbody":         func() (Palette, error) { return unit(moreland.BlackBody()), nil },
	"extendedblackbody": func() (Palette, error) { return unit(moreland.ExtendedBlackBody()), nil },
	"plotutil":          func() (Palette, error) { return Cycle(plotutil.DefaultColors), nil },
}

// ByName returns the named palette. An empty name selects
// DefaultPalette.
func ByName(name string) (Palette, error) {
	if name == "" {
		name = DefaultPalette
	}
	mk, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (known palettes: %v)", name, Names())
	}
	return mk()
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
