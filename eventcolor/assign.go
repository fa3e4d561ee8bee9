// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventcolor assigns a color to each event type.
//
// Colors are sampled from a Palette at equally spaced points, so the
// color of an event type depends only on its position in the ordered
// list of types and on the number of types. There is no randomness and
// no global state: the same list always produces the same colors.
package eventcolor

import (
	"errors"
	"fmt"
	"image/color"
)

// A Palette is a continuous color map over [0, 1].
//
// Any gonum palette.ColorMap whose range includes [0, 1] is a Palette.
type Palette interface {
	At(t float64) (color.Color, error)
}

// A Map maps event type names to colors.
type Map map[string]color.Color

// ErrNoTypes is returned by Assign when there are no event types.
var ErrNoTypes = errors.New("no event types to color")

// Assign maps types[i] to p.At(i / len(types)).
//
// If p is a Cycle, types[i] is instead mapped to its i'th color,
// wrapping around when there are more types than colors.
func Assign(types []string, p Palette) (Map, error) {
	n := len(types)
	if n == 0 {
		return nil, ErrNoTypes
	}
	m := make(Map, n)
	if c, ok := p.(Cycle); ok {
		if len(c) == 0 {
			return nil, errors.New("empty color cycle")
		}
		for i, typ := range types {
			m[typ] = c[i%len(c)]
		}
		return m, nil
	}
	for i, typ := range types {
		t := float64(i) / float64(n)
		clr, err := p.At(t)
		if err != nil {
			return nil, fmt.Errorf("color for %q at %v: %w", typ, t, err)
		}
		m[typ] = clr
	}
	return m, nil
}

// Distinct reports whether no two types in m share a color.
func (m Map) Distinct() bool {
	seen := make(map[color.NRGBA]bool, len(m))
	for _, c := range m {
		k := color.NRGBAModel.Convert(c).(color.NRGBA)
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
