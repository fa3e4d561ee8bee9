// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventplot

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/eventchart/eventchart"
	"golang.org/x/eventchart/eventfmt"
)

func exampleChart(t *testing.T) *eventchart.Chart {
	t.Helper()
	evs, err := eventfmt.ReadAll(strings.NewReader("A\t0\t5\tkernel\nA\t5\t6\twrite\nB\t0\t3\tread\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	c, err := eventchart.Build(evs, eventchart.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRender(t *testing.T) {
	c := exampleChart(t)
	s := DefaultStyle()
	s.Title = "example"
	fig, err := Render(c, s)
	if err != nil {
		t.Fatal(err)
	}
	pl := fig.Plot
	if pl.X.Min != 0 || pl.X.Max != 6 || pl.Y.Min != -0.5 || pl.Y.Max != 1.5 {
		t.Errorf("want axes [0, 6] x [-0.5, 1.5], got [%v, %v] x [%v, %v]", pl.X.Min, pl.X.Max, pl.Y.Min, pl.Y.Max)
	}
	ticks := pl.Y.Tick.Marker.Ticks(pl.Y.Min, pl.Y.Max)
	if len(ticks) != 2 || ticks[0].Label != "A" || ticks[1].Label != "B" {
		t.Errorf("want ticks A, B; got %v", ticks)
	}
	if pl.Title.Text != "example" {
		t.Errorf("want title %q, got %q", "example", pl.Title.Text)
	}
	if fig.Rows != 2 {
		t.Errorf("want 2 rows, got %d", fig.Rows)
	}
}

func TestRenderLegendPlacement(t *testing.T) {
	c := exampleChart(t)
	s := DefaultStyle()
	fig, err := Render(c, s)
	if err != nil {
		t.Fatal(err)
	}
	if fig.Legend == nil {
		t.Error("default style: want legend outside the plot")
	}

	s.Legend.Outside = false
	if fig, err = Render(c, s); err != nil {
		t.Fatal(err)
	}
	if fig.Legend != nil {
		t.Error("legend.outside: false: want legend inside the plot")
	}

	s.Legend.Outside = true
	s.Legend.Hide = true
	if fig, err = Render(c, s); err != nil {
		t.Fatal(err)
	}
	if fig.Legend != nil {
		t.Error("legend.hide: want no legend")
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(&eventchart.Chart{}, DefaultStyle()); !errors.Is(err, eventchart.ErrEmptyChart) {
		t.Errorf("want ErrEmptyChart, got %v", err)
	}
}

func TestBarsDataRange(t *testing.T) {
	b := &Bars{Rects: []eventchart.Rect{
		{X: 2, Width: 3, Y: -0.4, Height: 0.8},
		{X: 0, Width: 1, Y: 0.6, Height: 0.8},
	}}
	xmin, xmax, ymin, ymax := b.DataRange()
	if xmin != 0 || xmax != 5 || ymin != -0.4 || ymax != 1.4 {
		t.Errorf("want [0, 5] x [-0.4, 1.4], got [%v, %v] x [%v, %v]", xmin, xmax, ymin, ymax)
	}
}

func TestWritePNG(t *testing.T) {
	c := exampleChart(t)
	s := DefaultStyle()
	s.Size.DPI = 72
	fig, err := Render(c, s)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, fig, "png", s); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// 20cm at 72 dpi.
	if w := img.Bounds().Dx(); w < 560 || w > 570 {
		t.Errorf("want image about 567 pixels wide, got %d", w)
	}
}

func TestWriteSVG(t *testing.T) {
	c := exampleChart(t)
	for _, outside := range []bool{true, false} {
		s := DefaultStyle()
		s.Legend.Outside = outside
		fig, err := Render(c, s)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := Write(&buf, fig, "svg", s); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"<svg", "kernel", "read", "write"} {
			if !strings.Contains(out, want) {
				t.Errorf("outside=%v: SVG output does not contain %q", outside, want)
			}
		}

		if err := Write(&buf, fig, "bmp", s); err == nil {
			t.Error("want error for unsupported format")
		}
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]string{
		"prof.png":     "png",
		"out/prof.SVG": "svg",
		"a.b.pdf":      "pdf",
	} {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	for _, bad := range []string{"prof", "prof.tsv"} {
		if _, err := FormatOf(bad); err == nil {
			t.Errorf("FormatOf(%q): want error", bad)
		}
	}
}
