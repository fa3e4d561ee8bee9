// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventchart

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/eventchart/eventcolor"
	"golang.org/x/eventchart/eventfmt"
	"golang.org/x/eventchart/eventproc"
)

func resolve(t *testing.T, evs []*eventfmt.Event) (*eventproc.Domain, eventcolor.Map) {
	t.Helper()
	dom, err := eventproc.Resolve(evs)
	if err != nil {
		t.Fatal(err)
	}
	colors, err := eventcolor.Assign(dom.Types, gray{})
	if err != nil {
		t.Fatal(err)
	}
	return dom, colors
}

func TestLayoutZeroWidth(t *testing.T) {
	evs := mustRead(t, "A\t4\t4\tmarker\n")
	dom, colors := resolve(t, evs)
	rects, err := Layout(dom, colors, evs, LayoutOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if rects[0].X != 4 || rects[0].Width != 0 {
		t.Errorf("want zero-width rectangle at 4, got %+v", rects[0])
	}
}

func TestLayoutNilDomain(t *testing.T) {
	evs := mustRead(t, "A\t0\t1\tk\n")
	_, colors := resolve(t, evs)
	for _, workers := range []int{1, 4} {
		rects, err := Layout(nil, colors, evs, LayoutOptions{Workers: workers})
		if !errors.Is(err, ErrEmptyChart) {
			t.Errorf("workers=%d: want ErrEmptyChart, got %v", workers, err)
		}
		if rects != nil {
			t.Errorf("workers=%d: want no rectangles, got %v", workers, rects)
		}
	}
}

func TestLayoutBandHeight(t *testing.T) {
	evs := mustRead(t, "A\t0\t1\tk\nB\t0\t1\tk\n")
	dom, colors := resolve(t, evs)
	rects, err := Layout(dom, colors, evs, LayoutOptions{BandHeight: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if rects[1].Y != 0.75 || rects[1].Height != 0.5 {
		t.Errorf("want y=0.75 h=0.5, got y=%v h=%v", rects[1].Y, rects[1].Height)
	}

	for _, bad := range []float64{-0.1, 1.5} {
		if _, err := Layout(dom, colors, evs, LayoutOptions{BandHeight: bad}); err == nil {
			t.Errorf("band height %v: want error", bad)
		}
	}
}

func TestLayoutUnknownCategory(t *testing.T) {
	dom := eventproc.NewDomain([]string{"A"}, []string{"k"})
	colors := eventcolor.Map{"k": color.Black}

	evs := mustRead(t, "A\t0\t1\tk\nB\t0\t1\tk\n")
	_, err := Layout(dom, colors, evs, LayoutOptions{})
	var uerr *UnknownCategoryError
	if !errors.As(err, &uerr) {
		t.Fatalf("want *UnknownCategoryError, got %v", err)
	}
	if uerr.Kind != "queue" || uerr.Value != "B" || uerr.Line != 2 {
		t.Errorf("want unknown queue B on line 2, got %+v", uerr)
	}
	if want := `test:2: unknown queue "B"`; err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}

	evs = mustRead(t, "A\t0\t1\tj\n")
	_, err = Layout(dom, colors, evs, LayoutOptions{})
	if !errors.As(err, &uerr) || uerr.Kind != "event type" || uerr.Value != "j" {
		t.Errorf("want unknown event type j, got %v", err)
	}
}

func TestLayoutWorkers(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&input, "%d\t%d\t%d\ttype%d\n", i%7, i, i+i%13, i%5)
	}
	evs := mustRead(t, input.String())
	dom, colors := resolve(t, evs)

	want, err := Layout(dom, colors, evs, LayoutOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{2, 3, 8, 999, 2000} {
		got, err := Layout(dom, colors, evs, LayoutOptions{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%d workers: rectangles differ (-serial +parallel):\n%s", workers, diff)
		}
	}
}

func TestLayoutWorkersFirstError(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&input, "Q%d\t0\t1\tk\n", i)
	}
	evs := mustRead(t, input.String())
	// Only Q0 and Q1 are known, so every later event fails.
	dom := eventproc.NewDomain([]string{"Q0", "Q1"}, []string{"k"})
	colors := eventcolor.Map{"k": color.Black}
	for i := 0; i < 20; i++ {
		_, err := Layout(dom, colors, evs, LayoutOptions{Workers: 4})
		var uerr *UnknownCategoryError
		if !errors.As(err, &uerr) || uerr.Value != "Q2" {
			t.Fatalf("want unknown queue Q2, got %v", err)
		}
	}
}
