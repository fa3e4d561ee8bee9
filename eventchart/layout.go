// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventchart

import (
	"fmt"
	"image/color"

	"golang.org/x/sync/errgroup"

	"golang.org/x/eventchart/eventcolor"
	"golang.org/x/eventchart/eventfmt"
	"golang.org/x/eventchart/eventproc"
)

// DefaultBandHeight is the default height of an event rectangle, as a
// fraction of the distance between adjacent queue rows.
const DefaultBandHeight = 0.8

// A Rect is the chart rectangle of a single event.
type Rect struct {
	// X is the event start and Width its duration. Width may be 0.
	X, Width float64
	// Y is the bottom of the rectangle: the row index of the
	// event's queue minus half of Height.
	Y, Height float64
	Color     color.Color

	// Queue and Type are the event's queue and event type.
	Queue, Type string
}

// LayoutOptions configures Layout.
type LayoutOptions struct {
	// BandHeight is the height of each rectangle, in (0, 1].
	// If 0, DefaultBandHeight is used.
	BandHeight float64

	// Workers is the number of goroutines computing rectangles.
	// Values less than 2 compute them on the calling goroutine.
	// The result does not depend on Workers.
	Workers int
}

// An UnknownCategoryError reports an event whose queue or event type
// is not part of the domain it is being laid out against.
type UnknownCategoryError struct {
	Kind  string // "queue" or "event type"
	Value string

	FileName string
	Line     int
}

func (e *UnknownCategoryError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s:%d: unknown %s %q", e.FileName, e.Line, e.Kind, e.Value)
}

func (o LayoutOptions) bandHeight() (float64, error) {
	h := o.BandHeight
	if h == 0 {
		return DefaultBandHeight, nil
	}
	if !(h > 0 && h <= 1) {
		return 0, fmt.Errorf("band height %v not in (0, 1]", h)
	}
	return h, nil
}

// Layout computes the rectangle of every event. The i'th rectangle
// belongs to events[i]. It returns ErrEmptyChart if dom is nil.
func Layout(dom *eventproc.Domain, colors eventcolor.Map, events []*eventfmt.Event, opts LayoutOptions) ([]Rect, error) {
	if dom == nil {
		return nil, ErrEmptyChart
	}
	h, err := opts.bandHeight()
	if err != nil {
		return nil, err
	}

	rects := make([]Rect, len(events))
	place := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			r, err := layoutOne(dom, colors, events[i], h)
			if err != nil {
				return err
			}
			rects[i] = r
		}
		return nil
	}

	workers := opts.Workers
	if workers < 2 || len(events) < 2*workers {
		if err := place(0, len(events)); err != nil {
			return nil, err
		}
		return rects, nil
	}

	// Split events into contiguous chunks. Each chunk writes only its
	// own slots of rects. We keep every chunk's error and report the
	// earliest, so the error does not depend on scheduling.
	chunk := (len(events) + workers - 1) / workers
	errs := make([]error, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if hi > len(events) {
			hi = len(events)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			errs[w] = place(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // chunks report through errs
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rects, nil
}

func layoutOne(dom *eventproc.Domain, colors eventcolor.Map, ev *eventfmt.Event, h float64) (Rect, error) {
	row, ok := dom.QueueIndex(ev.Queue)
	if !ok {
		return Rect{}, unknown(ev, "queue", ev.Queue)
	}
	clr, ok := colors[ev.Type]
	if !ok {
		return Rect{}, unknown(ev, "event type", ev.Type)
	}
	return Rect{
		X:      ev.Start,
		Width:  ev.End - ev.Start,
		Y:      float64(row) - h/2,
		Height: h,
		Color:  clr,
		Queue:  ev.Queue,
		Type:   ev.Type,
	}, nil
}

func unknown(ev *eventfmt.Event, kind, value string) *UnknownCategoryError {
	fileName, line := ev.Pos()
	return &UnknownCategoryError{kind, value, fileName, line}
}
