// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventchart computes a render-agnostic Gantt chart of an
// event log.
//
// A Chart holds everything a drawing surface needs: axis bounds, one
// tick per queue row, one legend entry per event type, and one
// rectangle per event. Building a Chart never draws anything; see
// package eventplot for a surface that renders one.
package eventchart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"

	"golang.org/x/eventchart/eventcolor"
	"golang.org/x/eventchart/eventfmt"
	"golang.org/x/eventchart/eventproc"
)

// ErrEmptyChart is returned when there is no queue or no event type to
// draw.
var ErrEmptyChart = errors.New("empty chart")

// A Chart is a Gantt chart of an event log.
type Chart struct {
	// XMin and XMax are the earliest start and the latest end of
	// all events.
	XMin, XMax float64
	// YMin and YMax are -0.5 and len(Ticks)-0.5, so each queue row
	// is centered on its index.
	YMin, YMax float64

	// Ticks has one tick per queue, at the queue's row index.
	Ticks []Tick

	// Legend has one entry per event type, in domain order.
	Legend []LegendEntry

	// Rects has one rectangle per event, in input order.
	Rects []Rect
}

// A Tick labels a queue row.
type Tick struct {
	Value float64
	Label string
}

// A LegendEntry associates an event type with its color.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Options configures Build.
type Options struct {
	// Palette colors event types. If nil, the eventcolor default
	// palette is used.
	Palette eventcolor.Palette

	// ZeroStart shifts all events so that the earliest one starts
	// at 0.
	ZeroStart bool

	LayoutOptions
}

// Build computes the Chart of events.
//
// It either returns a complete Chart or an error; it never returns a
// partial Chart.
func Build(events []*eventfmt.Event, opts Options) (*Chart, error) {
	if opts.ZeroStart {
		events = ZeroStart(events)
	}
	dom, err := eventproc.Resolve(events)
	if err != nil {
		return nil, err
	}
	p := opts.Palette
	if p == nil {
		if p, err = eventcolor.ByName(eventcolor.DefaultPalette); err != nil {
			return nil, err
		}
	}
	colors, err := eventcolor.Assign(dom.Types, p)
	if err != nil {
		return nil, err
	}
	rects, err := Layout(dom, colors, events, opts.LayoutOptions)
	if err != nil {
		return nil, err
	}
	return Assemble(dom, colors, events, rects)
}

// Assemble builds a Chart from its resolved parts. rects must be the
// layout of events. A nil or empty domain yields ErrEmptyChart.
func Assemble(dom *eventproc.Domain, colors eventcolor.Map, events []*eventfmt.Event, rects []Rect) (*Chart, error) {
	if dom == nil || len(dom.Queues) == 0 || len(dom.Types) == 0 || len(events) == 0 {
		return nil, ErrEmptyChart
	}
	if len(rects) != len(events) {
		return nil, fmt.Errorf("have %d rectangles for %d events", len(rects), len(events))
	}

	starts := make([]float64, len(events))
	ends := make([]float64, len(events))
	for i, ev := range events {
		starts[i], ends[i] = ev.Start, ev.End
	}
	xMin, _ := stats.Bounds(starts)
	_, xMax := stats.Bounds(ends)

	c := &Chart{
		XMin:  xMin,
		XMax:  xMax,
		YMin:  -0.5,
		YMax:  float64(len(dom.Queues)) - 0.5,
		Rects: rects,
	}
	for i, q := range dom.Queues {
		c.Ticks = append(c.Ticks, Tick{float64(i), q})
	}
	for _, typ := range dom.Types {
		clr, ok := colors[typ]
		if !ok {
			return nil, &UnknownCategoryError{Kind: "event type", Value: typ}
		}
		c.Legend = append(c.Legend, LegendEntry{typ, clr})
	}
	return c, nil
}

// ZeroStart returns copies of events shifted so that the earliest
// start is 0.
func ZeroStart(events []*eventfmt.Event) []*eventfmt.Event {
	if len(events) == 0 {
		return events
	}
	first := math.Inf(1)
	for _, ev := range events {
		if ev.Start < first {
			first = ev.Start
		}
	}
	out := make([]*eventfmt.Event, len(events))
	for i, ev := range events {
		out[i] = ev.Shift(-first)
	}
	return out
}
