// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Eventchart draws a Gantt-like chart of profiled events.
//
// Usage:
//
//	eventchart [flags] file.tsv
//
// The input is an event log exported by a profiler: one event per
// line, as four tab-separated fields giving the queue the event ran
// on, its start and end instants, and the event name:
//
//	queue_exec	0	64128	RNG
//	queue_comm	70016	71040	READ_BUFFER
//
// Each queue becomes a row of the chart, and each event is drawn as a
// bar spanning its start and end instants on its queue's row. Events
// with the same name share a color, which the legend lists.
//
// By default the chart is written as a PNG next to the input, replacing
// its extension with ".png". The -o flag selects another file; its
// extension selects the image format (png, svg, pdf, eps, jpg or tif).
// "-o -" writes a PNG to standard output.
//
// The -style flag reads drawing options from a YAML file. For example:
//
//	title: "Cellular automaton"
//	palette: kindlmann
//	band_height: 0.6
//	size:
//	  width_cm: 30
//	  dpi: 300
//	legend:
//	  outside: false
//	  left: true
//
// By default the legend is drawn to the right of the chart.
//
// Flags given on the command line override the style file.
//
// Eventchart exits with status 2 if it is invoked incorrectly and 3 if
// the input file does not exist.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	chartpkg "golang.org/x/eventchart/eventchart"
	"golang.org/x/eventchart/eventcolor"
	"golang.org/x/eventchart/eventfmt"
	"golang.org/x/eventchart/eventplot"
)

const version = "eventchart v2.0.0"

const (
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func main() {
	if err := eventchart(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(exitCode(err))
	}
}

// An exitError carries the process exit status for err. The message
// has already been printed when an exitError is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var errUsage = errors.New("bad usage")

func exitCode(err error) int {
	var eerr *exitError
	if errors.As(err, &eerr) {
		return eerr.code
	}
	return exitFailure
}

type flags struct {
	out        string
	style      string
	palette    string
	band       float64
	title      string
	width      float64
	height     float64
	dpi        int
	zero       bool
	sep        string
	queueDelim string
	typeDelim  string
	workers    int
	dump       bool
	verbose    bool
	version    bool
}

func (f *flags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.out, "o", "", "write the chart to `file`; its extension selects the format (default input with .png)")
	fs.StringVar(&f.style, "style", "", "read drawing options from YAML `file`")
	fs.StringVar(&f.palette, "palette", eventcolor.DefaultPalette, "color `palette`: "+strings.Join(eventcolor.Names(), ", "))
	fs.Float64Var(&f.band, "band", chartpkg.DefaultBandHeight, "bar `height` relative to row spacing, in (0, 1]")
	fs.StringVar(&f.title, "title", "", "chart `title` (default input file name)")
	fs.Float64Var(&f.width, "width", 0, "image width in `cm`")
	fs.Float64Var(&f.height, "height", 0, "image height in `cm` (default depends on number of queues)")
	fs.IntVar(&f.dpi, "dpi", 0, "PNG resolution in `dots` per inch")
	fs.BoolVar(&f.zero, "zero", false, "shift times so the earliest event starts at 0")
	fs.StringVar(&f.sep, "sep", `\t`, "field `separator`")
	fs.StringVar(&f.queueDelim, "queue-delim", "", "strip `delim` around queue names")
	fs.StringVar(&f.typeDelim, "type-delim", "", "strip `delim` around event names")
	fs.IntVar(&f.workers, "workers", 1, "lay out bars using `n` goroutines")
	fs.BoolVar(&f.dump, "dump", false, "print the chart model as text to stdout; draw only if -o is given")
	fs.BoolVar(&f.verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, "Usage: eventchart [flags] file.tsv\n\nFlags:\n")
		fs.PrintDefaults()
	}
}

func eventchart(stdout, stderr io.Writer, args []string) error {
	var f flags
	fs := flag.NewFlagSet("eventchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(stderr, fs)
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &exitError{exitUsage, err}
	}
	if f.version {
		fmt.Fprintln(stdout, version)
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return &exitError{exitUsage, errUsage}
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	fail := func(code int, err error) error {
		fmt.Fprintf(stderr, "eventchart: %v\n", err)
		return &exitError{code, err}
	}

	path := fs.Arg(0)
	if st, err := os.Stat(path); err != nil || st.IsDir() {
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return fail(exitNotFound, fmt.Errorf("file not found: '%s'", path))
		}
		return fail(exitFailure, err)
	}

	style, err := loadStyle(fs, &f)
	if err != nil {
		return fail(exitUsage, err)
	}
	if style.Title == "" {
		style.Title = filepath.Base(path)
	}

	reader, err := newReader(&f)
	if err != nil {
		return fail(exitUsage, err)
	}
	palette, err := eventcolor.ByName(style.Palette)
	if err != nil {
		return fail(exitUsage, err)
	}

	events, err := reader.ReadFile(path)
	if err != nil {
		return fail(exitFailure, err)
	}
	log.WithFields(logrus.Fields{"file": path, "events": len(events)}).Debug("read events")

	chart, err := chartpkg.Build(events, chartpkg.Options{
		Palette:   palette,
		ZeroStart: f.zero,
		LayoutOptions: chartpkg.LayoutOptions{
			BandHeight: style.BandHeight,
			Workers:    f.workers,
		},
	})
	if err != nil {
		return fail(exitFailure, fmt.Errorf("%s: %w", path, err))
	}
	log.WithFields(logrus.Fields{
		"queues": len(chart.Ticks),
		"types":  len(chart.Legend),
		"rects":  len(chart.Rects),
	}).Debug("built chart")

	colors := make(eventcolor.Map, len(chart.Legend))
	for _, e := range chart.Legend {
		colors[e.Label] = e.Color
	}
	if !colors.Distinct() {
		log.WithFields(logrus.Fields{"palette": style.Palette, "types": len(chart.Legend)}).
			Warn("some event types share a color")
	}

	if f.dump {
		if err := chart.WriteText(stdout); err != nil {
			return fail(exitFailure, err)
		}
		if f.out == "" {
			return nil
		}
	}

	out := f.out
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := draw(stdout, out, chart, style); err != nil {
		return fail(exitFailure, err)
	}
	log.WithField("file", out).Debug("wrote chart")
	return nil
}

// loadStyle returns the style file named by -style, or the default
// style, with any explicitly set flags applied on top.
func loadStyle(fs *flag.FlagSet, f *flags) (eventplot.Style, error) {
	style := eventplot.DefaultStyle()
	style.Palette = eventcolor.DefaultPalette
	style.BandHeight = chartpkg.DefaultBandHeight
	if f.style != "" {
		s, err := eventplot.LoadStyle(f.style)
		if err != nil {
			return style, err
		}
		style = s
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "palette":
			style.Palette = f.palette
		case "band":
			style.BandHeight = f.band
		case "title":
			style.Title = f.title
		case "width":
			style.Size.Width = f.width
		case "height":
			style.Size.Height = f.height
		case "dpi":
			style.Size.DPI = f.dpi
		}
	})
	if style.BandHeight == 0 {
		style.BandHeight = chartpkg.DefaultBandHeight
	}
	return style, style.Check()
}

func newReader(f *flags) (*eventfmt.Reader, error) {
	sep := f.sep
	if sep == `\t` {
		sep = "\t"
	}
	r, n := utf8.DecodeRuneInString(sep)
	if r == utf8.RuneError || n != len(sep) || r == '\n' {
		return nil, fmt.Errorf("-sep must be a single character, got %q", f.sep)
	}
	return &eventfmt.Reader{
		Separator:  r,
		QueueDelim: f.queueDelim,
		TypeDelim:  f.typeDelim,
	}, nil
}

// draw renders chart to the file out, or as a PNG to stdout if out is
// "-".
func draw(stdout io.Writer, out string, chart *chartpkg.Chart, style eventplot.Style) error {
	fig, err := eventplot.Render(chart, style)
	if err != nil {
		return err
	}
	if out == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write a PNG image to a terminal")
		}
		return eventplot.Write(stdout, fig, "png", style)
	}

	format, err := eventplot.FormatOf(out)
	if err != nil {
		return err
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := eventplot.Write(w, fig, format, style); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
