// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Eventfilter reads an event log, keeps the events that match its
// flags, and writes them to stdout in the same tab-separated format.
// If no input is given, it reads from stdin.
//
// Usage:
//
//	eventfilter [flags] [file.tsv]
//
// For example, to chart only the buffer transfers of a log, measured
// from the first of them:
//
//	eventfilter -type '_BUFFER$' -zero prof.tsv > buffers.tsv
//	eventchart buffers.tsv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/sirupsen/logrus"

	"golang.org/x/eventchart/eventchart"
	"golang.org/x/eventchart/eventfmt"
)

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, `Usage: eventfilter [flags] [file.tsv]

eventfilter reads an event log, keeps the events that match its flags,
and writes them to stdout. If no input is provided, it reads from stdin.

Flags:
`)
		fs.PrintDefaults()
	}
}

func main() {
	if err := eventfilter(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("bad usage")

func eventfilter(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("eventfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(stderr, fs)
	queueRE := fs.String("queue", "", "keep only events whose queue matches `regexp`")
	typeRE := fs.String("type", "", "keep only events whose type matches `regexp`")
	zero := fs.Bool("zero", false, "shift times so the earliest kept event starts at 0")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errUsage
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	fail := func(err error) error {
		fmt.Fprintf(stderr, "eventfilter: %v\n", err)
		return err
	}

	match := func(flagName, expr string) (*regexp.Regexp, error) {
		if expr == "" {
			return nil, nil
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", flagName, err)
		}
		return re, nil
	}
	qre, err := match("queue", *queueRE)
	if err != nil {
		fmt.Fprintf(stderr, "eventfilter: %v\n", err)
		return errUsage
	}
	tre, err := match("type", *typeRE)
	if err != nil {
		fmt.Fprintf(stderr, "eventfilter: %v\n", err)
		return errUsage
	}

	var events []*eventfmt.Event
	if fs.NArg() == 0 {
		events, err = eventfmt.ReadAll(stdin, "<stdin>")
	} else {
		events, err = eventfmt.ReadFile(fs.Arg(0))
	}
	if err != nil {
		return fail(err)
	}

	kept := events[:0:0]
	for _, ev := range events {
		if qre != nil && !qre.MatchString(ev.Queue) {
			continue
		}
		if tre != nil && !tre.MatchString(ev.Type) {
			continue
		}
		kept = append(kept, ev)
	}
	log.WithFields(logrus.Fields{"read": len(events), "kept": len(kept)}).Debug("filtered events")
	if *zero {
		kept = eventchart.ZeroStart(kept)
	}

	w := eventfmt.NewWriter(stdout)
	for _, ev := range kept {
		if err := w.Write(ev); err != nil {
			return fail(fmt.Errorf("writing output: %w", err))
		}
	}
	return nil
}
