// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventfmt provides a reader and writer for event profiling
// logs.
//
// An event log is a header-less, tab-separated file with one event
// per line:
//
//	<queue>	<start>	<end>	<event type>
//
// The queue is the name of the execution queue (for example, an
// OpenCL command queue) the event ran on. Start and end are the
// instants the event began and finished, in any consistent time unit.
// The event type is the name shared by all instances of the same kind
// of event, such as a kernel name or "READ_BUFFER".
//
// Blank lines are ignored, as are comment lines whose first non-blank
// character is '#'. A queue name therefore cannot begin with '#'.
//
// This package is designed to be used with the higher-level packages
// eventproc, eventcolor and eventchart.
package eventfmt

import "fmt"

// An Event is a single timed interval on a queue.
//
// Events returned by Reader.Event are owned by the caller and are not
// modified by later calls to Scan.
type Event struct {
	// Queue identifies the queue this event ran on. Queues may be
	// named by strings or by numbers; see package eventproc for how
	// they are ordered.
	Queue string

	// Start and End are the instants the event started and ended.
	// End is never less than Start.
	Start, End float64

	// Type is the event type this event is an instance of.
	Type string

	// fileName and line record where this Event was read from.
	fileName string
	line     int
}

// Duration returns End - Start.
func (e *Event) Duration() float64 {
	return e.End - e.Start
}

// Pos returns the file name and 1-based line number this Event was
// read from. If this Event was not read from a file, it returns "", 0.
func (e *Event) Pos() (fileName string, line int) {
	return e.fileName, e.line
}

// Clone makes a copy of e, including its position.
func (e *Event) Clone() *Event {
	e2 := *e
	return &e2
}

// Shift returns a copy of e with Start and End offset by delta.
func (e *Event) Shift(delta float64) *Event {
	e2 := e.Clone()
	e2.Start += delta
	e2.End += delta
	return e2
}

func (e *Event) String() string {
	return fmt.Sprintf("%s [%v, %v] %s", e.Queue, e.Start, e.End, e.Type)
}
