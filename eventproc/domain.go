// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventproc

import (
	"errors"

	"github.com/aclements/go-gg/generic/slice"

	"golang.org/x/eventchart/eventfmt"
)

// ErrEmptyInput is returned by Resolve when there are no events to
// derive a domain from.
var ErrEmptyInput = errors.New("no events")

// A Domain is the resolved set of queues and event types of an event
// log.
type Domain struct {
	// Queues is the distinct queue names in row order.
	Queues []string
	// Types is the distinct event type names in legend order.
	Types []string

	queuePos map[string]int
	typePos  map[string]int
}

// Resolve computes the Domain of events. It returns ErrEmptyInput if
// events is empty.
func Resolve(events []*eventfmt.Event) (*Domain, error) {
	if len(events) == 0 {
		return nil, ErrEmptyInput
	}
	queues := make([]string, len(events))
	types := make([]string, len(events))
	for i, ev := range events {
		queues[i], types[i] = ev.Queue, ev.Type
	}
	return NewDomain(queues, types), nil
}

// NewDomain returns the Domain spanned by the given queue and type
// names. The names may contain duplicates and may be in any order.
func NewDomain(queues, types []string) *Domain {
	queues = slice.Nub(queues).([]string)
	SortQueues(queues)
	types = slice.Nub(types).([]string)
	slice.Sort(types)

	return &Domain{
		Queues:   queues,
		Types:    types,
		queuePos: positions(queues),
		typePos:  positions(types),
	}
}

func positions(xs []string) map[string]int {
	m := make(map[string]int, len(xs))
	for i, x := range xs {
		m[x] = i
	}
	return m
}

// QueueIndex returns the row index of queue q, and whether q is in the
// domain.
func (d *Domain) QueueIndex(q string) (int, bool) {
	i, ok := d.queuePos[q]
	return i, ok
}

// TypeIndex returns the legend index of event type t, and whether t is
// in the domain.
func (d *Domain) TypeIndex(t string) (int, bool) {
	i, ok := d.typePos[t]
	return i, ok
}
