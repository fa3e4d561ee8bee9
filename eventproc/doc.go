// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventproc derives the categorical domains of an event log:
// the ordered set of queues, which become the rows of a chart, and the
// ordered set of event types, which determine legend order and color
// assignment.
//
// Both domains are sorted, never left in insertion order, so the same
// log always produces the same axis layout and legend. Event types are
// sorted lexically. Queues are sorted numerically if every queue name
// is a number, and lexically otherwise.
package eventproc
