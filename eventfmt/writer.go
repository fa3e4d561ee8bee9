// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventfmt

import (
	"bytes"
	"io"
	"strconv"
)

// A Writer writes event logs in the format read by Reader.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes events to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes ev as a single tab-separated line. Times are written in
// the shortest decimal form that reads back as the same value.
func (w *Writer) Write(ev *Event) error {
	w.buf.WriteString(ev.Queue)
	w.buf.WriteByte('\t')
	w.buf.WriteString(strconv.FormatFloat(ev.Start, 'f', -1, 64))
	w.buf.WriteByte('\t')
	w.buf.WriteString(strconv.FormatFloat(ev.End, 'f', -1, 64))
	w.buf.WriteByte('\t')
	w.buf.WriteString(ev.Type)
	w.buf.WriteByte('\n')

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
