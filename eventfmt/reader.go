// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// A Reader reads event logs.
//
// Its API is modeled on bufio.Scanner. Any malformed line is fatal:
// once Scan returns false, Err reports the first error encountered.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a zeroed Reader.
type Reader struct {
	// Separator is the field separator. If zero, it defaults to a tab.
	Separator rune

	// QueueDelim and TypeDelim, if non-empty, are delimiters that
	// may surround the queue and event type fields, respectively.
	// A field that begins and ends with its delimiter has both
	// removed.
	QueueDelim, TypeDelim string

	s   *bufio.Scanner
	err error

	fileName string
	line     int
	ev       *Event
}

// A FormatError represents a malformed line of an event log.
type FormatError struct {
	FileName string
	Line     int
	Msg      string

	// Err is the underlying error, if any, such as a
	// *strconv.NumError from parsing a time.
	Err error
}

func (e *FormatError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewReader constructs a reader to parse an event log from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
// It does not reset Separator or the delimiters.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.ev = nil
}

func (r *Reader) newFormatError(err error, format string, args ...interface{}) *FormatError {
	return &FormatError{r.fileName, r.line, fmt.Sprintf(format, args...), err}
}

// Scan advances the reader to the next event and reports whether an
// event was read. The caller should use the Event method to get the
// event. If Scan reaches EOF, encounters a malformed line, or an I/O
// error occurs, it returns false, in which case the caller should use
// the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	r.ev = nil

	for r.s.Scan() {
		r.line++
		line := strings.TrimSuffix(r.s.Text(), "\r")
		if skipLine(line, r.separator()) {
			continue
		}
		ev, err := r.parseLine(line)
		if err != nil {
			r.err = err
			return false
		}
		r.ev = ev
		return true
	}

	// We hit EOF. Check for IO errors.
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// skipLine reports whether line carries no event: it is blank or its
// first non-blank character is '#', so a line whose queue name begins
// with '#' is a comment. The separator is never blank, so a line of
// bare separators is a malformed event, not a blank line.
func skipLine(line string, sep rune) bool {
	trimmed := strings.TrimLeftFunc(line, func(c rune) bool {
		return c != sep && unicode.IsSpace(c)
	})
	return trimmed == "" || trimmed[0] == '#'
}

func (r *Reader) separator() rune {
	if r.Separator == 0 {
		return '\t'
	}
	return r.Separator
}

func (r *Reader) parseLine(line string) (*Event, *FormatError) {
	sep := r.separator()
	fields := strings.Split(line, string(sep))
	if len(fields) != 4 {
		return nil, r.newFormatError(nil, "expected 4 fields, found %d", len(fields))
	}

	queue := unwrap(fields[0], r.QueueDelim)
	if queue == "" {
		return nil, r.newFormatError(nil, "missing queue")
	}
	start, err := atof(fields[1])
	if err != nil {
		return nil, r.newFormatError(err, "parsing start time %q: %s", fields[1], numErrMsg(err))
	}
	end, err := atof(fields[2])
	if err != nil {
		return nil, r.newFormatError(err, "parsing end time %q: %s", fields[2], numErrMsg(err))
	}
	if end < start {
		return nil, r.newFormatError(nil, "end time %v is before start time %v", end, start)
	}
	typ := unwrap(fields[3], r.TypeDelim)
	if typ == "" {
		return nil, r.newFormatError(nil, "missing event type")
	}

	return &Event{
		Queue:    queue,
		Start:    start,
		End:      end,
		Type:     typ,
		fileName: r.fileName,
		line:     r.line,
	}, nil
}

// unwrap removes delim from both ends of field if it surrounds it.
func unwrap(field, delim string) string {
	if delim == "" || len(field) < 2*len(delim) {
		return field
	}
	if strings.HasPrefix(field, delim) && strings.HasSuffix(field, delim) {
		return field[len(delim) : len(field)-len(delim)]
	}
	return field
}

var errNotFinite = errors.New("time is not finite")

// atof parses x as a float64. Times exported by profilers are usually
// integer nanosecond counts, so it tries that first.
func atof(x string) (float64, error) {
	if x == "" {
		return 0, strconv.ErrSyntax
	}
	var val int64
	for i := 0; i < len(x); i++ {
		digit := x[i] - '0'
		if digit >= 10 {
			goto fail
		}
		if val > (math.MaxInt64-10)/10 {
			goto fail // avoid int64 overflow
		}
		val = (val * 10) + int64(digit)
	}
	return float64(val), nil

fail:
	// The fast path failed. Parse it as a float.
	v, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func numErrMsg(err error) string {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		return nerr.Err.Error()
	}
	return err.Error()
}

// Event returns the event that was just read by Scan.
// It returns nil if Scan has not returned true.
func (r *Reader) Event() *Event {
	return r.ev
}

// Err returns the first malformed line or non-EOF I/O error that was
// encountered by the Reader. Malformed lines are reported as
// *FormatError.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every event from r, in input order. It stops at the
// first malformed line and returns no events in that case.
func ReadAll(r io.Reader, fileName string) ([]*Event, error) {
	return readAll(NewReader(r, fileName))
}

func readAll(reader *Reader) ([]*Event, error) {
	var evs []*Event
	for reader.Scan() {
		evs = append(evs, reader.Event())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return evs, nil
}

// ReadFile opens path and reads every event from it, using the
// configuration of r. If r is nil, it uses a default Reader.
func (r *Reader) ReadFile(path string) ([]*Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := new(Reader)
	if r != nil {
		reader.Separator = r.Separator
		reader.QueueDelim = r.QueueDelim
		reader.TypeDelim = r.TypeDelim
	}
	reader.Reset(f, path)
	return readAll(reader)
}

// ReadFile reads every event from the file at path using the default
// tab-separated format.
func ReadFile(path string) ([]*Event, error) {
	var r *Reader
	return r.ReadFile(path)
}
