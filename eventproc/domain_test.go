// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventproc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/eventchart/eventfmt"
)

func mustRead(t *testing.T, input string) []*eventfmt.Event {
	t.Helper()
	evs, err := eventfmt.ReadAll(strings.NewReader(input), "test")
	if err != nil {
		t.Fatal(err)
	}
	return evs
}

func TestResolve(t *testing.T) {
	for _, test := range []struct {
		name       string
		input      string
		wantQueues []string
		wantTypes  []string
	}{
		{
			"example",
			"A\t0\t5\tkernel\nA\t5\t6\twrite\nB\t0\t3\tread\n",
			[]string{"A", "B"},
			[]string{"kernel", "read", "write"},
		},
		{
			"insertion order is ignored",
			"queue_comm\t0\t1\tWRITE\nqueue_exec\t1\t2\tRNG\nqueue_comm\t2\t3\tREAD\nqueue_exec\t3\t4\tCA\n",
			[]string{"queue_comm", "queue_exec"},
			[]string{"CA", "READ", "RNG", "WRITE"},
		},
		{
			"numeric queues",
			"10\t0\t1\tk\n9\t0\t1\tk\n2\t0\t1\tk\n10\t1\t2\tk\n",
			[]string{"2", "9", "10"},
			[]string{"k"},
		},
		{
			"numeric spellings",
			"1\t0\t1\tk\n01\t0\t1\tk\n0.5\t0\t1\tk\n",
			[]string{"0.5", "01", "1"},
			[]string{"k"},
		},
		{
			"mixed queues sort lexically",
			"10\t0\t1\tk\n9\t0\t1\tk\nq\t0\t1\tk\n",
			[]string{"10", "9", "q"},
			[]string{"k"},
		},
		{
			"single event",
			"Q\t3\t7\tk\n",
			[]string{"Q"},
			[]string{"k"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			d, err := Resolve(mustRead(t, test.input))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.wantQueues, d.Queues); diff != "" {
				t.Errorf("queues differ (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantTypes, d.Types); diff != "" {
				t.Errorf("types differ (-want +got):\n%s", diff)
			}
			for i, q := range d.Queues {
				if got, ok := d.QueueIndex(q); !ok || got != i {
					t.Errorf("QueueIndex(%q) = %d, %v; want %d, true", q, got, ok, i)
				}
			}
			for i, typ := range d.Types {
				if got, ok := d.TypeIndex(typ); !ok || got != i {
					t.Errorf("TypeIndex(%q) = %d, %v; want %d, true", typ, got, ok, i)
				}
			}
		})
	}
}

func TestResolveEmpty(t *testing.T) {
	d, err := Resolve(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("want ErrEmptyInput, got %v", err)
	}
	if d != nil {
		t.Errorf("want nil domain, got %+v", d)
	}
}

func TestResolveDeterministic(t *testing.T) {
	const input = "B\t0\t1\tz\nA\t0\t1\ty\nC\t0\t1\tx\nA\t1\t2\tz\n"
	const reordered = "A\t1\t2\tz\nC\t0\t1\tx\nA\t0\t1\ty\nB\t0\t1\tz\n"
	d1, err := Resolve(mustRead(t, input))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Resolve(mustRead(t, reordered))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d1, d2, cmp.AllowUnexported(Domain{})); diff != "" {
		t.Errorf("domains differ (-first +second):\n%s", diff)
	}
}

func TestIndexMissing(t *testing.T) {
	d := NewDomain([]string{"A"}, []string{"k"})
	if _, ok := d.QueueIndex("B"); ok {
		t.Error("QueueIndex(B) found a queue not in the domain")
	}
	if _, ok := d.TypeIndex("j"); ok {
		t.Error("TypeIndex(j) found a type not in the domain")
	}
}
