// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventproc

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SortQueues sorts queue names in place. If every name parses as a
// number, they are sorted numerically; otherwise they are sorted
// lexically.
//
// Names that are numerically equal but spelled differently, such as
// "1" and "01", are distinct queues and are ordered lexically among
// themselves.
func SortQueues(queues []string) {
	cmp := QueueOrder(queues)
	sort.Slice(queues, func(i, j int) bool {
		a, b := queues[i], queues[j]
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		return a < b
	})
}

// QueueOrder returns the comparison function SortQueues uses for
// queues.
func QueueOrder(queues []string) func(a, b string) int {
	for _, q := range queues {
		if _, err := parseNum(q); err != nil {
			return alpha
		}
	}
	return num
}

func alpha(a, b string) int {
	return strings.Compare(a, b)
}

// num compares a and b as numbers. Both must parse with parseNum.
func num(a, b string) int {
	aa, _ := parseNum(a)
	bb, _ := parseNum(b)
	if aa < bb {
		return -1
	}
	if aa > bb {
		return 1
	}
	// The values are equal.
	return 0
}

// parseNum parses x as a finite number.
func parseNum(x string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
