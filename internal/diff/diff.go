// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual test
// output.
package diff

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Lines returns a human-readable description of the differences
// between want and got, or "" if they are equal.
//
// If the "diff" command is available, the result is a unified diff.
// Otherwise it is a line-by-line comparison from go-cmp.
func Lines(want, got []byte) string {
	if string(want) == string(got) {
		return ""
	}
	if out, ok := unified(want, got); ok {
		return out
	}
	return cmp.Diff(strings.SplitAfter(string(want), "\n"), strings.SplitAfter(string(got), "\n"))
}

func unified(want, got []byte) (string, bool) {
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return "", false
	}

	d, err := os.MkdirTemp("", "eventchart-diff")
	if err != nil {
		return "", false
	}
	defer os.RemoveAll(d)
	if err := os.WriteFile(filepath.Join(d, "want"), want, 0666); err != nil {
		return "", false
	}
	if err := os.WriteFile(filepath.Join(d, "got"), got, 0666); err != nil {
		return "", false
	}

	c := exec.Command(cmd, "-Nu", "want", "got")
	c.Dir = d
	// diff exits with a non-zero status when the files differ, so
	// only the output matters.
	data, _ := c.CombinedOutput()
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}
