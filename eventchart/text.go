// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventchart

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// WriteText writes a plain-text listing of c to w. The listing is
// deterministic, so two equal Charts always produce the same text.
func (c *Chart) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "x: [%v, %v]\n", c.XMin, c.XMax)
	fmt.Fprintf(bw, "y: [%v, %v]\n", c.YMin, c.YMax)
	fmt.Fprintf(bw, "ticks:\n")
	for _, t := range c.Ticks {
		fmt.Fprintf(bw, "\t%v\t%s\n", t.Value, t.Label)
	}
	fmt.Fprintf(bw, "legend:\n")
	for _, e := range c.Legend {
		fmt.Fprintf(bw, "\t%s\t%s\n", hex(e.Color), e.Label)
	}
	fmt.Fprintf(bw, "rects:\n")
	for _, r := range c.Rects {
		fmt.Fprintf(bw, "\t%s\t%s\tx=%v w=%v y=%v h=%v\t%s\n", r.Queue, hex(r.Color), r.X, r.Width, r.Y, r.Height, r.Type)
	}
	return bw.Flush()
}

func hex(c color.Color) string {
	if c == nil {
		return "#--------"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
