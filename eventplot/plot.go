// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventplot draws an eventchart.Chart with gonum/plot.
//
// It is one drawing surface for a Chart; it reads nothing but the
// Chart and a Style.
package eventplot

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"golang.org/x/eventchart/eventchart"
)

// A Figure is a chart laid out on a plot, ready to be written as an
// image.
type Figure struct {
	Plot *plot.Plot

	// Legend is drawn in a column to the right of Plot. It is nil
	// when the legend is hidden or drawn inside Plot.
	Legend *plot.Legend

	// Rows is the number of queue rows, used to size the image when
	// the style does not fix its height.
	Rows int
}

// Render lays c out on a new plot.
func Render(c *eventchart.Chart, s Style) (*Figure, error) {
	if len(c.Ticks) == 0 || len(c.Legend) == 0 {
		return nil, eventchart.ErrEmptyChart
	}

	pl := plot.New()
	pl.Title.Text = s.Title
	pl.Title.TextStyle.Font.Size = vg.Points(s.Font.Title)
	pl.X.Label.Text = s.XLabel
	pl.Y.Label.Text = s.YLabel

	if !s.HideGrid {
		grid := plotter.NewGrid()
		grid.Horizontal.Color = nil
		pl.Add(grid)
	}

	pl.Add(&Bars{Rects: c.Rects})

	ticks := make([]plot.Tick, len(c.Ticks))
	for i, t := range c.Ticks {
		ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	pl.Y.Tick.Marker = plot.ConstantTicks(ticks)
	pl.Y.Tick.Label.Font.Size = vg.Points(s.Font.Ticks)
	pl.X.Tick.Label.Font.Size = vg.Points(s.Font.Ticks)

	// Add widened the axes to fit the data; pin them to the chart
	// bounds instead.
	pl.X.Min, pl.X.Max = c.XMin, c.XMax
	if pl.X.Min == pl.X.Max {
		// All events are instants at the same time.
		pl.X.Min, pl.X.Max = pl.X.Min-0.5, pl.X.Max+0.5
	}
	pl.Y.Min, pl.Y.Max = c.YMin, c.YMax

	fig := &Figure{Plot: pl, Rows: len(c.Ticks)}
	if s.Legend.Hide {
		return fig, nil
	}
	// pl.Legend has no entries yet, so a copy starts empty with the
	// plot's default text style.
	leg := &pl.Legend
	if s.Legend.Outside {
		l := pl.Legend
		leg = &l
		leg.Top, leg.Left = true, true
		fig.Legend = leg
	} else {
		leg.Top = !s.Legend.Bottom
		leg.Left = s.Legend.Left
	}
	leg.TextStyle.Font.Size = vg.Points(s.Font.Legend)
	for _, e := range c.Legend {
		leg.Add(e.Label, Swatch{e.Color})
	}
	return fig, nil
}

// Draw draws f on c, reserving a column of width legendWidth on the
// right for an outside legend.
func (f *Figure) Draw(c draw.Canvas, legendWidth vg.Length) {
	if f.Legend == nil {
		f.Plot.Draw(c)
		return
	}
	f.Plot.Draw(draw.Crop(c, 0, -legendWidth, 0, 0))
	f.Legend.XOffs = vg.Points(4)
	f.Legend.Draw(draw.Crop(c, c.Max.X-c.Min.X-legendWidth, 0, 0, 0))
}

// Bars draws event rectangles. It implements plot.Plotter and
// plot.DataRanger.
type Bars struct {
	Rects []eventchart.Rect
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, r := range b.Rects {
		x0, x1 := trX(r.X), trX(r.X+r.Width)
		y0, y1 := trY(r.Y), trY(r.Y+r.Height)
		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
		}
		c.FillPolygon(r.Color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	for i, r := range b.Rects {
		if i == 0 {
			xmin, xmax, ymin, ymax = r.X, r.X+r.Width, r.Y, r.Y+r.Height
			continue
		}
		if r.X < xmin {
			xmin = r.X
		}
		if r.X+r.Width > xmax {
			xmax = r.X + r.Width
		}
		if r.Y < ymin {
			ymin = r.Y
		}
		if r.Y+r.Height > ymax {
			ymax = r.Y + r.Height
		}
	}
	return
}

// A Swatch is a legend thumbnail: a filled box with a black edge.
type Swatch struct {
	Color color.Color
}

// Thumbnail implements the plot.Thumbnailer interface.
func (s Swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonY(pts))
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	c.StrokeLines(edge, c.ClipLinesY(append(pts, pts[0]))...)
}

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// FormatOf returns the image format implied by the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("%s: unsupported image format %q", path, ext)
	}
	return ext, nil
}

// Write draws f as an image in the given format and writes it to w.
func Write(w io.Writer, f *Figure, format string, s Style) error {
	if !formats[format] {
		return fmt.Errorf("unsupported image format %q", format)
	}
	width := vg.Length(s.Size.Width) * vg.Centimeter
	height := vg.Length(s.height(f.Rows)) * vg.Centimeter
	legendWidth := vg.Length(s.Legend.Width) * vg.Centimeter

	var can vg.CanvasWriterTo
	if format == "png" {
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
			vgimg.UseDPI(s.Size.DPI), vgimg.UseBackgroundColor(color.White))}
	} else {
		var err error
		can, err = draw.NewFormattedCanvas(width, height, format)
		if err != nil {
			return err
		}
	}
	f.Draw(draw.New(can), legendWidth)
	_, err := can.WriteTo(w)
	return err
}
