// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"image/color"
	"io"

	"github.com/dwarfstat/dwarfstat/dwarfstat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	barWidth  = 12 // points
	rowHeight = 16 // points per bar
	margin    = 80 // points for title and axis
)

var barColor = color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 0xff}

// WriteChart writes a PNG horizontal bar chart of r to w, largest
// entry on top. If top is positive only that many entries are drawn.
func WriteChart(w io.Writer, r *dwarfstat.Report, top int) error {
	entries := r.Top(top)

	// Bars are drawn bottom-up.
	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		j := len(entries) - 1 - i
		values[j] = float64(e.Size)
		names[j] = e.Name
	}

	pl := plot.New()
	pl.Title.Text = r.Namespace.String()
	pl.X.Label.Text = "bytes"

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0
	pl.Add(bars)
	pl.NominalY(names...)

	height := vg.Points(float64(len(entries)*rowHeight + margin))
	wt, err := pl.WriterTo(8*vg.Inch, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
