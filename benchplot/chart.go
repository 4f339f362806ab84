// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot draws scatter charts of result set columns.
//
// Each chart plots one column of a result file against another, for
// example group size against time taken. A chart can show a single
// set or overlay several sets, one colour and glyph per set.
package benchplot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/groupbench/benchtools/internal/fs"
	"github.com/groupbench/benchtools/resultfmt"
)

// Figures numbers charts in the order they are made. The zero value
// is ready to use and returns 1 first.
type Figures struct {
	n int
}

// Next returns the next figure number.
func (f *Figures) Next() int {
	f.n++
	return f.n
}

// A Chart is a plot ready to be rendered.
type Chart struct {
	Figure int

	// Base names the data the chart was drawn from. It is used to
	// derive the output file name.
	Base string

	X, Y string
	Plot *plot.Plot
}

// A Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// ParseFormat parses the name of an output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG, PDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want png, svg, or pdf)", s)
}

const pointRad = 3

// Default chart size and raster resolution.
const (
	Width  = 16 * vg.Centimeter
	Height = 12 * vg.Centimeter
	DPI    = 150
)

// points extracts the (x, y) points of set for pair.
func points(set *resultfmt.Set, layout *Layout, pair Pair) (plotter.XYs, error) {
	if w := set.Width(); w != 0 && w != len(layout.Columns) {
		return nil, fmt.Errorf("%s: rows have %d columns, layout %s has %d", set.Name, w, layout.Name, len(layout.Columns))
	}
	xs, ys := set.Column(pair.X), set.Column(pair.Y)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts, nil
}

func newPlot(title string, layout *Layout, pair Pair) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = layout.ColumnName(pair.X)
	pl.Y.Label.Text = layout.ColumnName(pair.Y)

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{0xe0}
	grid.Horizontal.Color = color.Gray{0xe0}
	pl.Add(grid)
	return pl
}

// Scatter draws column pair.X of set against column pair.Y as red
// crosses. It takes the next figure number from figs.
func Scatter(figs *Figures, set *resultfmt.Set, layout *Layout, pair Pair) (*Chart, error) {
	pts, err := points(set, layout, pair)
	if err != nil {
		return nil, err
	}
	x, y := layout.ColumnName(pair.X), layout.ColumnName(pair.Y)
	pl := newPlot(fmt.Sprintf("%s: %s vs %s", set.Name, x, y), layout, pair)
	if len(pts) > 0 {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set.Name, err)
		}
		s.GlyphStyle.Shape = MarkGlyph{}
		s.GlyphStyle.Color = color.NRGBA{0xFF, 0, 0, 0xFF}
		s.GlyphStyle.Radius = vg.Points(pointRad)
		pl.Add(s)
	}
	return &Chart{Figure: figs.Next(), Base: set.Name, X: x, Y: y, Plot: pl}, nil
}

// Overlay draws column pair.X against column pair.Y for every set on
// one chart, with a legend naming the sets.
func Overlay(figs *Figures, sets []*resultfmt.Set, layout *Layout, pair Pair) (*Chart, error) {
	x, y := layout.ColumnName(pair.X), layout.ColumnName(pair.Y)
	pl := newPlot(fmt.Sprintf("%s vs %s", x, y), layout, pair)
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Legend.Padding = 1 * vg.Millimeter

	colors, err := setColors(len(sets))
	if err != nil {
		return nil, err
	}
	for i, set := range sets {
		pts, err := points(set, layout, pair)
		if err != nil {
			return nil, err
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set.Name, err)
		}
		s.GlyphStyle.Shape = overlayGlyphs[i%len(overlayGlyphs)]
		s.GlyphStyle.Color = colors[i]
		s.GlyphStyle.Radius = vg.Points(pointRad)
		pl.Add(s)
		pl.Legend.Add(set.Name, s)
	}
	return &Chart{Figure: figs.Next(), Base: "overlay", X: x, Y: y, Plot: pl}, nil
}

// setColors returns n distinguishable colours from a qualitative
// palette, repeating them if there are more sets than colours.
func setColors(n int) ([]color.Color, error) {
	const maxColors = 9
	k := n
	if k < 3 {
		k = 3
	}
	if k > maxColors {
		k = maxColors
	}
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return nil, err
	}
	pc := palette.Colors()
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = pc[i%len(pc)]
	}
	return colors, nil
}

// slug turns s into a file name component.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// FileName returns the name c is saved under in format f, for example
// "fig01-fast-group-size-vs-time-taken.png".
func (c *Chart) FileName(f Format) string {
	base := filepath.Base(c.Base)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("fig%02d-%s-%s-vs-%s.%s", c.Figure, slug(base), slug(c.X), slug(c.Y), f)
}

// canvas returns a canvas of the given size for format f.
func canvas(f Format, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch f {
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}, nil
	case SVG:
		return vgsvg.New(w, h), nil
	case PDF:
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// WriteTo renders c in format f at the default size and writes it to w.
func (c *Chart) WriteTo(w io.Writer, f Format) error {
	can, err := canvas(f, Width, Height)
	if err != nil {
		return err
	}
	c.Plot.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// Save renders c in format f and stores it in fsys under
// c.FileName(f). It returns the file name.
func (c *Chart) Save(ctx context.Context, fsys fs.FS, f Format) (string, error) {
	name := c.FileName(f)
	w, err := fsys.NewWriter(ctx, name, map[string]string{
		"figure": fmt.Sprint(c.Figure),
		"source": c.Base,
		"x":      c.X,
		"y":      c.Y,
	})
	if err != nil {
		return "", err
	}
	if err := c.WriteTo(w, f); err != nil {
		w.CloseWithError(err)
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return name, nil
}
