// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MarkGlyph draws an "x" marker whose arms reach the glyph radius.
// Single-file charts use it for every point. Its stroke grows with
// the radius, so it stays legible at print sizes where
// draw.CrossGlyph turns into hairlines.
type MarkGlyph struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (MarkGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: markWidth(sty.Radius)})
	d := sty.Radius * math.Sqrt2 / 2
	var p vg.Path
	p.Move(vg.Point{X: pt.X - d, Y: pt.Y - d})
	p.Line(vg.Point{X: pt.X + d, Y: pt.Y + d})
	p.Move(vg.Point{X: pt.X - d, Y: pt.Y + d})
	p.Line(vg.Point{X: pt.X + d, Y: pt.Y - d})
	c.Stroke(p)
}

// markWidth is the stroke width of a MarkGlyph of radius r.
func markWidth(r vg.Length) vg.Length {
	if w := r / 3; w > vg.Points(1) {
		return w
	}
	return vg.Points(1)
}

// overlayGlyphs are the glyph shapes used for successive sets of an
// overlay chart.
var overlayGlyphs = []draw.GlyphDrawer{
	MarkGlyph{},
	draw.CircleGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
	draw.PlusGlyph{},
	draw.RingGlyph{},
	draw.BoxGlyph{},
	draw.PyramidGlyph{},
}
