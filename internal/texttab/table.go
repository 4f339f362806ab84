// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables for the console.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows  [][]textCell
	cols  int
	align []align
}

type textCell struct {
	value     string
	alignment align
	set       bool
}

type CellOption func(c *textCell)

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft; c.set = true }
	Center            = func(c *textCell) { c.alignment = alignCenter; c.set = true }
	Right             = func(c *textCell) { c.alignment = alignRight; c.set = true }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	default:
		return s + strings.Repeat(" ", n)
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := &t.rows[len(t.rows)-1]
	*r = append(*r, c)
	if len(*r) > t.cols {
		t.cols = len(*r)
	}
	return t
}

// Cells adds one cell per value at the end of the current row.
func (t *Table) Cells(values ...string) *Table {
	for _, v := range values {
		t.Cell(v)
	}
	return t
}

// SetAlign sets the default alignment of column col. Cells given an
// explicit alignment keep it.
func (t *Table) SetAlign(col int, opt CellOption) {
	for len(t.align) < col+1 {
		t.align = append(t.align, alignLeft)
	}
	var c textCell
	opt(&c)
	t.align[col] = c.alignment
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and trailing spaces are trimmed.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, cell := range row {
			if n := utf8.RuneCountInString(cell.value); n > ws[col] {
				ws[col] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, cell := range row {
			if col > 0 {
				line.WriteString("  ")
			}
			a := cell.alignment
			if !cell.set && col < len(t.align) {
				a = t.align[col]
			}
			line.WriteString(a.pad(cell.value, ws[col]))
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
