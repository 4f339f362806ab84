// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latex renders tables as LaTeX tabular environments.
package latex

import (
	"fmt"
	"io"
	"strings"

	"github.com/groupbench/benchtools/resultfmt"
)

// A Table is a header row plus a rectangular grid of cells.
type Table struct {
	Header []string
	Rows   [][]string

	// Align is the tabular column spec, for example "|c|c|r|".
	// If empty, every column is centered and separated by
	// vertical rules.
	Align string
}

// Columns returns the number of columns of t.
func (t *Table) Columns() int {
	n := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (t *Table) align() string {
	if t.Align != "" {
		return t.Align
	}
	return "|" + strings.Repeat("c|", t.Columns())
}

// Format writes t to w as a tabular environment.
//
// Cells are escaped, so they are printed literally. Short rows are
// padded with empty cells.
func (t *Table) Format(w io.Writer) error {
	var b strings.Builder
	n := t.Columns()
	fmt.Fprintf(&b, "\\begin{tabular}{%s}\n\\hline\n", t.align())
	if len(t.Header) > 0 {
		writeRow(&b, t.Header, n)
		b.WriteString("\\hline\n")
	}
	for _, row := range t.Rows {
		writeRow(&b, row, n)
	}
	b.WriteString("\\hline\n\\end{tabular}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns t formatted as by Format.
func (t *Table) String() string {
	var b strings.Builder
	t.Format(&b)
	return b.String()
}

func writeRow(b *strings.Builder, row []string, n int) {
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" & ")
		}
		if i < len(row) {
			b.WriteString(Escape(row[i]))
		}
	}
	b.WriteString(" \\\\\n")
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape quotes the LaTeX special characters in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// FromSet builds a table with one row per row of set. header names
// the columns; if it is nil, columns are left unnamed.
func FromSet(set *resultfmt.Set, header []string) *Table {
	t := &Table{Header: header}
	for _, row := range set.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = resultfmt.Row{v}.Format()
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}
