// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/groupbench/benchtools/internal/texttab"
	"github.com/groupbench/benchtools/latex"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatText writes r to w as two aligned tables, one of totals and
// one of wins.
func (r *Report) FormatText(w io.Writer) error {
	tab := new(texttab.Table)
	tab.SetAlign(1, texttab.Right)
	tab.SetAlign(2, texttab.Right)
	tab.Row().Cells("name", "total time", "rows")
	for _, t := range r.Totals {
		tab.Row().Cells(t.Name, formatValue(t.Total), strconv.Itoa(t.Rows))
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	tab = new(texttab.Table)
	for col := 1; col <= 3; col++ {
		tab.SetAlign(col, texttab.Right)
	}
	tab.Row().Cells("name", "wins", "ties", "rows")
	for _, c := range r.Wins {
		tab.Row().Cells(c.Name, strconv.Itoa(c.Wins), strconv.Itoa(c.Ties), strconv.Itoa(c.Rows))
	}
	return tab.Format(w)
}

// FormatRaw writes r to w as two lists of (name, value) pairs, one
// per line: totals first, then wins. Names are quoted the way Python
// prints strings, so the lines read as Python lists of tuples.
func (r *Report) FormatRaw(w io.Writer) error {
	var b strings.Builder
	b.WriteString("[")
	for i, t := range r.Totals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%s, %s)", pyQuote(t.Name), formatValue(t.Total))
	}
	b.WriteString("]\n[")
	for i, c := range r.Wins {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%s, %d)", pyQuote(c.Name), c.Wins)
	}
	b.WriteString("]\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatCSV writes r to w in CSV form, one record per set in order of
// total time.
func (r *Report) FormatCSV(w io.Writer) error {
	tab := [][]string{{"name", "total", "rows", "wins", "ties"}}
	for _, t := range r.Totals {
		c := r.WinsOf(t.Set)
		tab = append(tab, []string{t.Name, formatValue(t.Total), strconv.Itoa(t.Rows), strconv.Itoa(c.Wins), strconv.Itoa(c.Ties)})
	}
	csvw := csv.NewWriter(w)
	csvw.WriteAll(tab)
	csvw.Flush()
	return csvw.Error()
}

// LaTeX returns r as a LaTeX table in order of total time.
func (r *Report) LaTeX() *latex.Table {
	t := &latex.Table{
		Header: []string{"run", "total time", "wins", "ties"},
		Align:  "|l|r|r|r|",
	}
	for _, tot := range r.Totals {
		c := r.WinsOf(tot.Set)
		t.Rows = append(t.Rows, []string{tot.Name, formatValue(tot.Total), strconv.Itoa(c.Wins), strconv.Itoa(c.Ties)})
	}
	return t
}

// pyQuote quotes s like Python's repr: single quotes unless s holds
// a single quote and no double quote.
func pyQuote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', q:
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
