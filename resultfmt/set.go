// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads plain numeric benchmark result files.
//
// A result file holds one row per line. Each row is a sequence of
// whitespace-separated numbers, for example
//
//	64 12 11 3 1520
//
// for the columns group size, group id, number of conjugacy classes,
// degree and elapsed time. The last column of every row is the
// elapsed time.
package resultfmt

import (
	"fmt"
	"strconv"
)

// A Mode selects how tokens are parsed.
type Mode int

const (
	// Int requires every token to be a base-10 integer.
	Int Mode = iota
	// Float accepts any floating-point token.
	Float
)

func (m Mode) String() string {
	switch m {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// A Row is the numeric fields of one line of a result file.
type Row []float64

// Time returns the elapsed-time field of r, which is its last column.
// It returns 0 for an empty row.
func (r Row) Time() float64 {
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

// Format formats r as a line of a result file, without the trailing
// newline.
func (r Row) Format() string {
	buf := make([]byte, 0, 8*len(r))
	for i, v := range r {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
	}
	return string(buf)
}

// A Set is the rows loaded from one result file.
//
// Sets are not modified after they are loaded.
type Set struct {
	// Name identifies the set. It is the file name it was read
	// from, or the label given on the command line.
	Name string

	// Path is the file the set was read from. It is "-" for
	// standard input.
	Path string

	Rows []Row
}

// Len returns the number of rows in s.
func (s *Set) Len() int {
	return len(s.Rows)
}

// Time returns the elapsed time of row i and whether s has a row i.
func (s *Set) Time(i int) (float64, bool) {
	if i < 0 || i >= len(s.Rows) {
		return 0, false
	}
	return s.Rows[i].Time(), true
}

// Column returns the values of column col across all rows of s.
// Negative col counts from the end, so -1 is the time column.
// Rows that are too short for col are skipped.
func (s *Set) Column(col int) []float64 {
	out := make([]float64, 0, len(s.Rows))
	for _, row := range s.Rows {
		c := col
		if c < 0 {
			c += len(row)
		}
		if c < 0 || c >= len(row) {
			continue
		}
		out = append(out, row[c])
	}
	return out
}

// Width returns the number of columns of s, or 0 for an empty set.
func (s *Set) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}
