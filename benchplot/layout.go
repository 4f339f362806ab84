// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A Layout names the columns of a result file and lists the charts
// that are drawn for it by default.
type Layout struct {
	Name    string
	Columns []string

	// Plots are the default column pairs to chart. If empty,
	// every column but the last is charted against the last.
	Plots []Pair
}

// A Pair selects the X and Y columns of a chart.
type Pair struct {
	X, Y int
}

const (
	colSize    = "group size"
	colID      = "group id"
	colClasses = "number of classes"
	colDegree  = "degree"
	colTime    = "time taken"
)

// Layouts are the known result file layouts, by name.
var Layouts = map[string]*Layout{
	"size": {
		Name:    "size",
		Columns: []string{colSize, colClasses, colTime},
	},
	"degree": {
		Name:    "degree",
		Columns: []string{colDegree, colTime},
	},
	"full": {
		Name:    "full",
		Columns: []string{colSize, colID, colClasses, colDegree, colTime},
		Plots:   []Pair{{0, 4}, {2, 4}, {3, 4}},
	},
}

// LayoutNames returns the names of the known layouts, sorted.
func LayoutNames() []string {
	var names []string
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLayout returns a layout with the given column names.
func NewLayout(name string, columns []string) *Layout {
	return &Layout{Name: name, Columns: columns}
}

// Pairs returns the column pairs to chart by default.
func (l *Layout) Pairs() []Pair {
	if len(l.Plots) > 0 {
		return l.Plots
	}
	var pairs []Pair
	last := len(l.Columns) - 1
	for i := 0; i < last; i++ {
		pairs = append(pairs, Pair{i, last})
	}
	return pairs
}

// Column resolves a column given by name or by 0-based index.
func (l *Layout) Column(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= len(l.Columns) {
			return 0, fmt.Errorf("column %d out of range for layout %s with %d columns", i, l.Name, len(l.Columns))
		}
		return i, nil
	}
	for i, c := range l.Columns {
		if strings.EqualFold(c, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("layout %s has no column %q", l.Name, s)
}

// ColumnName returns the name of column i.
func (l *Layout) ColumnName(i int) string {
	if i >= 0 && i < len(l.Columns) {
		return l.Columns[i]
	}
	return fmt.Sprintf("column %d", i)
}
