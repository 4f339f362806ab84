// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultstat computes descriptive statistics over the columns
// of result sets.
package resultstat

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"github.com/groupbench/benchtools/internal/texttab"
	"github.com/groupbench/benchtools/resultfmt"
)

// A Summary describes the values of one column of a set.
type Summary struct {
	Name   string
	N      int
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	Q1     float64
	Q3     float64
	StdDev float64

	// Median is the 0.5 quantile.
	Median float64

	// GeoMean is NaN unless every value is positive.
	GeoMean float64
}

// Summarize summarizes column col of set. Negative col counts from
// the end, so -1 is the elapsed-time column. A set with no rows gives
// a Summary with N == 0 and NaN statistics, except Sum which is 0.
func Summarize(set *resultfmt.Set, col int) Summary {
	xs := set.Column(col)
	sort.Float64s(xs)
	s := Summary{Name: set.Name, N: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.Median, s.Q1, s.Q3, s.StdDev, s.GeoMean = nan, nan, nan, nan, nan, nan, nan, nan
		return s
	}
	sample := stats.Sample{Xs: xs, Sorted: true}
	s.Sum = sample.Sum()
	s.Min, s.Max = sample.Bounds()
	s.Mean = sample.Mean()
	s.Median = sample.Quantile(0.5)
	s.Q1 = sample.Quantile(0.25)
	s.Q3 = sample.Quantile(0.75)
	if len(xs) > 1 {
		s.StdDev = sample.StdDev()
	}
	s.GeoMean = math.NaN()
	if xs[0] > 0 {
		s.GeoMean = sample.GeoMean()
	}
	return s
}

// SummarizeAll summarizes column col of every set, in order.
func SummarizeAll(sets []*resultfmt.Set, col int) []Summary {
	out := make([]Summary, len(sets))
	for i, set := range sets {
		out[i] = Summarize(set, col)
	}
	return out
}

func format(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%.4g", v)
}

// FormatText writes summaries to w as an aligned table.
func FormatText(w io.Writer, summaries []Summary) error {
	tab := new(texttab.Table)
	for col := 1; col <= 10; col++ {
		tab.SetAlign(col, texttab.Right)
	}
	tab.Row().Cells("name", "n", "sum", "min", "q1", "median", "q3", "max", "mean", "stddev", "geomean")
	for _, s := range summaries {
		tab.Row().Cells(s.Name, strconv.Itoa(s.N), format(s.Sum),
			format(s.Min), format(s.Q1), format(s.Median), format(s.Q3), format(s.Max),
			format(s.Mean), format(s.StdDev), format(s.GeoMean))
	}
	return tab.Format(w)
}
