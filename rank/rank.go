// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rank ranks competing benchmark result sets.
//
// Sets are compared in two ways. The total is the sum of a set's
// elapsed-time column; a lower total is better. A win is a row index
// at which a set's elapsed time is strictly lower than that of every
// other set that has a row at the same index.
//
// Rows are aligned by position, not by any key column. Sets may have
// different lengths; a set without row i simply does not take part in
// the comparison at row i.
//
// When two or more sets share the lowest time at a row, none of them
// wins that row. Each of them is credited with a tie instead, so the
// wins at any row always add up to at most one.
package rank

import (
	"sort"

	"github.com/groupbench/benchtools/resultfmt"
)

// A Total is the summed elapsed time of one set.
type Total struct {
	Name string
	// Set is the index of the set in the input. Names need not
	// be unique, so reports are joined on Set.
	Set   int
	Total float64
	Rows  int
}

// A WinCount is the number of rows one set won or tied.
type WinCount struct {
	Name string
	Set  int
	Wins int
	Ties int
	Rows int
}

// A Report is the ranking of a collection of sets.
type Report struct {
	// Totals is sorted by ascending Total. Sets with equal totals
	// stay in input order.
	Totals []Total

	// Wins is sorted by descending Wins. Sets with equal win
	// counts stay in input order.
	Wins []WinCount
}

// Compute ranks sets. The order of sets is the input order used to
// break ties in sorting.
func Compute(sets []*resultfmt.Set) *Report {
	return &Report{
		Totals: Totals(sets),
		Wins:   Wins(sets),
	}
}

// WinsOf returns the win count of the set with index set, or a zero
// WinCount if r has none.
func (r *Report) WinsOf(set int) WinCount {
	for _, c := range r.Wins {
		if c.Set == set {
			return c
		}
	}
	return WinCount{Set: set}
}

// Totals returns the total elapsed time of each set, in ascending
// order.
func Totals(sets []*resultfmt.Set) []Total {
	totals := make([]Total, 0, len(sets))
	for k, s := range sets {
		var sum float64
		for _, row := range s.Rows {
			sum += row.Time()
		}
		totals = append(totals, Total{Name: s.Name, Set: k, Total: sum, Rows: s.Len()})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total < totals[j].Total
	})
	return totals
}

// An Outcome is the result of one set at one row index.
type Outcome int

const (
	// Absent means the set has no row at the index.
	Absent Outcome = iota
	// Lost means some other set was strictly faster.
	Lost
	// Won means the set was strictly faster than every other set.
	Won
	// Tied means the set shares the lowest time with at least one
	// other set.
	Tied
)

func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Tied:
		return "tied"
	}
	return "?"
}

// Outcomes returns the outcome of every set at row index i, indexed
// like sets.
func Outcomes(sets []*resultfmt.Set, i int) []Outcome {
	out := make([]Outcome, len(sets))
	best, nBest := 0.0, 0
	for _, s := range sets {
		t, ok := s.Time(i)
		if !ok {
			continue
		}
		switch {
		case nBest == 0 || t < best:
			best, nBest = t, 1
		case t == best:
			nBest++
		}
	}
	for k, s := range sets {
		t, ok := s.Time(i)
		switch {
		case !ok:
			out[k] = Absent
		case t != best:
			out[k] = Lost
		case nBest == 1:
			out[k] = Won
		default:
			out[k] = Tied
		}
	}
	return out
}

// Wins returns the number of rows each set won, in descending order.
func Wins(sets []*resultfmt.Set) []WinCount {
	counts := make([]WinCount, len(sets))
	n := 0
	for k, s := range sets {
		counts[k] = WinCount{Name: s.Name, Set: k, Rows: s.Len()}
		if s.Len() > n {
			n = s.Len()
		}
	}
	for i := 0; i < n; i++ {
		for k, o := range Outcomes(sets, i) {
			switch o {
			case Won:
				counts[k].Wins++
			case Tied:
				counts[k].Ties++
			}
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Wins > counts[j].Wins
	})
	return counts
}
