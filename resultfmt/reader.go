// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads rows from a result file.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int

	// Mode selects integer or floating-point parsing.
	Mode Mode

	// Columns, if non-zero, is the number of columns every row
	// must have. If zero, every row must have as many columns as
	// the first row of the file.
	Columns int

	width int
	row   Row
}

// A SyntaxError represents a malformed row on a particular line of a
// result file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader to parse result rows from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, mode Mode) *Reader {
	reader := &Reader{Mode: mode}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. It
// keeps Mode and Columns.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.err = nil
	r.line = 0
	r.width = r.Columns
	r.row = r.row[:0]
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row. If
// Scan reaches EOF, a malformed row, or an I/O error, it returns false,
// in which case the caller should use the Err method to check for
// errors.
//
// Blank lines are skipped.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		fields := strings.Fields(r.s.Text())
		if len(fields) == 0 {
			continue
		}
		if err := r.parseRow(fields); err != nil {
			r.err = err
			return false
		}
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

func (r *Reader) parseRow(fields []string) error {
	if r.width == 0 {
		r.width = len(fields)
	} else if len(fields) != r.width {
		return r.newSyntaxError(fmt.Sprintf("have %d columns, want %d", len(fields), r.width))
	}
	r.row = r.row[:0]
	for i, f := range fields {
		v, err := r.parseField(f)
		if err != nil {
			return r.newSyntaxError(fmt.Sprintf("column %d: %v", i+1, err))
		}
		r.row = append(r.row, v)
	}
	return nil
}

func (r *Reader) parseField(f string) (float64, error) {
	if r.Mode == Int {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, err.(*strconv.NumError).Err
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// Times must be comparable, so NaN and infinities are rejected.
var errNotFinite = errors.New("value is not a finite number")

// Row returns the row that was just read by Scan.
//
// The caller should not retain the Row, as it will be overwritten by
// the next call to Scan. Use Row.Clone or ReadSet to keep rows.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first malformed row or non-EOF I/O error that was
// encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Clone returns a copy of row.
func (r Row) Clone() Row {
	return append(Row(nil), r...)
}

// ReadSet reads all of the rows from r into a new Set called name.
// It returns the first error encountered and no set in that case.
func ReadSet(r *Reader, name string) (*Set, error) {
	set := &Set{Name: name}
	for r.Scan() {
		set.Rows = append(set.Rows, r.Row().Clone())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
