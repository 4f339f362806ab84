// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReader(t *testing.T) {
	for _, test := range []struct {
		name    string
		mode    Mode
		columns int
		input   string
		want    []Row
		wantErr string
	}{
		{
			name:  "basic",
			input: "64 1 11 3 1520\n64 2 13 3 1490\n",
			want:  []Row{{64, 1, 11, 3, 1520}, {64, 2, 13, 3, 1490}},
		},
		{
			name:  "no trailing newline",
			input: "1 2\n3 4",
			want:  []Row{{1, 2}, {3, 4}},
		},
		{
			name:  "blank lines and tabs",
			input: "\n1\t2\n   \n3  4\n\n",
			want:  []Row{{1, 2}, {3, 4}},
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:    "float in int mode",
			input:   "1 2.5\n",
			wantErr: "test:1: column 2: invalid syntax",
		},
		{
			name:  "float mode",
			mode:  Float,
			input: "1 2.5\n1e3 -4\n",
			want:  []Row{{1, 2.5}, {1000, -4}},
		},
		{
			name:    "non-numeric",
			mode:    Float,
			input:   "1 2\n3 abc\n",
			wantErr: "test:2: column 2: invalid syntax",
		},
		{
			name:    "NaN",
			mode:    Float,
			input:   "1 2\n3 NaN\n",
			wantErr: "test:2: column 2: value is not a finite number",
		},
		{
			name:    "infinity",
			mode:    Float,
			input:   "-Inf 2\n",
			wantErr: "test:1: column 1: value is not a finite number",
		},
		{
			name:    "float overflow",
			mode:    Float,
			input:   "1 1e400\n",
			wantErr: "test:1: column 2: value out of range",
		},
		{
			name:    "ragged",
			input:   "1 2 3\n4 5\n",
			wantErr: "test:2: have 2 columns, want 3",
		},
		{
			name:    "fixed columns",
			columns: 3,
			input:   "1 2\n",
			wantErr: "test:1: have 2 columns, want 3",
		},
		{
			name:    "overflow",
			input:   "99999999999999999999\n",
			wantErr: "test:1: column 1: value out of range",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(test.input), "test", test.mode)
			r.Columns = test.columns
			r.Reset(strings.NewReader(test.input), "test")
			set, err := ReadSet(r, "test")
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("got success, want error %s", test.wantErr)
				}
				if err.Error() != test.wantErr {
					t.Fatalf("got error %s, want %s", err, test.wantErr)
				}
				if _, ok := err.(*SyntaxError); !ok {
					t.Errorf("got error type %T, want *SyntaxError", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, set.Rows); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderReuse(t *testing.T) {
	r := NewReader(strings.NewReader("1 2 3\n"), "a", Int)
	if _, err := ReadSet(r, "a"); err != nil {
		t.Fatal(err)
	}
	// The column count of the previous file must not leak into
	// the next one.
	r.Reset(strings.NewReader("4 5\n"), "b")
	set, err := ReadSet(r, "b")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Row{{4, 5}}, set.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	s := &Set{Name: "s", Rows: []Row{{1, 10}, {2, 20}, {3, 30}}}
	if got, ok := s.Time(1); !ok || got != 20 {
		t.Errorf("Time(1) = %v, %v, want 20, true", got, ok)
	}
	if _, ok := s.Time(3); ok {
		t.Errorf("Time(3) reported a row")
	}
	if diff := cmp.Diff([]float64{10, 20, 30}, s.Column(-1)); diff != "" {
		t.Errorf("Column(-1) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, s.Column(0)); diff != "" {
		t.Errorf("Column(0) mismatch (-want +got):\n%s", diff)
	}
	if got := s.Width(); got != 2 {
		t.Errorf("Width() = %d, want 2", got)
	}
	if got := (Row{1, 2.5, 30}).Format(); got != "1 2.5 30" {
		t.Errorf("Format() = %q, want %q", got, "1 2.5 30")
	}
}
