// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFiles(t *testing.T) {
	// Switch to testdata/files directory.
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldDir)
	if err := os.Chdir("testdata/files"); err != nil {
		t.Fatal(err)
	}

	check := func(f *Files, want ...string) {
		t.Helper()
		sets, err := f.Load()
		wantErr := ""
		if len(want) > 0 && strings.HasPrefix(want[len(want)-1], "err ") {
			wantErr = want[len(want)-1][len("err "):]
			want = want[:len(want)-1]
		}
		if wantErr != "" {
			if err == nil {
				t.Errorf("got success, want error %s", wantErr)
			} else if err.Error() != wantErr {
				t.Errorf("got error %s, want error %s", err, wantErr)
			}
			return
		}
		if err != nil {
			t.Errorf("got error %s", err)
			return
		}
		var got []string
		for _, s := range sets {
			got = append(got, s.Name+" "+s.Path)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("sets mismatch (-want +got):\n%s", diff)
		}
	}

	// Basic tests.
	check(&Files{Paths: []string{"a", "b"}}, "a a", "b b")
	check(
		&Files{Paths: []string{"a", "b", "c"}},
		"err open c: "+syscall.ENOENT.Error(),
	)
	check(&Files{Paths: []string{"a", "bad"}}, "err bad:1: column 3: invalid syntax")

	// Ambiguous paths.
	check(&Files{Paths: []string{"a", "b", "a"}}, "a#0 a", "b b", "a#1 a")

	// Labels.
	check(&Files{Paths: []string{"fast=a", "b"}, AllowLabels: true}, "fast a", "b b")
	check(&Files{Paths: []string{"x=a", "x=a"}, AllowLabels: true}, "x a", "x a")

	// Missing files are skipped on request.
	f := &Files{Paths: []string{"c", "a", "d", "empty"}, SkipMissing: true}
	check(f, "a a", "empty empty")
	if diff := cmp.Diff([]string{"c", "d"}, f.Skipped()); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	set, err := Load("testdata/files/a", Int)
	if err != nil {
		t.Fatal(err)
	}
	want := &Set{Name: "testdata/files/a", Path: "testdata/files/a", Rows: []Row{{1, 1, 1, 1, 10}, {1, 1, 1, 1, 20}}}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("set mismatch (-want +got):\n%s", diff)
	}

	set, err = Load("testdata/files/empty", Int)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 0 {
		t.Errorf("empty file has %d rows", set.Len())
	}

	if _, err := Load("testdata/files/missing", Int); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}
