// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNewWriter(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")
	fsys := NewFS(dir)

	w, err := fsys.NewWriter(ctx, "sub/a.tex", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("\\hline\n")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "a.tex")); err == nil {
		t.Errorf("file visible before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "sub", "a.tex"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\\hline\n" {
		t.Errorf("content = %q", data)
	}
	if runtime.GOOS != "windows" {
		fi, err := os.Stat(filepath.Join(dir, "sub", "a.tex"))
		if err != nil {
			t.Fatal(err)
		}
		if perm := fi.Mode().Perm(); perm != 0644 {
			t.Errorf("mode = %v, want 0644", perm)
		}
	}

	w, err = fsys.NewWriter(ctx, "b.tex", nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("partial"))
	if err := w.CloseWithError(errors.New("abort")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "sub" {
			t.Errorf("unexpected file %s left behind", e.Name())
		}
	}
}
