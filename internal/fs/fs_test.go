// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMemFS(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	w, err := fs.NewWriter(ctx, "fig01.png", map[string]string{"source": "a.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatal(err)
	}
	if got := fs.Files(); len(got) != 0 {
		t.Errorf("file visible before Close: %v", got)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err == nil {
		t.Errorf("second Close succeeded")
	}

	w, err = fs.NewWriter(ctx, "aborted.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("partial"))
	w.CloseWithError(errors.New("render failed"))

	if got, want := fs.Files(), []string{"fig01.png"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	data, meta, ok := fs.Content("fig01.png")
	if !ok || string(data) != "data" || meta["source"] != "a.txt" {
		t.Errorf("Content = %q, %v, %v", data, meta, ok)
	}
}
