// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package target

import (
	"context"
	"testing"
)

func TestOpenLocal(t *testing.T) {
	for _, dest := range []string{"", ".", t.TempDir()} {
		fsys, err := Open(context.Background(), dest, "")
		if err != nil {
			t.Errorf("Open(%q): %v", dest, err)
		}
		if fsys == nil {
			t.Errorf("Open(%q) returned nil FS", dest)
		}
	}
}

func TestOpenBadBucket(t *testing.T) {
	if _, err := Open(context.Background(), "gs:///charts", ""); err == nil {
		t.Errorf("Open with empty bucket succeeded")
	}
}
