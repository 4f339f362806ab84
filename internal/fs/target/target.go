// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package target opens the output sink named on a command line.
package target

import (
	"context"
	"fmt"
	"strings"

	"github.com/groupbench/benchtools/internal/fs"
	"github.com/groupbench/benchtools/internal/fs/gcs"
	"github.com/groupbench/benchtools/internal/fs/local"
)

// Open returns the FS named by dest. A dest of the form
// gs://bucket/prefix selects a Cloud Storage bucket; anything else is
// a local directory, "." if dest is empty.
func Open(ctx context.Context, dest, credentialsFile string) (fs.FS, error) {
	if rest, ok := cutPrefix(dest, "gs://"); ok {
		bucket, prefix := rest, ""
		if i := strings.Index(rest, "/"); i >= 0 {
			bucket, prefix = rest[:i], rest[i+1:]
		}
		if bucket == "" {
			return nil, fmt.Errorf("missing bucket name in %q", dest)
		}
		return gcs.NewFS(ctx, bucket, prefix, credentialsFile)
	}
	if dest == "" {
		dest = "."
	}
	return local.NewFS(dest), nil
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
