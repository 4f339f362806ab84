// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"context"
	"path"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/groupbench/benchtools/internal/fs"
)

// impl is an fs.FS backed by Google Cloud Storage.
type impl struct {
	bucket *storage.BucketHandle
	prefix string
}

// NewFS constructs an FS that writes to the provided bucket, under
// prefix. Credentials are read from credentialsFile if it is not
// empty, and otherwise from the Application Default Credentials.
func NewFS(ctx context.Context, bucketName, prefix, credentialsFile string) (fs.FS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	} else {
		ts, err := google.DefaultTokenSource(ctx, storage.ScopeReadWrite)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &impl{client.Bucket(bucketName), prefix}, nil
}

// NewWriter creates a new object in GCS and assigns metadata as
// object attributes.
func (fsys *impl) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	w := fsys.bucket.Object(path.Join(fsys.prefix, name)).NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType(name)
	w.ObjectAttrs.Metadata = metadata
	return w, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	case ".pdf":
		return "application/pdf"
	case ".tex":
		return "application/x-tex"
	}
	return "application/octet-stream"
}
