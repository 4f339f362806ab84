// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the fs.FS interface on a local directory.
package local

import (
	"context"
	"os"
	"path/filepath"

	"github.com/groupbench/benchtools/internal/fs"
)

// impl is an fs.FS backed by a directory.
type impl struct {
	dir string
}

// NewFS constructs an FS that writes to the provided directory. The
// directory is created when the first file is written.
// Metadata is not stored.
func NewFS(dir string) fs.FS {
	return &impl{dir}
}

// NewWriter creates a file in a temporary location. The file appears
// under its final name, readable by everyone, only when the Writer is
// closed without error. Metadata is ignored.
func (fsys *impl) NewWriter(_ context.Context, name string, _ map[string]string) (fs.Writer, error) {
	path := filepath.Join(fsys.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	return &wrapper{f, path}, nil
}

type wrapper struct {
	*os.File
	path string
}

// fileMode is the mode of finished files. Temporary files are
// created 0600.
const fileMode = 0644

// Close renames the temporary file into place.
func (w *wrapper) Close() error {
	if err := w.File.Chmod(fileMode); err != nil {
		w.File.Close()
		os.Remove(w.File.Name())
		return err
	}
	if err := w.File.Close(); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	if err := os.Rename(w.File.Name(), w.path); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	return nil
}

// CloseWithError closes the file and removes it.
func (w *wrapper) CloseWithError(error) error {
	err := w.File.Close()
	os.Remove(w.File.Name())
	return err
}
