// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// A Files reads result sets from a sequence of input files.
//
// Each file becomes one Set. By default the set's name is the file
// name directly from Paths, except that duplicate strings are
// disambiguated by appending "#N". If AllowLabels is true, entries in
// Paths may be of the form label=path, and the label part is used as
// the name (without any disambiguation).
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// SkipMissing makes Load skip files that do not exist instead
	// of failing. Skipped files are reported by Skipped.
	SkipMissing bool

	// Mode and Columns configure the Reader used for every file.
	Mode    Mode
	Columns int

	skipped []string
}

type input struct {
	path      string
	label     string
	isStdin   bool
	isLabeled bool
}

// inputs parses f.Paths into labeled inputs.
func (f *Files) inputs() []input {
	var inputs []input

	pathCount := make(map[string]int)
	if f.AllowStdin && len(f.Paths) == 0 {
		inputs = append(inputs, input{"-", "-", true, false})
	}
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}

		isStdin := f.AllowStdin && path == "-"
		inputs = append(inputs, input{path, label, isStdin, isLabeled})
	}

	// If the same path is given multiple times, disambiguate its
	// name. Otherwise the sets are indistinguishable in reports.
	// For overridden labels, we do exactly what the user says.
	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || pathCount[inp.path] <= 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
	return inputs
}

// Load reads every file in f.Paths, in order, and returns one Set per
// file. It stops at the first error. A file that does not exist is
// an error unless SkipMissing is set.
func (f *Files) Load() ([]*Set, error) {
	f.skipped = nil
	var sets []*Set
	var r Reader
	r.Mode, r.Columns = f.Mode, f.Columns
	for _, inp := range f.inputs() {
		file := os.Stdin
		if !inp.isStdin {
			var err error
			file, err = os.Open(inp.path)
			if err != nil {
				if f.SkipMissing && errors.Is(err, fs.ErrNotExist) {
					f.skipped = append(f.skipped, inp.path)
					continue
				}
				return nil, err
			}
		}
		r.Reset(file, inp.path)
		set, err := ReadSet(&r, inp.label)
		if !inp.isStdin {
			file.Close()
		}
		if err != nil {
			return nil, err
		}
		set.Path = inp.path
		sets = append(sets, set)
	}
	return sets, nil
}

// Skipped returns the paths the last call to Load skipped because
// they did not exist.
func (f *Files) Skipped() []string {
	return f.skipped
}

// Load reads a single result file. A missing file is reported as an
// error that satisfies errors.Is(err, fs.ErrNotExist).
func Load(path string, mode Mode) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	set, err := ReadSet(NewReader(file, path, mode), path)
	if err != nil {
		return nil, err
	}
	set.Path = path
	return set, nil
}
