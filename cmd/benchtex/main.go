// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchtex converts benchmark result files to LaTeX tables.
//
// Usage:
//
//	benchtex [flags] file...
//
// For each input file, benchtex writes a tabular environment with one
// table row per result row to <file>.tex, in the directory given by -o
// or in the Cloud Storage location gs://bucket/prefix. With -o -, the
// tables are printed to standard output instead.
//
// The header row names the columns of the -layout (see benchplot), or
// the comma-separated names given by -header.
//
// Input files that do not exist are skipped. A malformed input file is
// a fatal error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/groupbench/benchtools/benchplot"
	"github.com/groupbench/benchtools/internal/fs/target"
	"github.com/groupbench/benchtools/latex"
	"github.com/groupbench/benchtools/resultfmt"
)

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("benchtex: ")
	log.SetFlags(0)
	if err := benchtex(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchtex(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchtex", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchtex [flags] file...\n")
		flags.PrintDefaults()
	}
	var (
		flagLayout  = flags.String("layout", "size", "input column `layout`: "+strings.Join(benchplot.LayoutNames(), ", "))
		flagHeader  = flags.String("header", "", "comma-separated column `names`, overriding -layout")
		flagAlign   = flags.String("align", "", "tabular column `spec` (default centered columns with rules)")
		flagOut     = flags.String("o", ".", "write tables to `dir`, gs://bucket/prefix, or - for standard output")
		flagCreds   = flags.String("credentials", "", "Cloud Storage service account key `file`")
		flagVerbose = flags.Bool("v", false, "print progress messages")
	)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	logf := func(format string, args ...interface{}) {
		if *flagVerbose {
			fmt.Fprintf(wErr, "benchtex: "+format+"\n", args...)
		}
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}
	var header []string
	if *flagHeader != "" {
		header = strings.Split(*flagHeader, ",")
	} else if layout := benchplot.Layouts[*flagLayout]; layout != nil {
		header = layout.Columns
	} else {
		fmt.Fprintf(wErr, "unknown -layout %q\n", *flagLayout)
		flags.Usage()
		return errUsage
	}

	files := resultfmt.Files{
		Paths:       flags.Args(),
		AllowLabels: true,
		SkipMissing: true,
		Mode:        resultfmt.Float,
		Columns:     len(header),
	}
	sets, err := files.Load()
	if err != nil {
		return err
	}
	for _, path := range files.Skipped() {
		logf("skipping %s: file not found", path)
	}

	if *flagOut == "-" {
		for i, set := range sets {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%% %s\n", set.Name)
			t := latex.FromSet(set, header)
			t.Align = *flagAlign
			if err := t.Format(w); err != nil {
				return err
			}
		}
		return nil
	}

	if len(sets) == 0 {
		return nil
	}
	fsys, err := target.Open(ctx, *flagOut, *flagCreds)
	if err != nil {
		return err
	}
	used := make(map[string]bool)
	for _, set := range sets {
		name := texName(set.Name, used)
		t := latex.FromSet(set, header)
		t.Align = *flagAlign

		fw, err := fsys.NewWriter(ctx, name, map[string]string{"source": set.Name})
		if err != nil {
			return err
		}
		if err := t.Format(fw); err != nil {
			fw.CloseWithError(err)
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := fw.Close(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logf("%s: %d rows", name, set.Len())
		fmt.Fprintln(w, name)
	}
	return nil
}

// texName returns the output name for the set called name: its base
// name with a .tex extension, suffixed with -2, -3, ... if an earlier
// set already claimed that name.
func texName(name string, used map[string]bool) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	out := base + ".tex"
	for n := 2; used[out]; n++ {
		out = fmt.Sprintf("%s-%d.tex", base, n)
	}
	used[out] = true
	return out
}
