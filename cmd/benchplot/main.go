// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws scatter charts of benchmark result files.
//
// Usage:
//
//	benchplot [flags] file...
//
// Each input file holds one benchmark row per line of
// whitespace-separated numbers. The -layout flag names the columns:
//
//	size    group size, number of classes, time taken
//	degree  degree, time taken
//	full    group size, group id, number of classes, degree, time taken
//
// Alternatively, -columns gives a comma-separated list of column names.
//
// By default benchplot draws, for each input file, every column of the
// layout against the time column. The -x and -y flags select a single
// chart instead, naming columns either by name or by 0-based index.
// With -overlay, each chart shows all input files together, one colour
// per file, instead of one chart per file.
//
// Charts are numbered in the order they are drawn and written as
// figNN-<file>-<x>-vs-<y>.<format> to the directory given by -o, or to
// a Cloud Storage bucket if -o is gs://bucket/prefix. Cloud Storage
// credentials come from the environment unless -credentials names a
// service account key file.
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
	"strings"

	"github.com/groupbench/benchtools/benchplot"
	"github.com/groupbench/benchtools/internal/fs/target"
	"github.com/groupbench/benchtools/resultfmt"
)

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := benchplotMain(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchplotMain(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchplot [flags] file...\n")
		flags.PrintDefaults()
	}
	var (
		flagLayout  = flags.String("layout", "size", "input column `layout`: "+strings.Join(benchplot.LayoutNames(), ", "))
		flagColumns = flags.String("columns", "", "comma-separated input column `names`, overriding -layout")
		flagX       = flags.String("x", "", "plot `column` on the X axis (requires -y)")
		flagY       = flags.String("y", "", "plot `column` on the Y axis (requires -x)")
		flagOverlay = flags.Bool("overlay", false, "draw all input files on each chart")
		flagFormat  = flags.String("format", "png", "output image `format`: png, svg, or pdf")
		flagOut     = flags.String("o", ".", "write charts to `dir` or gs://bucket/prefix")
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
			fmt.Fprintf(wErr, "benchplot: "+format+"\n", args...)
		}
	}
	usageErr := func(format string, args ...interface{}) error {
		fmt.Fprintf(wErr, format+"\n", args...)
		flags.Usage()
		return errUsage
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}
	format, err := benchplot.ParseFormat(*flagFormat)
	if err != nil {
		return usageErr("%v", err)
	}

	var layout *benchplot.Layout
	if *flagColumns != "" {
		layout = benchplot.NewLayout("custom", strings.Split(*flagColumns, ","))
	} else if layout = benchplot.Layouts[*flagLayout]; layout == nil {
		return usageErr("unknown -layout %q", *flagLayout)
	}

	pairs := layout.Pairs()
	if (*flagX == "") != (*flagY == "") {
		return usageErr("-x and -y must be given together")
	}
	if *flagX != "" {
		x, err := layout.Column(*flagX)
		if err != nil {
			return usageErr("-x: %v", err)
		}
		y, err := layout.Column(*flagY)
		if err != nil {
			return usageErr("-y: %v", err)
		}
		pairs = []benchplot.Pair{{X: x, Y: y}}
	}

	files := resultfmt.Files{
		Paths:       flags.Args(),
		AllowLabels: true,
		SkipMissing: true,
		Mode:        resultfmt.Float,
		Columns:     len(layout.Columns),
	}
	sets, err := files.Load()
	if err != nil {
		return err
	}
	for _, path := range files.Skipped() {
		logf("skipping %s: file not found", path)
	}
	if len(sets) == 0 {
		logf("no input files, nothing to plot")
		return nil
	}

	fsys, err := target.Open(ctx, *flagOut, *flagCreds)
	if err != nil {
		return err
	}

	var figs benchplot.Figures
	save := func(c *benchplot.Chart) error {
		name, err := c.Save(ctx, fsys, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
		return nil
	}
	if *flagOverlay {
		for _, pair := range pairs {
			c, err := benchplot.Overlay(&figs, sets, layout, pair)
			if err != nil {
				return err
			}
			if err := save(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, set := range sets {
		logf("%s: %d rows", set.Path, set.Len())
		for _, pair := range pairs {
			c, err := benchplot.Scatter(&figs, set, layout, pair)
			if err != nil {
				return err
			}
			if err := save(c); err != nil {
				return err
			}
		}
	}
	return nil
}
