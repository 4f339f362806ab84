// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchrank ranks competing benchmark result files.
//
// Usage:
//
//	benchrank [flags] file...
//
// Each input file holds one benchmark row per line: whitespace-separated
// integers whose last column is the elapsed time, such as
//
//	64 12 11 3 1520
//
// for group size, group id, number of classes, degree and time.
// An input may be given as label=path to rank it under a different
// name.
//
// Benchrank prints two rankings. The first lists the files by total
// elapsed time, fastest first. The second lists the files by number of
// wins, most first. Rows are matched up by position: a file wins row i
// if its time at row i is strictly lower than that of every other file
// that has a row i. Files shorter than i rows are left out of the
// comparison at row i only. When several files share the lowest time
// at a row, nobody wins it and each of them is credited with a tie.
//
// A missing or malformed input file is a fatal error.
//
// The -format flag selects the output format: text (the default), csv,
// html, latex, or raw. The raw format prints each ranking as a single
// list of (name, value) pairs.
//
// The -summary flag adds a table of descriptive statistics of each
// file's time column.
//
// The -db flag archives the inputs and the ranking in a database given
// as driver:dsn, where driver is sqlite3 or mysql, for example
//
//	benchrank -db sqlite3:results.db fast.txt serre.txt
//	benchrank -db 'mysql:user:pw@cloudsql(project:region:instance)/bench' fast.txt serre.txt
//
// With -db, the -list flag lists the archived runs and -replay ID ranks
// the sets of an archived run instead of reading input files.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"

	"github.com/groupbench/benchtools/internal/resultdb"
	_ "github.com/groupbench/benchtools/internal/resultdb/sqlite3"
	"github.com/groupbench/benchtools/internal/texttab"
	"github.com/groupbench/benchtools/rank"
	"github.com/groupbench/benchtools/resultfmt"
	"github.com/groupbench/benchtools/resultstat"
)

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("benchrank: ")
	log.SetFlags(0)
	if err := benchrank(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchrank(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchrank", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: benchrank [flags] file...\n")
		flags.PrintDefaults()
	}
	var (
		flagFormat  = flags.String("format", "text", "print results in `format`:\n  text - aligned text tables\n  csv  - comma-separated values\n  html - HTML table\n  latex - LaTeX tabular\n  raw  - lists of (name, value) pairs")
		flagFloat   = flags.Bool("float", false, "accept floating-point fields instead of only integers")
		flagSummary = flags.Bool("summary", false, "also print statistics of each file's time column")
		flagDB      = flags.String("db", "", "archive runs in database `driver:dsn`")
		flagReplay  = flags.Int64("replay", 0, "rank archived run `id` instead of input files (requires -db)")
		flagList    = flags.Bool("list", false, "list archived runs (requires -db)")
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
			fmt.Fprintf(wErr, "benchrank: "+format+"\n", args...)
		}
	}

	format, ok := formats[*flagFormat]
	if !ok {
		fmt.Fprintf(wErr, "unknown -format %q\n", *flagFormat)
		flags.Usage()
		return errUsage
	}
	replaying := *flagReplay != 0
	if (replaying || *flagList) && *flagDB == "" {
		fmt.Fprintf(wErr, "-replay and -list require -db\n")
		flags.Usage()
		return errUsage
	}
	if !replaying && !*flagList && flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}

	ctx := context.Background()
	var db *resultdb.DB
	if *flagDB != "" {
		var err error
		db, err = resultdb.Open(*flagDB)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
	}

	if *flagList {
		return listRuns(ctx, w, db)
	}

	var sets []*resultfmt.Set
	if replaying {
		var err error
		sets, err = db.LoadRun(ctx, *flagReplay)
		if err != nil {
			return fmt.Errorf("replaying run %d: %w", *flagReplay, err)
		}
		logf("loaded %d sets from run %d", len(sets), *flagReplay)
	} else {
		files := resultfmt.Files{Paths: flags.Args(), AllowStdin: true, AllowLabels: true}
		if *flagFloat {
			files.Mode = resultfmt.Float
		}
		var err error
		sets, err = files.Load()
		if err != nil {
			return err
		}
		for _, s := range sets {
			logf("%s: %d rows", s.Path, s.Len())
		}
	}

	report := rank.Compute(sets)

	var buf bytes.Buffer
	if err := format(&buf, report); err != nil {
		return err
	}
	if *flagSummary {
		buf.WriteString("\n")
		if err := resultstat.FormatText(&buf, resultstat.SummarizeAll(sets, -1)); err != nil {
			return err
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if db != nil && !replaying {
		id, err := archive(ctx, db, sets, report)
		if err != nil {
			return fmt.Errorf("archiving: %w", err)
		}
		logf("archived as run %d", id)
	}
	return nil
}

var formats = map[string]func(*bytes.Buffer, *rank.Report) error{
	"text":  func(b *bytes.Buffer, r *rank.Report) error { return r.FormatText(b) },
	"csv":   func(b *bytes.Buffer, r *rank.Report) error { return r.FormatCSV(b) },
	"html":  func(b *bytes.Buffer, r *rank.Report) error { return r.FormatHTML(b) },
	"latex": func(b *bytes.Buffer, r *rank.Report) error { return r.LaTeX().Format(b) },
	"raw":   func(b *bytes.Buffer, r *rank.Report) error { return r.FormatRaw(b) },
}

// archive stores sets and report as a new run and returns its ID.
func archive(ctx context.Context, db *resultdb.DB, sets []*resultfmt.Set, report *rank.Report) (int64, error) {
	run, err := db.NewRun(ctx)
	if err != nil {
		return 0, err
	}
	for _, s := range sets {
		if err := run.InsertSet(s); err != nil {
			run.Abort()
			return 0, err
		}
	}
	if err := run.InsertReport(report); err != nil {
		run.Abort()
		return 0, err
	}
	return run.ID, run.Commit()
}

func listRuns(ctx context.Context, w io.Writer, db *resultdb.DB) error {
	runs, err := db.Runs(ctx)
	if err != nil {
		return err
	}
	tab := new(texttab.Table)
	tab.SetAlign(0, texttab.Right)
	tab.SetAlign(2, texttab.Right)
	tab.Row().Cells("run", "created", "sets")
	for _, r := range runs {
		tab.Row().Cells(fmt.Sprint(r.ID), r.Created, fmt.Sprint(r.Sets))
	}
	return tab.Format(w)
}
