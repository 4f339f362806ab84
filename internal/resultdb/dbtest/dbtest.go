// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dbtest provides throwaway archive databases for tests.
//
// By default every database is a private in-memory SQLite database.
// With -cloud, tests run against a fresh MySQL database created on the
// Cloud SQL instance named by -cloudsql and dropped when the test ends.
package dbtest

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"

	"github.com/groupbench/benchtools/internal/resultdb"
	_ "github.com/groupbench/benchtools/internal/resultdb/sqlite3"
)

var (
	cloud    = flag.Bool("cloud", false, "run archive tests on Cloud SQL instead of in-memory SQLite")
	cloudsql = flag.String("cloudsql", "", "Cloud SQL `instance` for -cloud, as project:region:name")
)

// cloudDSN creates a uniquely named MySQL database on the -cloudsql
// instance and returns its DSN. The database is dropped at cleanup.
func cloudDSN(t *testing.T) string {
	t.Helper()
	if *cloudsql == "" {
		t.Fatal("-cloud requires -cloudsql")
	}
	var id [4]byte
	if _, err := rand.Read(id[:]); err != nil {
		t.Fatal(err)
	}
	name := "benchtools_" + hex.EncodeToString(id[:])
	server := fmt.Sprintf("root:@cloudsql(%s)/", *cloudsql)

	admin, err := sql.Open("mysql", server)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := admin.Exec("CREATE DATABASE " + name); err != nil {
		admin.Close()
		t.Fatalf("creating %s: %v", name, err)
	}
	t.Cleanup(func() {
		defer admin.Close()
		if _, err := admin.Exec("DROP DATABASE " + name); err != nil {
			t.Errorf("dropping %s: %v", name, err)
		}
	})
	t.Logf("archive database %s on %s", name, *cloudsql)
	return server + name
}

// NewDB opens an empty archive database that is closed, and for
// Cloud SQL dropped, when t finishes.
func NewDB(t *testing.T) *resultdb.DB {
	t.Helper()
	driver, dsn := "sqlite3", ":memory:"
	if *cloud {
		driver, dsn = "mysql", cloudDSN(t)
	}
	db, err := resultdb.OpenSQL(driver, dsn)
	if err != nil {
		t.Fatalf("opening %s archive: %v", driver, err)
	}
	t.Cleanup(func() { db.Close() })

	if n, err := db.CountRuns(); err != nil {
		t.Fatal(err)
	} else if n != 0 {
		t.Fatalf("new archive holds %d runs, want 0", n)
	}
	return db
}
