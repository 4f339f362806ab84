// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 registers the SQLite driver with resultdb. Import
// it for its side effect.
package sqlite3

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"

	"github.com/groupbench/benchtools/internal/resultdb"
)

func init() {
	resultdb.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		db.Driver().(*sqlite3.SQLiteDriver).ConnectHook = func(c *sqlite3.SQLiteConn) error {
			_, err := c.Exec("PRAGMA foreign_keys = ON;", nil)
			return err
		}
		// Every connection to ":memory:" is a separate
		// database, so keep to one.
		db.SetMaxOpenConns(1)
		return nil
	})
}
