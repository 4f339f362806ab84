// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultdb archives loaded result sets and their rankings in
// a SQL database, so that a ranking can be reproduced later.
package resultdb

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"

	"github.com/groupbench/benchtools/rank"
	"github.com/groupbench/benchtools/resultfmt"
)

// DB is a high-level interface to the archive database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun     *sql.Stmt
	insertSet     *sql.Stmt
	insertRow     *sql.Stmt
	insertRanking *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Open opens a database named as driver:dsn, for example
// "sqlite3:results.db".
func Open(spec string) (*DB, error) {
	i := strings.Index(spec, ":")
	if i <= 0 {
		return nil, fmt.Errorf("database %q is not of the form driver:dsn", spec)
	}
	return OpenSQL(spec[:i], spec[i+1:])
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Created VARCHAR(64)
);
CREATE TABLE IF NOT EXISTS Sets (
	RunID BIGINT UNSIGNED,
	SetID BIGINT UNSIGNED,
	Name VARCHAR(255),
	Path VARCHAR(4096),
	PRIMARY KEY (RunID, SetID),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS SetRows (
	RunID BIGINT UNSIGNED,
	SetID BIGINT UNSIGNED,
	RowIndex BIGINT UNSIGNED,
	Content VARCHAR(4096),
	PRIMARY KEY (RunID, SetID, RowIndex),
	FOREIGN KEY (RunID, SetID) REFERENCES Sets(RunID, SetID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS Rankings (
	RunID BIGINT UNSIGNED,
	Position BIGINT UNSIGNED,
	SetID BIGINT UNSIGNED,
	Name VARCHAR(255),
	Total DOUBLE,
	Wins BIGINT,
	Ties BIGINT,
	PRIMARY KEY (RunID, Position),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Created) VALUES (?)")
	if err != nil {
		return err
	}
	db.insertSet, err = db.sql.Prepare("INSERT INTO Sets(RunID, SetID, Name, Path) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertRow, err = db.sql.Prepare("INSERT INTO SetRows(RunID, SetID, RowIndex, Content) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertRanking, err = db.sql.Prepare("INSERT INTO Rankings(RunID, Position, SetID, Name, Total, Wins, Ties) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// A Run is an archived invocation: the sets that were ranked together
// and, optionally, the resulting report. Nothing written to a Run is
// visible until Commit.
type Run struct {
	// ID is the numeric primary key of the run.
	ID int64

	// setid is the index of the next set to insert.
	setid int64
	// tx is the transaction used by the run.
	tx  *sql.Tx
	db  *DB
	ctx context.Context
}

// NewRun starts a new run.
func (db *DB) NewRun(ctx context.Context) (*Run, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, now().UTC().Format(time.RFC3339))
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	return &Run{ID: id, tx: tx, db: db, ctx: ctx}, nil
}

// InsertSet stores set and its rows in the run.
func (r *Run) InsertSet(set *resultfmt.Set) error {
	if _, err := r.tx.StmtContext(r.ctx, r.db.insertSet).ExecContext(r.ctx, r.ID, r.setid, set.Name, set.Path); err != nil {
		return err
	}
	stmt := r.tx.StmtContext(r.ctx, r.db.insertRow)
	for i, row := range set.Rows {
		if _, err := stmt.ExecContext(r.ctx, r.ID, r.setid, i, row.Format()); err != nil {
			return err
		}
	}
	r.setid++
	return nil
}

// InsertReport stores the ranking rep in the run, in order of total
// time. The report's set indexes must match the order in which the
// sets were inserted.
func (r *Run) InsertReport(rep *rank.Report) error {
	stmt := r.tx.StmtContext(r.ctx, r.db.insertRanking)
	for i, t := range rep.Totals {
		c := rep.WinsOf(t.Set)
		if _, err := stmt.ExecContext(r.ctx, r.ID, i, t.Set, t.Name, t.Total, c.Wins, c.Ties); err != nil {
			return err
		}
	}
	return nil
}

// Commit makes the run visible.
func (r *Run) Commit() error {
	return r.tx.Commit()
}

// Abort discards everything written to the run.
func (r *Run) Abort() error {
	return r.tx.Rollback()
}

// A RunInfo describes an archived run.
type RunInfo struct {
	ID      int64
	Created string
	Sets    int
}

// Runs lists the archived runs, oldest first.
func (db *DB) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT r.RunID, r.Created, COUNT(s.SetID) FROM Runs r LEFT JOIN Sets s ON s.RunID = r.RunID GROUP BY r.RunID, r.Created ORDER BY r.RunID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []RunInfo
	for rows.Next() {
		var ri RunInfo
		if err := rows.Scan(&ri.ID, &ri.Created, &ri.Sets); err != nil {
			return nil, err
		}
		runs = append(runs, ri)
	}
	return runs, rows.Err()
}

// LoadRun reads back the sets of run id, in the order they were
// inserted.
func (db *DB) LoadRun(ctx context.Context, id int64) ([]*resultfmt.Set, error) {
	var n int
	if err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Runs WHERE RunID = ?", id).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("no run %d", id)
	}

	rows, err := db.sql.QueryContext(ctx, "SELECT SetID, Name, Path FROM Sets WHERE RunID = ? ORDER BY SetID", id)
	if err != nil {
		return nil, err
	}
	var sets []*resultfmt.Set
	var setIDs []int64
	for rows.Next() {
		var setID int64
		s := new(resultfmt.Set)
		if err := rows.Scan(&setID, &s.Name, &s.Path); err != nil {
			rows.Close()
			return nil, err
		}
		sets = append(sets, s)
		setIDs = append(setIDs, setID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i, s := range sets {
		if err := db.loadRows(ctx, id, setIDs[i], s); err != nil {
			return nil, err
		}
	}
	return sets, nil
}

func (db *DB) loadRows(ctx context.Context, runID, setID int64, s *resultfmt.Set) error {
	rows, err := db.sql.QueryContext(ctx, "SELECT Content FROM SetRows WHERE RunID = ? AND SetID = ? ORDER BY RowIndex", runID, setID)
	if err != nil {
		return err
	}
	defer rows.Close()
	var content strings.Builder
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return err
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return err
	}
	loaded, err := resultfmt.ReadSet(resultfmt.NewReader(strings.NewReader(content.String()), s.Name, resultfmt.Float), s.Name)
	if err != nil {
		return err
	}
	s.Rows = loaded.Rows
	return nil
}

// Report reads back the ranking stored with run id, in order of
// total time. It returns nil totals if the run has no ranking.
func (db *DB) Report(ctx context.Context, id int64) ([]rank.Total, []rank.WinCount, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT SetID, Name, Total, Wins, Ties FROM Rankings WHERE RunID = ? ORDER BY Position", id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	var totals []rank.Total
	var wins []rank.WinCount
	for rows.Next() {
		var t rank.Total
		var c rank.WinCount
		if err := rows.Scan(&t.Set, &t.Name, &t.Total, &c.Wins, &c.Ties); err != nil {
			return nil, nil, err
		}
		c.Name, c.Set = t.Name, t.Set
		totals = append(totals, t)
		wins = append(wins, c)
	}
	return totals, wins, rows.Err()
}

// CountRuns returns the number of archived runs.
func (db *DB) CountRuns() (int, error) {
	var n int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Runs").Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertRun, db.insertSet, db.insertRow, db.insertRanking} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
