// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// WriteSQLite writes rows into a SQLite database at path, one JSON document
// per row in a records(id, doc) table — the shape a downstream search-index
// loader consumes. An existing records table is replaced, so re-runs are
// idempotent.
func WriteSQLite[T any](path string, rows []T, id func(T) string) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	statements := []string{
		`DROP TABLE IF EXISTS records`,
		`CREATE TABLE records (
			id TEXT PRIMARY KEY,
			doc TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO records (id, doc) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		doc, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshaling record %s: %w", id(row), err)
		}
		if _, err := stmt.Exec(id(row), string(doc)); err != nil {
			return fmt.Errorf("inserting record %s: %w", id(row), err)
		}
	}

	return tx.Commit()
}
