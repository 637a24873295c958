// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drugs.db")
	rows := []testRow{{"CHEMBL1", 4}, {"CHEMBL2", 2}}

	require.NoError(t, WriteSQLite(path, rows, func(r testRow) string { return r.ID }))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM records`).Scan(&count))
	assert.Equal(t, 2, count)

	var doc string
	require.NoError(t, db.QueryRow(`SELECT doc FROM records WHERE id = ?`, "CHEMBL1").Scan(&doc))
	var got testRow
	require.NoError(t, json.Unmarshal([]byte(doc), &got))
	assert.Equal(t, testRow{"CHEMBL1", 4}, got)
}

func TestWriteSQLiteReplacesExistingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drugs.db")
	id := func(r testRow) string { return r.ID }

	require.NoError(t, WriteSQLite(path, []testRow{{"a", 1}, {"b", 2}}, id))
	require.NoError(t, WriteSQLite(path, []testRow{{"c", 3}}, id))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM records`).Scan(&count))
	assert.Equal(t, 1, count)
}
