// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxLineBytes bounds a single JSONL record; assembled drug rows with large
// indication sets stay well under this.
const maxLineBytes = 4 << 20

// ReadJSONL decodes a one-object-per-line JSON file into a slice of T.
// Blank lines are skipped; a malformed line aborts the read with its line
// number.
func ReadJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var rows []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row T
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", path, lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// WriteJSONL writes rows as one JSON object per line, through a temporary
// file renamed on success so a failed run never leaves a partial dataset.
func WriteJSONL[T any](path string, rows []T) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dataset-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	var writeErr error
	for _, row := range rows {
		if writeErr = enc.Encode(row); writeErr != nil {
			break
		}
	}
	if writeErr == nil {
		writeErr = w.Flush()
	}
	closeErr := tmp.Close()

	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing dataset: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadTSVPairs parses a headerless two-column tab-separated file into a map
// from the first column to the second. Later rows win on duplicate keys.
func ReadTSVPairs(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 2

	pairs := make(map[string]string)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, rec := range records {
		pairs[rec[0]] = rec[1]
	}
	return pairs, nil
}

// Write persists rows to the location and format named by spec. The id
// function supplies the primary key for keyed sinks.
func Write[T any](spec Spec, rows []T, id func(T) string) error {
	switch spec.Format {
	case FormatJSONL:
		return WriteJSONL(spec.Path, rows)
	case FormatSQLite:
		return WriteSQLite(spec.Path, rows, id)
	default:
		return fmt.Errorf("format %q is not writable", spec.Format)
	}
}
