// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads and writes the named tabular datasets the pipeline
// consumes and produces. A YAML manifest maps dataset names to on-disk
// locations and formats, so stages refer to datasets by name only.
package dataset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Format identifies the on-disk encoding of a dataset.
type Format string

const (
	// FormatJSONL is one JSON object per line.
	FormatJSONL Format = "jsonl"

	// FormatTSV is tab-separated, two columns, no header. Read-only.
	FormatTSV Format = "tsv"

	// FormatSQLite is a SQLite database holding one JSON document per row.
	// Write-only sink for assembled output.
	FormatSQLite Format = "sqlite"
)

// Spec locates one named dataset.
type Spec struct {
	Path   string `yaml:"path"`
	Format Format `yaml:"format"`
}

// Manifest is the on-disk registry of named datasets for one pipeline run.
type Manifest struct {
	Datasets map[string]Spec `yaml:"datasets"`
}

// ReadManifest loads a dataset manifest from a YAML file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Lookup returns the spec for name, or an error naming the missing dataset.
func (m *Manifest) Lookup(name string) (Spec, error) {
	spec, ok := m.Datasets[name]
	if !ok {
		return Spec{}, fmt.Errorf("dataset %q not in manifest", name)
	}
	return spec, nil
}
