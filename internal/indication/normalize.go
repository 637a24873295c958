// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package indication reshapes raw drug-indication rows into per-drug
// indication sets: reference aggregation by source, clinical-phase
// reduction, and disease-dictionary enrichment.
package indication

import "strings"

// NormalizeOntologyID rewrites an ontology identifier from PREFIX:NUMBER to
// PREFIX_NUMBER form, the convention the disease dictionary keys use. Every
// colon is replaced; an id without one passes through unchanged.
func NormalizeOntologyID(id string) string {
	return strings.ReplaceAll(id, ":", "_")
}
