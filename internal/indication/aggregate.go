// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package indication

import (
	"strings"

	"github.com/medgraph/drugindex/pkg/types"
)

// SplitSet marks reference sources whose ref_id field packs several
// comma-separated ids into one value. The split-then-explode step runs only
// for marked sources, so the workaround stays scoped to the upstream data
// quirk that requires it.
type SplitSet map[string]bool

// NewSplitSet builds a SplitSet from a list of source names.
func NewSplitSet(sources []string) SplitSet {
	s := make(SplitSet, len(sources))
	for _, src := range sources {
		s[src] = true
	}
	return s
}

// Aggregated is one (drug, disease) row out of the reference aggregator:
// the maximum clinical phase across all raw rows for the pair, and one
// reference bundle per source seen.
type Aggregated struct {
	DrugID     string
	DiseaseID  string
	MaxPhase   float64
	References []types.ReferenceBundle
}

type sourceKey struct {
	drug, disease, source string
}

type pairKey struct {
	drug, disease string
}

type sourceGroup struct {
	maxPhase float64
	ids      []string
	urls     []string
}

// AggregateReferences expands each row's reference list into individual
// entries, drops rows without a disease id, splits comma-packed ids for
// sources in split, and reduces to one Aggregated row per (drug, disease).
// IDs and URLs inside one bundle stay positionally aligned in post-split
// arrival order. Dropped returns the number of unlinkable rows discarded.
func AggregateReferences(rows []types.RawIndication, split SplitSet) (out []Aggregated, dropped int) {
	groups := make(map[sourceKey]*sourceGroup)
	var groupOrder []sourceKey

	for _, row := range rows {
		if row.DiseaseID == "" {
			dropped++
			continue
		}
		disease := NormalizeOntologyID(row.DiseaseID)

		// Rows with no references still contribute their phase to the pair.
		refs := row.References
		if len(refs) == 0 {
			refs = []types.IndicationRef{{}}
		}

		for _, ref := range refs {
			key := sourceKey{row.MoleculeID, disease, ref.RefType}
			g, ok := groups[key]
			if !ok {
				g = &sourceGroup{maxPhase: row.MaxPhase}
				groups[key] = g
				groupOrder = append(groupOrder, key)
			}
			if row.MaxPhase > g.maxPhase {
				g.maxPhase = row.MaxPhase
			}
			if ref.RefID == "" && ref.RefType == "" {
				continue
			}
			for _, id := range splitRefID(ref, split) {
				g.ids = append(g.ids, id)
				g.urls = append(g.urls, ref.RefURL)
			}
		}
	}

	pairs := make(map[pairKey]*Aggregated)
	var pairOrder []pairKey

	for _, key := range groupOrder {
		g := groups[key]
		pk := pairKey{key.drug, key.disease}
		agg, ok := pairs[pk]
		if !ok {
			agg = &Aggregated{DrugID: key.drug, DiseaseID: key.disease, MaxPhase: g.maxPhase}
			pairs[pk] = agg
			pairOrder = append(pairOrder, pk)
		}
		if g.maxPhase > agg.MaxPhase {
			agg.MaxPhase = g.maxPhase
		}
		if key.source != "" || len(g.ids) > 0 {
			agg.References = append(agg.References, types.ReferenceBundle{
				Source: key.source,
				IDs:    g.ids,
				URLs:   g.urls,
			})
		}
	}

	out = make([]Aggregated, 0, len(pairOrder))
	for _, pk := range pairOrder {
		out = append(out, *pairs[pk])
	}
	return out, dropped
}

// splitRefID returns the individual ids of one reference entry. Sources in
// split have their ref_id field cut on commas, each id inheriting the
// entry's type and url.
func splitRefID(ref types.IndicationRef, split SplitSet) []string {
	if !split[ref.RefType] || !strings.Contains(ref.RefID, ",") {
		return []string{ref.RefID}
	}
	parts := strings.Split(ref.RefID, ",")
	ids := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
