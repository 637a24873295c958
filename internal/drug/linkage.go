// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package drug

import (
	"sort"

	"github.com/medgraph/drugindex/pkg/types"
)

// AggregateLinkage reduces the evidence dataset to the distinct target and
// disease ids each drug is linked to. Evidence rows without a drug id carry
// no drug linkage and are skipped.
func AggregateLinkage(rows []types.RawEvidence) (targets, diseases map[string]*types.LinkedEntitySet) {
	targetSets := make(map[string]map[string]bool)
	diseaseSets := make(map[string]map[string]bool)

	for _, row := range rows {
		if row.DrugID == "" {
			continue
		}
		if row.TargetID != "" {
			addLinked(targetSets, row.DrugID, row.TargetID)
		}
		if row.DiseaseID != "" {
			addLinked(diseaseSets, row.DrugID, row.DiseaseID)
		}
	}

	return collectLinked(targetSets), collectLinked(diseaseSets)
}

func addLinked(sets map[string]map[string]bool, drug, id string) {
	if sets[drug] == nil {
		sets[drug] = make(map[string]bool)
	}
	sets[drug][id] = true
}

// collectLinked freezes the per-drug id sets into sorted LinkedEntitySets.
func collectLinked(sets map[string]map[string]bool) map[string]*types.LinkedEntitySet {
	out := make(map[string]*types.LinkedEntitySet, len(sets))
	for drug, ids := range sets {
		rows := make([]string, 0, len(ids))
		for id := range ids {
			rows = append(rows, id)
		}
		sort.Strings(rows)
		out[drug] = &types.LinkedEntitySet{Count: len(rows), Rows: rows}
	}
	return out
}
