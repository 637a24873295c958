// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package drug assembles the denormalized drug records: mechanism and
// linkage aggregation per drug, the molecule joins, the drug qualification
// filter, and the derived description.
package drug

import (
	"sort"

	"github.com/medgraph/drugindex/pkg/types"
)

// TargetIndex is an immutable lookup of ChEMBL target metadata by target id.
type TargetIndex map[string]types.RawTarget

// NewTargetIndex builds a TargetIndex from the target dictionary rows.
func NewTargetIndex(rows []types.RawTarget) TargetIndex {
	idx := make(TargetIndex, len(rows))
	for _, row := range rows {
		idx[row.ID] = row
	}
	return idx
}

// NestMechanisms rolls raw mechanism rows into one MechanismSet per drug,
// enriching each row with target name, type, and gene ids where the target
// dictionary has an entry (left-outer: unmatched targets keep empty
// metadata). Unique action and target types are collected sorted.
func NestMechanisms(rows []types.RawMechanism, targets TargetIndex) map[string]*types.MechanismSet {
	sets := make(map[string]*types.MechanismSet)
	for _, row := range rows {
		rec := types.MechanismRecord{
			MechanismOfAction: row.MechanismOfAction,
			ActionType:        row.ActionType,
		}
		if t, ok := targets[row.TargetID]; ok {
			rec.TargetType = t.TargetType
			rec.TargetName = t.Name
			rec.TargetIDs = t.GeneIDs
		}

		set, ok := sets[row.MoleculeID]
		if !ok {
			set = &types.MechanismSet{}
			sets[row.MoleculeID] = set
		}
		set.Rows = append(set.Rows, rec)
	}

	for _, set := range sets {
		set.UniqueActionTypes = distinct(set.Rows, func(r types.MechanismRecord) string { return r.ActionType })
		set.UniqueTargetTypes = distinct(set.Rows, func(r types.MechanismRecord) string { return r.TargetType })
	}
	return sets
}

// distinct collects the sorted non-empty distinct values of one field
// across a mechanism set.
func distinct(rows []types.MechanismRecord, field func(types.MechanismRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range rows {
		v := field(row)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
