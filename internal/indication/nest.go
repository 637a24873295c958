// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package indication

import (
	"github.com/medgraph/drugindex/pkg/types"
)

// DiseaseIndex is an immutable lookup of disease metadata by normalized
// ontology id, built once per run and shared by reference.
type DiseaseIndex map[string]types.DiseaseRecord

// NewDiseaseIndex builds a DiseaseIndex from the disease dictionary rows,
// normalizing ids on the way in.
func NewDiseaseIndex(rows []types.DiseaseRecord) DiseaseIndex {
	idx := make(DiseaseIndex, len(rows))
	for _, row := range rows {
		idx[NormalizeOntologyID(row.ID)] = row
	}
	return idx
}

// Nest joins disease metadata onto aggregated (drug, disease) rows and
// rolls them up into one DrugIndicationSet per drug. The join is
// left-outer: a disease missing from the dictionary keeps empty metadata
// rather than being dropped.
func Nest(rows []Aggregated, diseases DiseaseIndex) map[string]*types.DrugIndicationSet {
	sets := make(map[string]*types.DrugIndicationSet)
	for _, row := range rows {
		rec := types.IndicationRecord{
			Disease:               row.DiseaseID,
			MaxPhaseForIndication: row.MaxPhase,
			References:            row.References,
		}
		if meta, ok := diseases[row.DiseaseID]; ok {
			rec.EFOName = meta.Label
			rec.TherapeuticAreaCodes = meta.TherapeuticAreaCodes
			rec.TherapeuticAreaLabels = meta.TherapeuticAreaLabels
		}

		set, ok := sets[row.DrugID]
		if !ok {
			set = &types.DrugIndicationSet{}
			sets[row.DrugID] = set
		}
		set.Rows = append(set.Rows, rec)
		set.Count = len(set.Rows)
	}
	return sets
}
