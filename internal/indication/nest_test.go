// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package indication

import (
	"testing"

	"github.com/medgraph/drugindex/pkg/types"
)

func TestNestCountMatchesRows(t *testing.T) {
	rows := []Aggregated{
		{DrugID: "CHEMBL1", DiseaseID: "EFO_1", MaxPhase: 4},
		{DrugID: "CHEMBL1", DiseaseID: "EFO_2", MaxPhase: 2},
		{DrugID: "CHEMBL2", DiseaseID: "EFO_1", MaxPhase: 1},
	}

	sets := Nest(rows, nil)
	for drug, set := range sets {
		if set.Count != len(set.Rows) {
			t.Errorf("%s: Count = %d, len(Rows) = %d", drug, set.Count, len(set.Rows))
		}
	}
	if sets["CHEMBL1"].Count != 2 {
		t.Errorf("CHEMBL1 Count = %d, want 2", sets["CHEMBL1"].Count)
	}
	if sets["CHEMBL2"].Count != 1 {
		t.Errorf("CHEMBL2 Count = %d, want 1", sets["CHEMBL2"].Count)
	}
}

func TestNestJoinsDiseaseMetadata(t *testing.T) {
	diseases := NewDiseaseIndex([]types.DiseaseRecord{
		{
			ID:                    "EFO:1",
			Label:                 "asthma",
			TherapeuticAreaCodes:  []string{"EFO_0000684"},
			TherapeuticAreaLabels: []string{"respiratory system disease"},
		},
	})
	rows := []Aggregated{
		{DrugID: "CHEMBL1", DiseaseID: "EFO_1", MaxPhase: 3},
		{DrugID: "CHEMBL1", DiseaseID: "EFO_999", MaxPhase: 1},
	}

	sets := Nest(rows, diseases)
	got := sets["CHEMBL1"].Rows

	if got[0].EFOName != "asthma" {
		t.Errorf("EFOName = %q, want asthma", got[0].EFOName)
	}
	if len(got[0].TherapeuticAreaLabels) != 1 {
		t.Errorf("TherapeuticAreaLabels = %v, want one entry", got[0].TherapeuticAreaLabels)
	}

	// Unmatched disease keeps empty metadata but survives the join.
	if got[1].Disease != "EFO_999" {
		t.Fatalf("second row disease = %q, want EFO_999", got[1].Disease)
	}
	if got[1].EFOName != "" || got[1].TherapeuticAreaCodes != nil {
		t.Errorf("unmatched disease carries metadata: %+v", got[1])
	}
}

func TestNestPropagatesPhaseAndReferences(t *testing.T) {
	rows := []Aggregated{
		{
			DrugID:    "CHEMBL1",
			DiseaseID: "EFO_1",
			MaxPhase:  4,
			References: []types.ReferenceBundle{
				{Source: "ClinicalTrials", IDs: []string{"NCT01"}, URLs: []string{"u"}},
			},
		},
	}

	sets := Nest(rows, nil)
	rec := sets["CHEMBL1"].Rows[0]
	if rec.MaxPhaseForIndication != 4 {
		t.Errorf("MaxPhaseForIndication = %v, want 4", rec.MaxPhaseForIndication)
	}
	if len(rec.References) != 1 || rec.References[0].Source != "ClinicalTrials" {
		t.Errorf("References = %+v, want the ClinicalTrials bundle", rec.References)
	}
}
