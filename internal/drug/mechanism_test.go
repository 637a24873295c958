// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package drug

import (
	"reflect"
	"testing"

	"github.com/medgraph/drugindex/pkg/types"
)

func TestNestMechanisms(t *testing.T) {
	targets := NewTargetIndex([]types.RawTarget{
		{ID: "T1", Name: "Beta-2 adrenergic receptor", TargetType: "SINGLE PROTEIN", GeneIDs: []string{"ENSG1"}},
	})
	rows := []types.RawMechanism{
		{MoleculeID: "CHEMBL1", MechanismOfAction: "agonist of X", ActionType: "AGONIST", TargetID: "T1"},
		{MoleculeID: "CHEMBL1", MechanismOfAction: "inhibitor of Y", ActionType: "INHIBITOR", TargetID: "T2"},
		{MoleculeID: "CHEMBL2", MechanismOfAction: "inhibitor of Z", ActionType: "INHIBITOR", TargetID: "T1"},
	}

	sets := NestMechanisms(rows, targets)
	if len(sets) != 2 {
		t.Fatalf("got %d drugs, want 2", len(sets))
	}

	set := sets["CHEMBL1"]
	if len(set.Rows) != 2 {
		t.Fatalf("CHEMBL1 has %d rows, want 2", len(set.Rows))
	}
	if set.Rows[0].TargetName != "Beta-2 adrenergic receptor" {
		t.Errorf("TargetName = %q, want joined target metadata", set.Rows[0].TargetName)
	}
	if !reflect.DeepEqual(set.Rows[0].TargetIDs, []string{"ENSG1"}) {
		t.Errorf("TargetIDs = %v, want [ENSG1]", set.Rows[0].TargetIDs)
	}
	// Unmatched target keeps empty metadata.
	if set.Rows[1].TargetName != "" || set.Rows[1].TargetType != "" {
		t.Errorf("unmatched target carries metadata: %+v", set.Rows[1])
	}
	if !reflect.DeepEqual(set.UniqueActionTypes, []string{"AGONIST", "INHIBITOR"}) {
		t.Errorf("UniqueActionTypes = %v, want [AGONIST INHIBITOR]", set.UniqueActionTypes)
	}
	if !reflect.DeepEqual(set.UniqueTargetTypes, []string{"SINGLE PROTEIN"}) {
		t.Errorf("UniqueTargetTypes = %v, want [SINGLE PROTEIN]", set.UniqueTargetTypes)
	}
}

func TestNestMechanismsDeduplicatesTypes(t *testing.T) {
	rows := []types.RawMechanism{
		{MoleculeID: "CHEMBL1", MechanismOfAction: "a", ActionType: "INHIBITOR"},
		{MoleculeID: "CHEMBL1", MechanismOfAction: "b", ActionType: "INHIBITOR"},
	}
	sets := NestMechanisms(rows, nil)
	if got := sets["CHEMBL1"].UniqueActionTypes; len(got) != 1 {
		t.Errorf("UniqueActionTypes = %v, want single INHIBITOR", got)
	}
}
