// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package drug

import (
	"sort"

	"github.com/medgraph/drugindex/pkg/types"
)

// drugbankSource is the cross-reference key that qualifies a molecule as a
// drug on its own.
const drugbankSource = "drugbank"

// Inputs carries the pre-aggregated datasets the assembler joins onto the
// molecule rows. Every map holds at most one entry per drug id, so the
// left-outer joins cannot duplicate rows.
type Inputs struct {
	Molecules      []types.RawMolecule
	Indications    map[string]*types.DrugIndicationSet
	Mechanisms     map[string]*types.MechanismSet
	Drugbank       map[string]string
	LinkedTargets  map[string]*types.LinkedEntitySet
	LinkedDiseases map[string]*types.LinkedEntitySet
}

// Assemble left-outer-joins the pre-aggregated datasets onto the molecule
// rows by drug id and keeps only rows qualifying as a drug: a drugbank
// cross-reference, a non-nil indication set, or a non-nil mechanism set.
// Non-qualifying molecules are dropped silently; excluded returns their
// count. Output is sorted by drug id.
func Assemble(in Inputs) (drugs []types.Drug, excluded int) {
	for _, mol := range in.Molecules {
		d := types.Drug{
			ID:                        mol.ID,
			Name:                      mol.Name,
			DrugType:                  mol.DrugType,
			Synonyms:                  mol.Synonyms,
			TradeNames:                mol.TradeNames,
			YearOfFirstApproval:       mol.FirstApproval,
			MaximumClinicalTrialPhase: mol.MaxPhase,
			HasBeenWithdrawn:          mol.Withdrawn,
			BlackBoxWarning:           mol.BlackBoxWarning,
			CrossReferences:           crossReferences(mol, in.Drugbank[mol.ID]),
			Indications:               in.Indications[mol.ID],
			MechanismsOfAction:        in.Mechanisms[mol.ID],
			LinkedTargets:             in.LinkedTargets[mol.ID],
			LinkedDiseases:            in.LinkedDiseases[mol.ID],
		}

		if !qualifies(d) {
			excluded++
			continue
		}

		d.Description = Describe(d)
		drugs = append(drugs, d)
	}

	sort.Slice(drugs, func(i, j int) bool { return drugs[i].ID < drugs[j].ID })
	return drugs, excluded
}

// crossReferences groups a molecule's cross-reference entries by source and
// merges the drugbank mapping under its own key.
func crossReferences(mol types.RawMolecule, drugbankID string) map[string][]string {
	if len(mol.CrossReferences) == 0 && drugbankID == "" {
		return nil
	}
	refs := make(map[string][]string)
	for _, xref := range mol.CrossReferences {
		refs[xref.Source] = append(refs[xref.Source], xref.ID)
	}
	if drugbankID != "" && !contains(refs[drugbankSource], drugbankID) {
		refs[drugbankSource] = append(refs[drugbankSource], drugbankID)
	}
	return refs
}

// qualifies reports whether a molecule row carries any drug signal.
func qualifies(d types.Drug) bool {
	return len(d.CrossReferences[drugbankSource]) > 0 ||
		d.Indications != nil ||
		d.MechanismsOfAction != nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
