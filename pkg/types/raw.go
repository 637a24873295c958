// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Raw input rows mirror the upstream dataset columns one to one. They are
// decoded straight from the named JSONL datasets and carry no derived
// fields; every reshaping happens in the stage packages.

// IndicationRef is one reference entry inside a raw indication row. RefID
// may hold several comma-packed ids for sources known to pack them.
type IndicationRef struct {
	RefID   string `json:"ref_id"`
	RefType string `json:"ref_type"`
	RefURL  string `json:"ref_url"`
}

// RawIndication is one row of the ChEMBL drug-indication dataset.
type RawIndication struct {
	MoleculeID string          `json:"molecule_chembl_id"`
	DiseaseID  string          `json:"efo_id"`
	MaxPhase   float64         `json:"max_phase_for_ind"`
	References []IndicationRef `json:"indication_refs"`
}

// MoleculeXref is one cross-reference entry of a raw molecule row.
type MoleculeXref struct {
	Source string `json:"xref_src"`
	ID     string `json:"xref_id"`
}

// RawMolecule is one row of the ChEMBL molecule dataset.
type RawMolecule struct {
	ID              string         `json:"molecule_chembl_id"`
	Name            string         `json:"pref_name"`
	DrugType        string         `json:"molecule_type"`
	Synonyms        []string       `json:"synonyms"`
	TradeNames      []string       `json:"trade_names"`
	FirstApproval   int            `json:"first_approval"`
	MaxPhase        float64        `json:"max_phase"`
	Withdrawn       bool           `json:"withdrawn_flag"`
	BlackBoxWarning bool           `json:"black_box_warning"`
	CrossReferences []MoleculeXref `json:"cross_references"`
}

// RawMechanism is one row of the ChEMBL mechanism-of-action dataset.
type RawMechanism struct {
	MoleculeID        string `json:"molecule_chembl_id"`
	MechanismOfAction string `json:"mechanism_of_action"`
	ActionType        string `json:"action_type"`
	TargetID          string `json:"target_chembl_id"`
}

// RawTarget is one row of the ChEMBL target dataset, joined onto mechanism
// rows for target name, type, and gene ids.
type RawTarget struct {
	ID         string   `json:"target_chembl_id"`
	Name       string   `json:"pref_name"`
	TargetType string   `json:"target_type"`
	GeneIDs    []string `json:"gene_ids"`
}

// RawEvidence is one row of the evidence dataset; only the linkage keys are
// read here.
type RawEvidence struct {
	DrugID    string `json:"drugId"`
	TargetID  string `json:"targetId"`
	DiseaseID string `json:"diseaseId"`
}

// DrugbankMapping links a ChEMBL molecule id to its DrugBank id.
type DrugbankMapping struct {
	MoleculeID string `json:"molecule_chembl_id"`
	DrugbankID string `json:"drugbank_id"`
}

// DiseaseRecord is one row of the EFO disease dictionary.
type DiseaseRecord struct {
	ID                    string   `json:"id"`
	Label                 string   `json:"label"`
	TherapeuticAreaCodes  []string `json:"therapeutic_area_codes"`
	TherapeuticAreaLabels []string `json:"therapeutic_area_labels"`
}

// SpeciesRecord is one row of the homology species dictionary.
type SpeciesRecord struct {
	TaxonomyID  string `json:"taxonomy_id"`
	SpeciesName string `json:"species_name"`
}

// HomologyRow is one row of the coding-protein homology table. Numeric
// columns arrive as strings from the upstream dump; coercion to float is an
// explicit stage concern, not a decode concern.
type HomologyRow struct {
	GeneID           string `json:"gene_id"`
	HomologySpecies  string `json:"homology_species"`
	HomologyType     string `json:"homology_type"`
	HomologyGeneID   string `json:"homology_gene_id"`
	QueryPercID      string `json:"query_perc_id"`
	TargetPercID     string `json:"target_perc_id"`
	IsHighConfidence string `json:"is_high_confidence"`
}
