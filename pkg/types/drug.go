// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record and configuration structs shared across
// pipeline stages. Records are derived, immutable artifacts: built in one
// pass and persisted as the final write.
package types

// ReferenceBundle groups the references of one source for a drug-disease
// pair. IDs and URLs are positionally aligned in arrival order after
// comma-packed ids have been split.
type ReferenceBundle struct {
	Source string   `json:"source" yaml:"source"`
	IDs    []string `json:"ids" yaml:"ids"`
	URLs   []string `json:"urls" yaml:"urls"`
}

// IndicationRecord is one disease a drug is indicated for, carrying the
// maximum clinical trial phase observed and the per-source reference
// bundles. Disease metadata fields stay empty when the disease dictionary
// has no entry for the id.
type IndicationRecord struct {
	Disease               string            `json:"disease" yaml:"disease"`
	EFOName               string            `json:"efoName,omitempty" yaml:"efo_name,omitempty"`
	MaxPhaseForIndication float64           `json:"maxPhaseForIndication" yaml:"max_phase_for_indication"`
	References            []ReferenceBundle `json:"references,omitempty" yaml:"references,omitempty"`
	TherapeuticAreaCodes  []string          `json:"therapeuticAreaCodes,omitempty" yaml:"therapeutic_area_codes,omitempty"`
	TherapeuticAreaLabels []string          `json:"therapeuticAreaLabels,omitempty" yaml:"therapeutic_area_labels,omitempty"`
}

// DrugIndicationSet holds all indications of one drug. Count always equals
// len(Rows).
type DrugIndicationSet struct {
	Count int                `json:"count" yaml:"count"`
	Rows  []IndicationRecord `json:"rows" yaml:"rows"`
}

// MechanismRecord is one mechanism-of-action row for a drug.
type MechanismRecord struct {
	MechanismOfAction string   `json:"mechanismOfAction" yaml:"mechanism_of_action"`
	ActionType        string   `json:"actionType,omitempty" yaml:"action_type,omitempty"`
	TargetType        string   `json:"targetType,omitempty" yaml:"target_type,omitempty"`
	TargetName        string   `json:"targetName,omitempty" yaml:"target_name,omitempty"`
	TargetIDs         []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// MechanismSet holds all mechanism rows of one drug plus the distinct
// action and target types across them.
type MechanismSet struct {
	Rows              []MechanismRecord `json:"rows" yaml:"rows"`
	UniqueActionTypes []string          `json:"uniqueActionTypes,omitempty" yaml:"unique_action_types,omitempty"`
	UniqueTargetTypes []string          `json:"uniqueTargetTypes,omitempty" yaml:"unique_target_types,omitempty"`
}

// LinkedEntitySet holds the distinct target or disease ids a drug is linked
// to through the evidence dataset. Count always equals len(Rows).
type LinkedEntitySet struct {
	Count int      `json:"count" yaml:"count"`
	Rows  []string `json:"rows" yaml:"rows"`
}

// Drug is the assembled, denormalized output record, keyed by drug id.
// Indications, MechanismsOfAction, and the linkage sets are nil when the
// corresponding dataset had no rows for the drug; at least one drug signal
// (a drugbank cross-reference, indications, or mechanisms) is guaranteed by
// the assembler's qualification filter.
type Drug struct {
	ID                        string              `json:"id" yaml:"id"`
	Name                      string              `json:"name,omitempty" yaml:"name,omitempty"`
	DrugType                  string              `json:"drugType,omitempty" yaml:"drug_type,omitempty"`
	Synonyms                  []string            `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	TradeNames                []string            `json:"tradeNames,omitempty" yaml:"trade_names,omitempty"`
	YearOfFirstApproval       int                 `json:"yearOfFirstApproval,omitempty" yaml:"year_of_first_approval,omitempty"`
	MaximumClinicalTrialPhase float64             `json:"maximumClinicalTrialPhase,omitempty" yaml:"maximum_clinical_trial_phase,omitempty"`
	HasBeenWithdrawn          bool                `json:"hasBeenWithdrawn" yaml:"has_been_withdrawn"`
	BlackBoxWarning           bool                `json:"blackBoxWarning" yaml:"black_box_warning"`
	CrossReferences           map[string][]string `json:"crossReferences,omitempty" yaml:"cross_references,omitempty"`
	Indications               *DrugIndicationSet  `json:"indications,omitempty" yaml:"indications,omitempty"`
	MechanismsOfAction        *MechanismSet       `json:"mechanismsOfAction,omitempty" yaml:"mechanisms_of_action,omitempty"`
	LinkedTargets             *LinkedEntitySet    `json:"linkedTargets,omitempty" yaml:"linked_targets,omitempty"`
	LinkedDiseases            *LinkedEntitySet    `json:"linkedDiseases,omitempty" yaml:"linked_diseases,omitempty"`
	Description               string              `json:"description,omitempty" yaml:"description,omitempty"`
}
