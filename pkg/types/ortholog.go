// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OrthologRecord is one qualifying homolog of a human gene. The percentage
// identity fields are nil when the source value did not parse as a float
// (null-on-failure cast semantics).
type OrthologRecord struct {
	SpeciesID                string   `json:"speciesId" yaml:"species_id"`
	SpeciesName              string   `json:"speciesName" yaml:"species_name"`
	HomologyType             string   `json:"homologyType" yaml:"homology_type"`
	TargetGeneID             string   `json:"targetGeneId" yaml:"target_gene_id"`
	TargetGeneSymbol         string   `json:"targetGeneSymbol" yaml:"target_gene_symbol"`
	QueryPercentageIdentity  *float64 `json:"queryPercentageIdentity,omitempty" yaml:"query_percentage_identity,omitempty"`
	TargetPercentageIdentity *float64 `json:"targetPercentageIdentity,omitempty" yaml:"target_percentage_identity,omitempty"`
}

// LinkedOrtholog is the output record of the ortholog pipeline: one entry
// per human gene with at least one qualifying homolog.
type LinkedOrtholog struct {
	HumanGeneID string           `json:"humanGeneId" yaml:"human_gene_id"`
	Homologues  []OrthologRecord `json:"homologues" yaml:"homologues"`
}
