// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ortholog

import (
	"testing"

	"github.com/medgraph/drugindex/pkg/types"
)

var testSpecies = []types.SpeciesRecord{
	{TaxonomyID: "9606", SpeciesName: "Homo sapiens"},
	{TaxonomyID: "10090", SpeciesName: "Mus musculus"},
	{TaxonomyID: "7955", SpeciesName: "Danio rerio"},
}

func homologyRow(gene, speciesName, targetGene string) types.HomologyRow {
	return types.HomologyRow{
		GeneID:           gene,
		HomologySpecies:  speciesName,
		HomologyType:     "ortholog_one2one",
		HomologyGeneID:   targetGene,
		QueryPercID:      "88.5",
		TargetPercID:     "90.0",
		IsHighConfidence: "1",
	}
}

func TestNewSpeciesIndexWhitelistPrefixMatch(t *testing.T) {
	tests := []struct {
		name      string
		whitelist []string
		wantNames []string
	}{
		{"plain ids", []string{"9606", "10090"}, []string{"Homo sapiens", "Mus musculus"}},
		{"suffixed entry matches base id", []string{"9606-abc"}, []string{"Homo sapiens"}},
		{"sub-strain suffix", []string{"10090-BALB_c"}, []string{"Mus musculus"}},
		{"unknown id matches nothing", []string{"1234"}, nil},
		{"empty whitelist", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewSpeciesIndex(testSpecies, tt.whitelist)
			if len(idx) != len(tt.wantNames) {
				t.Fatalf("got %d species, want %d", len(idx), len(tt.wantNames))
			}
			for _, name := range tt.wantNames {
				if _, ok := idx[name]; !ok {
					t.Errorf("species %q missing from index", name)
				}
			}
		})
	}
}

func TestLinkDropsLowConfidenceRows(t *testing.T) {
	row := homologyRow("ENSG1", "Mus musculus", "ENSMUSG1")
	row.IsHighConfidence = "0"

	res := Link([]types.HomologyRow{row},
		NewSpeciesIndex(testSpecies, []string{"10090"}),
		map[string]string{"ENSMUSG1": "Abc1"})

	if len(res.Orthologs) != 0 {
		t.Errorf("got %d orthologs, want 0", len(res.Orthologs))
	}
	if res.LowConfidence != 1 {
		t.Errorf("LowConfidence = %d, want 1", res.LowConfidence)
	}
}

func TestLinkDropsUnmatchedSpecies(t *testing.T) {
	res := Link([]types.HomologyRow{homologyRow("ENSG1", "Danio rerio", "ENSDARG1")},
		NewSpeciesIndex(testSpecies, []string{"10090"}),
		map[string]string{"ENSDARG1": "abc1"})

	if len(res.Orthologs) != 0 {
		t.Errorf("got %d orthologs, want 0", len(res.Orthologs))
	}
	if res.UnmatchedSpecies != 1 {
		t.Errorf("UnmatchedSpecies = %d, want 1", res.UnmatchedSpecies)
	}
}

func TestLinkExcludesHomologsWithoutSymbol(t *testing.T) {
	res := Link([]types.HomologyRow{homologyRow("ENSG1", "Mus musculus", "ENSMUSG1")},
		NewSpeciesIndex(testSpecies, []string{"10090"}),
		map[string]string{})

	if len(res.Orthologs) != 0 {
		t.Errorf("got %d orthologs, want 0", len(res.Orthologs))
	}
	if res.UnmappedSymbols != 1 {
		t.Errorf("UnmappedSymbols = %d, want 1", res.UnmappedSymbols)
	}
}

func TestLinkNestsPerHumanGene(t *testing.T) {
	rows := []types.HomologyRow{
		homologyRow("ENSG2", "Mus musculus", "ENSMUSG1"),
		homologyRow("ENSG1", "Mus musculus", "ENSMUSG2"),
		homologyRow("ENSG2", "Danio rerio", "ENSDARG1"),
	}
	symbols := map[string]string{
		"ENSMUSG1": "Abc1",
		"ENSMUSG2": "Abc2",
		"ENSDARG1": "abc1",
	}

	res := Link(rows, NewSpeciesIndex(testSpecies, []string{"10090", "7955"}), symbols)

	if len(res.Orthologs) != 2 {
		t.Fatalf("got %d genes, want 2", len(res.Orthologs))
	}
	// Output is sorted by human gene id.
	if res.Orthologs[0].HumanGeneID != "ENSG1" || res.Orthologs[1].HumanGeneID != "ENSG2" {
		t.Errorf("gene order = %s, %s; want ENSG1, ENSG2",
			res.Orthologs[0].HumanGeneID, res.Orthologs[1].HumanGeneID)
	}
	if len(res.Orthologs[1].Homologues) != 2 {
		t.Fatalf("ENSG2 has %d homologues, want 2", len(res.Orthologs[1].Homologues))
	}

	h := res.Orthologs[0].Homologues[0]
	if h.SpeciesID != "10090" || h.SpeciesName != "Mus musculus" {
		t.Errorf("species = %s/%s, want 10090/Mus musculus", h.SpeciesID, h.SpeciesName)
	}
	if h.TargetGeneSymbol != "Abc2" {
		t.Errorf("TargetGeneSymbol = %q, want Abc2", h.TargetGeneSymbol)
	}
	if h.QueryPercentageIdentity == nil || *h.QueryPercentageIdentity != 88.5 {
		t.Errorf("QueryPercentageIdentity = %v, want 88.5", h.QueryPercentageIdentity)
	}
}

func TestParsePercentageNullOnFailure(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"valid float", "88.5", floatPtr(88.5)},
		{"integer", "100", floatPtr(100)},
		{"padded", " 42.0 ", floatPtr(42)},
		{"empty", "", nil},
		{"non-numeric", "n/a", nil},
		{"trailing junk", "88.5%", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePercentage(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("parsePercentage(%q) = %v, want nil", tt.in, *got)
			case tt.want != nil && got == nil:
				t.Errorf("parsePercentage(%q) = nil, want %v", tt.in, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("parsePercentage(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
