// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ortholog links human genes to their homologs in a whitelisted set
// of species, producing one record per human gene with at least one
// qualifying homolog.
package ortholog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/medgraph/drugindex/pkg/types"
)

// SpeciesIndex maps species name to its dictionary record, restricted to
// whitelisted taxonomy ids. Built once per run and shared by reference.
type SpeciesIndex map[string]types.SpeciesRecord

// NewSpeciesIndex filters the species dictionary to the whitelist and
// indexes it by species name. Each whitelist entry is truncated at its
// first "-" before matching, so a version-suffixed or sub-strain entry like
// "9606-abc" matches taxonomy id "9606".
func NewSpeciesIndex(rows []types.SpeciesRecord, whitelist []string) SpeciesIndex {
	allowed := make(map[string]bool, len(whitelist))
	for _, entry := range whitelist {
		base, _, _ := strings.Cut(entry, "-")
		allowed[base] = true
	}

	idx := make(SpeciesIndex)
	for _, row := range rows {
		if allowed[row.TaxonomyID] {
			idx[row.SpeciesName] = row
		}
	}
	return idx
}

// LinkResult summarizes one linking pass.
type LinkResult struct {
	LowConfidence    int
	UnmatchedSpecies int
	UnmappedSymbols  int
	Orthologs        []types.LinkedOrtholog
}

// Link filters homology rows to high-confidence entries, inner-joins them
// to the whitelisted species by name and to the gene-symbol dictionary by
// homology gene id, and nests the survivors per human gene. Rows failing
// either join are dropped, not defaulted. Output is sorted by human gene
// id; homolog order within a gene is arrival order.
func Link(rows []types.HomologyRow, species SpeciesIndex, symbols map[string]string) LinkResult {
	var res LinkResult
	byGene := make(map[string][]types.OrthologRecord)
	var geneOrder []string

	for _, row := range rows {
		if row.IsHighConfidence != "1" {
			res.LowConfidence++
			continue
		}
		sp, ok := species[row.HomologySpecies]
		if !ok {
			res.UnmatchedSpecies++
			continue
		}
		symbol, ok := symbols[row.HomologyGeneID]
		if !ok {
			res.UnmappedSymbols++
			continue
		}

		if _, seen := byGene[row.GeneID]; !seen {
			geneOrder = append(geneOrder, row.GeneID)
		}
		byGene[row.GeneID] = append(byGene[row.GeneID], types.OrthologRecord{
			SpeciesID:                sp.TaxonomyID,
			SpeciesName:              sp.SpeciesName,
			HomologyType:             row.HomologyType,
			TargetGeneID:             row.HomologyGeneID,
			TargetGeneSymbol:         symbol,
			QueryPercentageIdentity:  parsePercentage(row.QueryPercID),
			TargetPercentageIdentity: parsePercentage(row.TargetPercID),
		})
	}

	sort.Strings(geneOrder)
	res.Orthologs = make([]types.LinkedOrtholog, 0, len(geneOrder))
	for _, gene := range geneOrder {
		res.Orthologs = append(res.Orthologs, types.LinkedOrtholog{
			HumanGeneID: gene,
			Homologues:  byGene[gene],
		})
	}
	return res
}

// parsePercentage coerces a percentage-identity column to a float. A value
// that does not parse becomes nil rather than an error, matching the
// null-on-failure cast semantics of the upstream dumps.
func parsePercentage(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
