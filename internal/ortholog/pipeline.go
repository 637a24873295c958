// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ortholog

import (
	"fmt"
	"io"

	"github.com/medgraph/drugindex/internal/dataset"
	"github.com/medgraph/drugindex/pkg/types"
)

// Dataset names the ortholog pipeline reads and writes.
const (
	SpeciesDataset  = "homology-species"
	HomologyDataset = "homology-coding-proteins"
	SymbolsDataset  = "homology-gene-symbols"
	OutputDataset   = "linked-orthologs"
)

// RunSummary holds the counts of one ortholog pipeline run.
type RunSummary struct {
	HomologyRows int
	Dropped      int
	Genes        int
}

// Run executes the ortholog pipeline: load the species dictionary and
// gene-symbol map, link high-confidence homology rows, and write one record
// per human gene to the output dataset. Progress and a final summary go to w.
func Run(cfg types.OrthologPipelineConfig, w io.Writer) (RunSummary, error) {
	m, err := dataset.ReadManifest(cfg.Manifest)
	if err != nil {
		return RunSummary{}, err
	}

	speciesSpec, err := m.Lookup(SpeciesDataset)
	if err != nil {
		return RunSummary{}, err
	}
	speciesRows, err := dataset.ReadJSONL[types.SpeciesRecord](speciesSpec.Path)
	if err != nil {
		return RunSummary{}, fmt.Errorf("reading species dictionary: %w", err)
	}
	species := NewSpeciesIndex(speciesRows, cfg.Whitelist)
	fmt.Fprintf(w, "species: %d whitelisted of %d\n", len(species), len(speciesRows))

	symbolsSpec, err := m.Lookup(SymbolsDataset)
	if err != nil {
		return RunSummary{}, err
	}
	symbols, err := dataset.ReadTSVPairs(symbolsSpec.Path)
	if err != nil {
		return RunSummary{}, fmt.Errorf("reading gene-symbol dictionary: %w", err)
	}

	homologySpec, err := m.Lookup(HomologyDataset)
	if err != nil {
		return RunSummary{}, err
	}
	homologyRows, err := dataset.ReadJSONL[types.HomologyRow](homologySpec.Path)
	if err != nil {
		return RunSummary{}, fmt.Errorf("reading homology table: %w", err)
	}

	res := Link(homologyRows, species, symbols)

	output := cfg.Output
	if output == "" {
		output = OutputDataset
	}
	outSpec, err := m.Lookup(output)
	if err != nil {
		return RunSummary{}, err
	}
	if err := dataset.Write(outSpec, res.Orthologs, func(o types.LinkedOrtholog) string {
		return o.HumanGeneID
	}); err != nil {
		return RunSummary{}, fmt.Errorf("writing %s: %w", output, err)
	}

	summary := RunSummary{
		HomologyRows: len(homologyRows),
		Dropped:      res.LowConfidence + res.UnmatchedSpecies + res.UnmappedSymbols,
		Genes:        len(res.Orthologs),
	}
	fmt.Fprintf(w, "\nhomology rows: %d, dropped: %d (low confidence: %d, no species: %d, no symbol: %d), genes written: %d\n",
		summary.HomologyRows, summary.Dropped,
		res.LowConfidence, res.UnmatchedSpecies, res.UnmappedSymbols, summary.Genes)
	return summary, nil
}
