// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package drug

import (
	"fmt"
	"io"

	"github.com/medgraph/drugindex/internal/dataset"
	"github.com/medgraph/drugindex/internal/indication"
	"github.com/medgraph/drugindex/pkg/types"
)

// Dataset names the drug pipeline reads and writes.
const (
	IndicationDataset = "chembl-indication"
	MechanismDataset  = "chembl-mechanism"
	MoleculeDataset   = "chembl-molecule"
	TargetDataset     = "chembl-target"
	DrugbankDataset   = "drugbank"
	DiseaseDataset    = "disease"
	EvidenceDataset   = "evidence"
	OutputDataset     = "drugs"
)

// defaultSplitSources lists the reference sources known to pack several
// comma-separated ids into one ref_id value.
var defaultSplitSources = []string{"ClinicalTrials"}

// RunSummary holds the counts of one drug pipeline run.
type RunSummary struct {
	Molecules      int
	IndicationRows int
	Unlinkable     int
	NonQualifying  int
	Drugs          int
}

// Run executes the drug-assembly pipeline end to end: aggregate indication
// references, nest indications and mechanisms, reduce evidence linkage,
// assemble and qualify drugs, and write the output dataset. Progress and a
// final summary go to w.
func Run(cfg types.DrugPipelineConfig, w io.Writer) (RunSummary, error) {
	m, err := dataset.ReadManifest(cfg.Manifest)
	if err != nil {
		return RunSummary{}, err
	}

	indicationRows, err := readJSONL[types.RawIndication](m, IndicationDataset)
	if err != nil {
		return RunSummary{}, err
	}
	diseaseRows, err := readJSONL[types.DiseaseRecord](m, DiseaseDataset)
	if err != nil {
		return RunSummary{}, err
	}
	mechanismRows, err := readJSONL[types.RawMechanism](m, MechanismDataset)
	if err != nil {
		return RunSummary{}, err
	}
	targetRows, err := readJSONL[types.RawTarget](m, TargetDataset)
	if err != nil {
		return RunSummary{}, err
	}
	moleculeRows, err := readJSONL[types.RawMolecule](m, MoleculeDataset)
	if err != nil {
		return RunSummary{}, err
	}
	drugbankRows, err := readJSONL[types.DrugbankMapping](m, DrugbankDataset)
	if err != nil {
		return RunSummary{}, err
	}
	evidenceRows, err := readJSONL[types.RawEvidence](m, EvidenceDataset)
	if err != nil {
		return RunSummary{}, err
	}

	splitSources := cfg.SplitSources
	if splitSources == nil {
		splitSources = defaultSplitSources
	}

	aggregated, unlinkable := indication.AggregateReferences(indicationRows, indication.NewSplitSet(splitSources))
	fmt.Fprintf(w, "indications: %d rows, %d unlinkable dropped, %d drug-disease pairs\n",
		len(indicationRows), unlinkable, len(aggregated))

	indications := indication.Nest(aggregated, indication.NewDiseaseIndex(diseaseRows))
	mechanisms := NestMechanisms(mechanismRows, NewTargetIndex(targetRows))
	linkedTargets, linkedDiseases := AggregateLinkage(evidenceRows)

	drugbank := make(map[string]string, len(drugbankRows))
	for _, row := range drugbankRows {
		drugbank[row.MoleculeID] = row.DrugbankID
	}

	drugs, excluded := Assemble(Inputs{
		Molecules:      moleculeRows,
		Indications:    indications,
		Mechanisms:     mechanisms,
		Drugbank:       drugbank,
		LinkedTargets:  linkedTargets,
		LinkedDiseases: linkedDiseases,
	})

	output := cfg.Output
	if output == "" {
		output = OutputDataset
	}
	outSpec, err := m.Lookup(output)
	if err != nil {
		return RunSummary{}, err
	}
	if err := dataset.Write(outSpec, drugs, func(d types.Drug) string { return d.ID }); err != nil {
		return RunSummary{}, fmt.Errorf("writing %s: %w", output, err)
	}

	summary := RunSummary{
		Molecules:      len(moleculeRows),
		IndicationRows: len(indicationRows),
		Unlinkable:     unlinkable,
		NonQualifying:  excluded,
		Drugs:          len(drugs),
	}
	fmt.Fprintf(w, "\nmolecules: %d, non-qualifying dropped: %d, drugs written: %d\n",
		summary.Molecules, summary.NonQualifying, summary.Drugs)
	return summary, nil
}

// readJSONL resolves name through the manifest and decodes its JSONL file.
func readJSONL[T any](m *dataset.Manifest, name string) ([]T, error) {
	spec, err := m.Lookup(name)
	if err != nil {
		return nil, err
	}
	rows, err := dataset.ReadJSONL[T](spec.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return rows, nil
}
