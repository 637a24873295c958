package types

// DrugPipelineConfig holds settings for the drug-assembly pipeline.
type DrugPipelineConfig struct {
	// Manifest is the path to the dataset manifest YAML file.
	Manifest string `json:"manifest" yaml:"manifest"`

	// Output is the manifest name of the dataset the assembled drugs are
	// written to (default "drugs").
	Output string `json:"output" yaml:"output"`

	// SplitSources lists the reference sources whose ref_id fields pack
	// several comma-separated ids into one value (default ClinicalTrials).
	SplitSources []string `json:"split_sources" yaml:"split_sources"`
}

// OrthologPipelineConfig holds settings for the ortholog pipeline.
type OrthologPipelineConfig struct {
	// Manifest is the path to the dataset manifest YAML file.
	Manifest string `json:"manifest" yaml:"manifest"`

	// Output is the manifest name of the output dataset (default
	// "linked-orthologs").
	Output string `json:"output" yaml:"output"`

	// Whitelist lists the taxonomy ids of the species to keep. Entries are
	// truncated at their first "-" before matching, so version-suffixed or
	// sub-strain entries match their base taxonomy id.
	Whitelist []string `json:"whitelist" yaml:"whitelist"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Drugs     DrugPipelineConfig     `json:"drugs" yaml:"drugs"`
	Orthologs OrthologPipelineConfig `json:"orthologs" yaml:"orthologs"`
}
