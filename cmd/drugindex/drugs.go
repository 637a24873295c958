// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/medgraph/drugindex/internal/drug"
	"github.com/medgraph/drugindex/pkg/types"
)

var drugsCmd = &cobra.Command{
	Use:   "drugs",
	Short: "Assemble the denormalized drug dataset",
	Long: `Drugs runs the drug-assembly pipeline: indication references are
aggregated per source and nested per drug, mechanisms of action and
evidence linkage are rolled up, and molecule rows qualifying as drugs are
joined into one nested record per drug id and written to the output
dataset named in the manifest.`,
	RunE: runDrugs,
}

func init() {
	drugsCmd.Flags().String("manifest", "datasets.yaml", "dataset manifest file")
	drugsCmd.Flags().String("output", "", "output dataset name (default \"drugs\")")
	drugsCmd.Flags().StringSlice("split-sources", nil, "reference sources with comma-packed ids (default ClinicalTrials)")

	rootCmd.AddCommand(drugsCmd)
}

func runDrugs(cmd *cobra.Command, args []string) error {
	cfg := types.DrugPipelineConfig{
		Manifest:     stringSetting(cmd, "manifest", "drugs.manifest"),
		Output:       stringSetting(cmd, "output", "drugs.output"),
		SplitSources: viper.GetStringSlice("drugs.split_sources"),
	}
	if flagged, _ := cmd.Flags().GetStringSlice("split-sources"); len(flagged) > 0 {
		cfg.SplitSources = flagged
	}

	_, err := drug.Run(cfg, os.Stdout)
	return err
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// then the viper config key, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.GetString(key) != "" {
		v = viper.GetString(key)
	}
	return v
}
