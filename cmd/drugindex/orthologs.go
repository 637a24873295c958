// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/medgraph/drugindex/internal/ortholog"
	"github.com/medgraph/drugindex/pkg/types"
)

var orthologsCmd = &cobra.Command{
	Use:   "orthologs",
	Short: "Link human genes to cross-species homologs",
	Long: `Orthologs runs the ortholog pipeline: high-confidence homology rows
are joined to the whitelisted species dictionary and the gene-symbol
dictionary, and the surviving homologs are nested per human gene.

The species whitelist is a list of taxonomy ids; each entry is truncated
at its first "-" before matching, so "9606-abc" matches taxonomy id 9606.`,
	RunE: runOrthologs,
}

func init() {
	orthologsCmd.Flags().String("manifest", "datasets.yaml", "dataset manifest file")
	orthologsCmd.Flags().String("output", "", "output dataset name (default \"linked-orthologs\")")
	orthologsCmd.Flags().StringSlice("whitelist", nil, "taxonomy ids of species to keep")

	rootCmd.AddCommand(orthologsCmd)
}

func runOrthologs(cmd *cobra.Command, args []string) error {
	cfg := types.OrthologPipelineConfig{
		Manifest:  stringSetting(cmd, "manifest", "orthologs.manifest"),
		Output:    stringSetting(cmd, "output", "orthologs.output"),
		Whitelist: viper.GetStringSlice("orthologs.whitelist"),
	}
	if flagged, _ := cmd.Flags().GetStringSlice("whitelist"); len(flagged) > 0 {
		cfg.Whitelist = flagged
	}
	if len(cfg.Whitelist) == 0 {
		return fmt.Errorf("provide a species whitelist via --whitelist or orthologs.whitelist")
	}

	_, err := ortholog.Run(cfg, os.Stdout)
	return err
}
