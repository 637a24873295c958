// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the drugindex CLI. Each pipeline is a
// subcommand: drugs assembles the denormalized drug dataset, orthologs
// links human genes to cross-species homologs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the drugindex CLI.
var rootCmd = &cobra.Command{
	Use:   "drugindex",
	Short: "Batch ETL for the drug search index",
	Long: `drugindex consolidates pharmaceutical drug data (ChEMBL molecules,
mechanisms of action, indications, target and disease linkage) and
gene-orthology data into denormalized, nested records for a search index.

Each pipeline is a subcommand: drugs and orthologs. Input and output
datasets are resolved by name through a YAML manifest.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./drugindex.yaml or ~/.config/drugindex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("drugindex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "drugindex"))
		}
	}

	viper.SetEnvPrefix("DRUGINDEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
