// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the affiliation-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affiliation-engine/internal/vocab"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the affiliation-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "affiliation-engine",
	Short: "Classify bibliographic records by institutional department",
	Long: `affiliation-engine classifies bibliographic records (one row per
research paper) by institutional department, using free-text
author/affiliation strings. For each record it selects the
corresponding author for the target institution, assigns canonical
department names from a controlled vocabulary (falling back to
"Other"), and aggregates paper counts and citation totals per
department.

Each operation is a subcommand: classify annotates the input table and
writes reports, stats aggregates only, and runs inspects saved run
history.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./affiliation-engine.yaml or ~/.config/affiliation-engine/config.yaml)")
	rootCmd.PersistentFlags().String("vocabulary", "", "YAML vocabulary file (default: built-in Shivaji University vocabulary)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("affiliation-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "affiliation-engine"))
		}
	}

	viper.SetEnvPrefix("AFFILIATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadVocabulary resolves the vocabulary for a run: the --vocabulary
// flag, then the engine.vocabulary_path config key, then the built-in
// default. It returns the compiled vocabulary and the source it came
// from ("builtin" or the file path).
func loadVocabulary(cmd *cobra.Command) (*vocab.Vocabulary, string, error) {
	path, _ := cmd.Flags().GetString("vocabulary")
	if path == "" {
		path = viper.GetString("engine.vocabulary_path")
	}
	if path == "" {
		return vocab.Default(), "builtin", nil
	}
	v, err := vocab.Load(path)
	if err != nil {
		return nil, "", err
	}
	return v, path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
