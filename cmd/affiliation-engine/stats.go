// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affiliation-engine/internal/classify"
	"github.com/pdiddy/affiliation-engine/internal/dataset"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats <input.csv>",
	Short: "Aggregate department statistics without writing reports",
	Long: `Stats classifies every record and prints the department statistics
table: one row per canonical department plus "Other", with paper counts
and citation totals. Departments with no matches appear at zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")
	statsCmd.Flags().Bool("all", false, "include zero-count departments in text output")
	statsCmd.Flags().Int("workers", 1, "records classified concurrently")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	table, err := dataset.ReadFile(args[0])
	if err != nil {
		return err
	}

	v, _, err := loadVocabulary(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = viper.GetInt("engine.workers")
	}

	result := classify.New(v).Run(table.Records, workers)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Stats)
	}

	all, _ := cmd.Flags().GetBool("all")
	printStats(result.Stats, all)
	return nil
}

func printStats(stats []types.DepartmentStat, all bool) {
	fmt.Fprintf(os.Stdout, "%-64s  %8s  %12s\n", "Department", "Papers", "Citations")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 88))

	for _, s := range stats {
		if !all && s.Papers == 0 && s.Department != types.OtherLabel {
			continue
		}
		name := s.Department
		if len(name) > 64 {
			name = name[:61] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-64s  %8d  %12.1f\n", name, s.Papers, s.Citations)
	}
}
