// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affiliation-engine/internal/classify"
	"github.com/pdiddy/affiliation-engine/internal/dataset"
	"github.com/pdiddy/affiliation-engine/internal/report"
	"github.com/pdiddy/affiliation-engine/internal/store"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <input.csv>",
	Short: "Classify records and write annotated output and statistics",
	Long: `Classify reads a bibliographic CSV export, derives the corresponding
author and department label for every record, aggregates per-department
statistics, and writes the requested outputs: an annotated CSV, a
statistics CSV, a two-sheet XLSX workbook, and a YAML run file.

The affiliation source column is "Affiliations", falling back to
"Authors with affiliations". Citation counts come from "Cited by";
missing or unparsable values count as 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("output", "", "annotated records CSV path")
	classifyCmd.Flags().String("stats", "", "department statistics CSV path")
	classifyCmd.Flags().String("xlsx", "", "two-sheet XLSX workbook path")
	classifyCmd.Flags().String("run-file", "", "YAML run file path")
	classifyCmd.Flags().Int("workers", 1, "records classified concurrently")
	classifyCmd.Flags().Bool("save", false, "save the run into the run-history database")
	classifyCmd.Flags().String("db", "", "run-history database path (default affiliation-runs.db)")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	input := args[0]

	table, err := dataset.ReadFile(input)
	if err != nil {
		return err
	}

	v, source, err := loadVocabulary(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = viper.GetInt("engine.workers")
	}

	engine := classify.New(v)
	result := engine.Run(table.Records, workers)

	other := 0
	for _, cls := range result.Classifications {
		if cls.Label == types.OtherLabel {
			other++
		}
	}
	fmt.Fprintf(os.Stderr, "Classified %d record(s) from %q (%d Other)\n",
		len(table.Records), table.AffiliationColumn, other)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := writeRecordsCSV(path, table, result.Classifications); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("stats"); path != "" {
		if err := writeStatsCSV(path, result.Stats); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		if err := report.WriteWorkbook(path, table, result.Classifications, result.Stats); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("run-file"); path != "" {
		rf := report.RunFile{
			Input: report.RunInput{
				Path:              input,
				AffiliationColumn: table.AffiliationColumn,
				Rows:              len(table.Records),
			},
			Vocabulary: report.NewRunVocabulary(source, v.Config()),
			Summary: report.RunSummary{
				Classified: len(table.Records) - other,
				Other:      other,
				Timestamp:  time.Now().UTC(),
			},
			Stats: result.Stats,
		}
		if err := report.WriteRunFile(path, rf); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		runID, err := saveRun(cmd, input, table, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved run %d\n", runID)
	}

	return nil
}

func writeRecordsCSV(path string, table *dataset.Table, classifications []types.Classification) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteRecordsCSV(f, table, classifications); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeStatsCSV(path string, stats []types.DepartmentStat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteStatsCSV(f, stats); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func saveRun(cmd *cobra.Command, input string, table *dataset.Table, result classify.Result) (int64, error) {
	st, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return 0, err
	}
	defer st.Close()

	meta := store.RunMeta{
		InputPath:         input,
		AffiliationColumn: table.AffiliationColumn,
	}
	return st.SaveRun(context.Background(), meta, table.Records, result.Classifications, result.Stats)
}

// storeConfig resolves the run-history database path: the --db flag,
// then the store.db_path config key, then the package default.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.db_path")
	}
	return types.StoreConfig{DBPath: path}
}
