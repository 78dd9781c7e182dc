// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/affiliation-engine/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the saved run history",
	Long: `Runs lists classification runs saved with "classify --save" and shows
the statistics table of an individual run.`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the statistics table of a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.PersistentFlags().String("db", "", "run-history database path (default affiliation-runs.db)")
	runsShowCmd.Flags().Bool("all", false, "include zero-count departments")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-20s  %-40s  %8s  %8s\n",
		"ID", "Created", "Input", "Records", "Other")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, m := range runs {
		input := m.InputPath
		if len(input) > 40 {
			input = "..." + input[len(input)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-6d  %-20s  %-40s  %8d  %8d\n",
			m.ID, m.CreatedAt.Format(time.DateTime), input, m.Records, m.OtherRecords)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	st, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.RunStats(context.Background(), runID)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	printStats(stats, all)
	return nil
}
