// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes classification outputs for downstream
// consumers: an annotated copy of the input table, the department
// statistics table, a two-sheet spreadsheet combining both, and a YAML
// run file with provenance.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/affiliation-engine/internal/dataset"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Derived column names appended to the input table.
const (
	ColCorrespondingAuthor      = "Corresponding Author"
	ColCorrespondingAffiliation = "Corresponding Affiliation"
	ColDepartment               = "Department"
)

// recordsHeader returns the output header: the source header followed
// by the derived columns.
func recordsHeader(t *dataset.Table) []string {
	header := make([]string, 0, len(t.Header)+3)
	header = append(header, t.Header...)
	return append(header, ColCorrespondingAuthor, ColCorrespondingAffiliation, ColDepartment)
}

// recordRow renders one output row: the source cells echoed in header
// order followed by the derived values.
func recordRow(t *dataset.Table, rec types.Record, cls types.Classification) []string {
	row := make([]string, 0, len(t.Header)+3)
	for _, name := range t.Header {
		row = append(row, rec.Fields[name])
	}
	return append(row, cls.Corresponding.Name, cls.Corresponding.Affiliation, cls.Label)
}

// WriteRecordsCSV writes the annotated input table as CSV: every source
// column, then corresponding author, corresponding affiliation, and
// department label.
func WriteRecordsCSV(w io.Writer, t *dataset.Table, classifications []types.Classification) error {
	if len(classifications) != len(t.Records) {
		return fmt.Errorf("report: %d classifications for %d records", len(classifications), len(t.Records))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(recordsHeader(t)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range t.Records {
		if err := cw.Write(recordRow(t, rec, classifications[i])); err != nil {
			return fmt.Errorf("writing row %d: %w", rec.Row, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatsCSV writes the department statistics table as CSV with
// columns Department, Papers, Citations.
func WriteStatsCSV(w io.Writer, stats []types.DepartmentStat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Department", "Papers", "Citations"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, s := range stats {
		row := []string{
			s.Department,
			strconv.Itoa(s.Papers),
			strconv.FormatFloat(s.Citations, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %s: %w", s.Department, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
