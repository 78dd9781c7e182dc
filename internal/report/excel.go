// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/affiliation-engine/internal/dataset"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Sheet names in the exported workbook.
const (
	SheetAffiliations = "Affiliations"
	SheetStatistics   = "Statistics"
)

// WriteWorkbook writes a two-sheet XLSX workbook: "Affiliations" holds
// the annotated input table, "Statistics" the department table.
func WriteWorkbook(path string, t *dataset.Table, classifications []types.Classification, stats []types.DepartmentStat) error {
	if len(classifications) != len(t.Records) {
		return fmt.Errorf("report: %d classifications for %d records", len(classifications), len(t.Records))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetAffiliations); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := writeStringRow(f, SheetAffiliations, 1, recordsHeader(t)); err != nil {
		return err
	}
	for i, rec := range t.Records {
		if err := writeStringRow(f, SheetAffiliations, i+2, recordRow(t, rec, classifications[i])); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetStatistics); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if err := writeStringRow(f, SheetStatistics, 1, []string{"Department", "Papers", "Citations"}); err != nil {
		return err
	}
	for i, s := range stats {
		row := []interface{}{s.Department, s.Papers, s.Citations}
		if err := writeRow(f, SheetStatistics, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeStringRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return writeRow(f, sheet, row, values)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
