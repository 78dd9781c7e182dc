// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads bibliographic CSV exports into Records. It
// resolves the affiliation source column, coerces citation counts, and
// keeps row-level problems from aborting the batch: only table-level
// structural errors are fatal.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Accepted affiliation source columns, in preference order. Scopus
// exports carry one or the other depending on the export options.
var affiliationColumns = []string{"Affiliations", "Authors with affiliations"}

// citedByColumn is the citation count column. Optional; absent or
// unparsable values coerce to 0.
const citedByColumn = "Cited by"

// ErrMissingAffiliationColumn reports that neither accepted affiliation
// column is present. The whole table is unusable, so this is fatal.
var ErrMissingAffiliationColumn = errors.New(
	`input must contain an "Affiliations" or "Authors with affiliations" column`)

// ErrEmptyInput reports a table with no data rows, distinct from a
// table with malformed rows.
var ErrEmptyInput = errors.New("input contains no data rows")

// Table holds the parsed input: the original header, the resolved
// affiliation column, and one Record per data row.
type Table struct {
	// Header is the source header row, order preserved.
	Header []string

	// AffiliationColumn is the column Records draw affiliation text from.
	AffiliationColumn string

	// Records are the data rows in source order.
	Records []types.Record
}

// ReadFile reads a CSV file into a Table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV from r into a Table. The reader tolerates ragged
// rows and lazy quoting, which both appear in real bibliographic
// exports. Rows shorter than the header are padded with empty cells.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	header := rows[0]
	affCol, affIdx := resolveAffiliationColumn(header)
	if affIdx < 0 {
		return nil, ErrMissingAffiliationColumn
	}
	citedIdx := columnIndex(header, citedByColumn)

	if len(rows) == 1 {
		return nil, ErrEmptyInput
	}

	t := &Table{
		Header:            header,
		AffiliationColumn: affCol,
		Records:           make([]types.Record, 0, len(rows)-1),
	}

	for i, row := range rows[1:] {
		rec := types.Record{
			Row:    i + 1,
			Fields: make(map[string]string, len(header)),
		}
		for j, name := range header {
			if j < len(row) {
				rec.Fields[name] = row[j]
			} else {
				rec.Fields[name] = ""
			}
		}
		if affIdx < len(row) {
			rec.Affiliations = row[affIdx]
		}
		if citedIdx >= 0 && citedIdx < len(row) {
			rec.CitedBy = parseCitations(row[citedIdx])
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// resolveAffiliationColumn returns the first accepted affiliation
// column present in the header and its index, or -1 when none is.
func resolveAffiliationColumn(header []string) (string, int) {
	for _, want := range affiliationColumns {
		if idx := columnIndex(header, want); idx >= 0 {
			return want, idx
		}
	}
	return "", -1
}

// columnIndex finds a header column by name, ignoring case and
// surrounding whitespace. Returns -1 when absent.
func columnIndex(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

// parseCitations coerces a citation cell to a number. Empty or
// unparsable values become 0; a bad cell never fails the row.
func parseCitations(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cell, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
