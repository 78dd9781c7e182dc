// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResolvesAffiliationColumn(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		wantCol  string
		wantAffs []string
	}{
		{
			name: "Affiliations column preferred",
			csv: "Title,Affiliations,Authors with affiliations\n" +
				"Paper,\"Dept A, Univ X\",\"Doe, Dept B\"\n",
			wantCol:  "Affiliations",
			wantAffs: []string{"Dept A, Univ X"},
		},
		{
			name: "falls back to Authors with affiliations",
			csv: "Title,Authors with affiliations\n" +
				"Paper,\"Doe, Dept B, Univ Y\"\n",
			wantCol:  "Authors with affiliations",
			wantAffs: []string{"Doe, Dept B, Univ Y"},
		},
		{
			name: "header match ignores case and whitespace",
			csv: "Title, affiliations \n" +
				"Paper,Univ Z\n",
			wantCol:  "Affiliations",
			wantAffs: []string{"Univ Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Read(strings.NewReader(tt.csv))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCol, table.AffiliationColumn)

			var affs []string
			for _, rec := range table.Records {
				affs = append(affs, rec.Affiliations)
			}
			assert.Equal(t, tt.wantAffs, affs)
		})
	}
}

func TestReadMissingAffiliationColumn(t *testing.T) {
	csv := "Title,Cited by\nPaper,5\n"
	_, err := Read(strings.NewReader(csv))
	require.ErrorIs(t, err, ErrMissingAffiliationColumn)
}

func TestReadEmptyInput(t *testing.T) {
	// No rows at all.
	_, err := Read(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInput)

	// Header only, no data rows.
	_, err = Read(strings.NewReader("Title,Affiliations\n"))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestReadCitationCoercion(t *testing.T) {
	csv := "Affiliations,Cited by\n" +
		"A,5\n" +
		"B,3.5\n" +
		"C,\n" +
		"D,n/a\n" +
		"E,-2\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, table.Records, 5)

	want := []float64{5, 3.5, 0, 0, 0}
	for i, rec := range table.Records {
		assert.Equal(t, want[i], rec.CitedBy, "row %d", rec.Row)
	}
}

func TestReadWithoutCitationColumn(t *testing.T) {
	csv := "Affiliations\nA\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, float64(0), table.Records[0].CitedBy)
}

func TestReadRaggedRows(t *testing.T) {
	// Short rows pad with empty cells instead of failing the batch.
	csv := "Title,Affiliations,Cited by\n" +
		"Paper A\n" +
		"Paper B,\"Dept, Univ\",7\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, table.Records, 2)

	assert.Equal(t, "", table.Records[0].Affiliations)
	assert.Equal(t, float64(0), table.Records[0].CitedBy)
	assert.Equal(t, "Dept, Univ", table.Records[1].Affiliations)
	assert.Equal(t, float64(7), table.Records[1].CitedBy)
}

func TestReadPreservesFields(t *testing.T) {
	csv := "Title,Affiliations,Cited by\n" +
		"Paper A,\"Dept, Univ\",3\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	rec := table.Records[0]
	assert.Equal(t, 1, rec.Row)
	assert.Equal(t, "Paper A", rec.Fields["Title"])
	assert.Equal(t, "Dept, Univ", rec.Fields["Affiliations"])
	assert.Equal(t, "3", rec.Fields["Cited by"])
}
