// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"reflect"
	"testing"

	"github.com/pdiddy/affiliation-engine/internal/vocab"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

func TestClassify(t *testing.T) {
	engine := New(vocab.Default())

	tests := []struct {
		name      string
		raw       string
		wantLabel string
		wantCorr  types.Author
	}{
		{
			name:      "single author single department",
			raw:       "J. Doe, Department of Physics, Shivaji University, Kolhapur",
			wantLabel: "Department of Physics",
			wantCorr: types.Author{
				Name:        "J. Doe",
				Affiliation: "Department of Physics, Shivaji University, Kolhapur",
			},
		},
		{
			name:      "excluded affiliate college",
			raw:       "J. Doe, ABC College, Affiliated to Shivaji University",
			wantLabel: types.OtherLabel,
			wantCorr:  types.Author{},
		},
		{
			name:      "unqualified nanoscience variant stays Other",
			raw:       "A, School of Nanoscience and Technology, Shivaji University; B, XYZ College",
			wantLabel: types.OtherLabel,
			wantCorr: types.Author{
				Name:        "A",
				Affiliation: "School of Nanoscience and Technology, Shivaji University",
			},
		},
		{
			name:      "qualified nanoscience variant consolidates",
			raw:       "A, School of Nanoscience and Bio-Technology, Shivaji University",
			wantLabel: "School of Nanoscience and Biotechnology",
			wantCorr: types.Author{
				Name:        "A",
				Affiliation: "School of Nanoscience and Bio-Technology, Shivaji University",
			},
		},
		{
			name: "union across segments preserves first-seen order",
			raw: "A, Department of Physics, Shivaji University; " +
				"B, Department of Chemistry, Shivaji University; " +
				"C, Department of Physics, Shivaji University",
			wantLabel: "Department of Physics; Department of Chemistry",
			wantCorr: types.Author{
				Name:        "C",
				Affiliation: "Department of Physics, Shivaji University",
			},
		},
		{
			name:      "empty affiliation",
			raw:       "",
			wantLabel: types.OtherLabel,
			wantCorr:  types.Author{},
		},
		{
			name:      "no target institution",
			raw:       "A, Department of Physics, Pune University",
			wantLabel: types.OtherLabel,
			wantCorr:  types.Author{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Classify(types.Record{Affiliations: tt.raw})
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Corresponding != tt.wantCorr {
				t.Errorf("corresponding = %+v, want %+v", got.Corresponding, tt.wantCorr)
			}
		})
	}
}

func TestClassifyDeterminism(t *testing.T) {
	engine := New(vocab.Default())
	rec := types.Record{
		Affiliations: "A, Department of Physics, Shivaji University; B, Dept. of Chemistry, Shivaji University",
	}

	first := engine.Classify(rec)
	for i := 0; i < 10; i++ {
		again := engine.Classify(rec)
		if again.Label != first.Label || again.Corresponding != first.Corresponding {
			t.Fatalf("classification not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestSelectCorrespondingLastEligible(t *testing.T) {
	engine := New(vocab.Default())

	// A is excluded, B is eligible, C has no target institution: B is
	// the last (and only) eligible pair.
	raw := "A, ABC College, Affiliated to Shivaji University; " +
		"B, Department of Physics, Shivaji University; " +
		"C, Pune University"
	got := engine.SelectCorresponding(raw)
	want := types.Author{Name: "B", Affiliation: "Department of Physics, Shivaji University"}
	if got != want {
		t.Errorf("SelectCorresponding = %+v, want %+v", got, want)
	}
}

// A segment matched to an institution without multi-department
// retention contributes only its first resolved department.
func TestClassifySingleDepartmentInstitution(t *testing.T) {
	engine := New(vocab.Default())

	raw := "A, Department of Chemistry and Department of Physics, Saveetha University"
	got := engine.Classify(types.Record{Affiliations: raw})
	if got.Label != "Department of Chemistry" {
		t.Errorf("label = %q, want %q", got.Label, "Department of Chemistry")
	}

	// The same text under Shivaji University keeps both departments.
	raw = "A, Department of Chemistry and Department of Physics, Shivaji University"
	got = engine.Classify(types.Record{Affiliations: raw})
	if got.Label != "Department of Chemistry; Department of Physics" {
		t.Errorf("label = %q, want %q", got.Label, "Department of Chemistry; Department of Physics")
	}
}

func TestRunSequentialAndParallelAgree(t *testing.T) {
	engine := New(vocab.Default())

	records := []types.Record{
		{Row: 1, Affiliations: "A, Department of Physics, Shivaji University", CitedBy: 5},
		{Row: 2, Affiliations: "B, Department of Chemistry, Shivaji University; C, Department of Physics, Shivaji University", CitedBy: 3},
		{Row: 3, Affiliations: "D, ABC College, Affiliated to Shivaji University", CitedBy: 7},
		{Row: 4, Affiliations: "E, Dept. of Phys., Shivaji University", CitedBy: 1},
		{Row: 5, Affiliations: ""},
		{Row: 6, Affiliations: "F, School of Nanoscience & Biotechnology, Shivaji University", CitedBy: 2},
		{Row: 7, Affiliations: "G, Department of Botany, Shivaji University", CitedBy: 4},
	}

	sequential := engine.Run(records, 1)
	parallel := engine.Run(records, 4)

	if !reflect.DeepEqual(sequential.Classifications, parallel.Classifications) {
		t.Error("parallel classifications differ from sequential")
	}
	if !reflect.DeepEqual(sequential.Stats, parallel.Stats) {
		t.Error("parallel stats differ from sequential")
	}
}
