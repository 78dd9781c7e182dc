// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Shivaji University", "shivaji university"},
		{"hyphens become spaces", "Agro-Chemicals", "agro chemicals"},
		{"en dash", "Bio–Technology", "bio technology"},
		{"collapses whitespace", "  Department \t of  Physics ", "department of physics"},
		{"empty", "", ""},
		{"fullwidth folds via NFKC", "Ｄｅｐａｒｔｍｅｎｔ", "department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCompileValidation(t *testing.T) {
	base := func() types.VocabularyConfig {
		return types.VocabularyConfig{
			Institutions: []types.InstitutionRule{
				{Name: "Shivaji University", EnforceExclusion: true, MultiDepartment: true},
			},
			Departments: []string{"Department of Physics"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*types.VocabularyConfig)
		errMsg string
	}{
		{
			name:   "valid minimal config",
			mutate: func(cfg *types.VocabularyConfig) {},
		},
		{
			name: "no institutions",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Institutions = nil
			},
			errMsg: "no target institutions",
		},
		{
			name: "no departments",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Departments = nil
			},
			errMsg: "no canonical departments",
		},
		{
			name: "duplicate department",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Departments = append(cfg.Departments, "Department of Physics")
			},
			errMsg: "duplicate department",
		},
		{
			name: "alias to unknown department",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Aliases = []types.AliasRule{{Phrase: "Dept. of Chem.", Canonical: "Department of Chemistry"}}
			},
			errMsg: "unknown department",
		},
		{
			name: "consolidation to unknown department",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Consolidations = []types.ConsolidationRule{{Canonical: "Nope", Patterns: []string{`x`}}}
			},
			errMsg: "unknown department",
		},
		{
			name: "bad regex",
			mutate: func(cfg *types.VocabularyConfig) {
				cfg.Consolidations = []types.ConsolidationRule{{Canonical: "Department of Physics", Patterns: []string{`(`}}}
			},
			errMsg: "pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			v, err := Compile(cfg)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v)
		})
	}
}

func TestDefaultVocabularyClosure(t *testing.T) {
	// Every alias and consolidation target must be a member of the
	// canonical department list, so the resolver can never emit a raw
	// variant phrase.
	cfg := DefaultConfig()
	v, err := Compile(cfg)
	require.NoError(t, err)

	for _, a := range cfg.Aliases {
		assert.True(t, v.IsCanonical(a.Canonical), "alias %q target %q not canonical", a.Phrase, a.Canonical)
	}
	for _, c := range cfg.Consolidations {
		assert.True(t, v.IsCanonical(c.Canonical), "consolidation target %q not canonical", c.Canonical)
	}
}

func TestInstitutionFor(t *testing.T) {
	v := Default()

	rule, ok := v.InstitutionFor(Normalize("Department of Physics, Shivaji University, Kolhapur"))
	require.True(t, ok)
	assert.Equal(t, "Shivaji University", rule.Name)
	assert.True(t, rule.MultiDepartment)

	rule, ok = v.InstitutionFor(Normalize("Saveetha University, Chennai"))
	require.True(t, ok)
	assert.Equal(t, "Saveetha University", rule.Name)
	assert.False(t, rule.MultiDepartment)

	_, ok = v.InstitutionFor(Normalize("Some Other University"))
	assert.False(t, ok)
}

func TestIsExcluded(t *testing.T) {
	v := Default()

	assert.True(t, v.IsExcluded(Normalize("ABC College, Affiliated to Shivaji University")))
	assert.True(t, v.IsExcluded(Normalize("Rajarambapu Institute of Technology")))
	// Hyphen-normalized exclusion still matches.
	assert.True(t, v.IsExcluded(Normalize("D. Y. Patil Education Society")))
	assert.False(t, v.IsExcluded(Normalize("Department of Physics, Shivaji University")))
}

func TestPatternMatchesQualifier(t *testing.T) {
	v := Default()

	// Generic "School of Nanoscience and Technology" lacks a qualifying
	// term and must not consolidate.
	assert.Empty(t, v.PatternMatches(Normalize("School of Nanoscience and Technology, Shivaji University")))

	// Qualified variants consolidate to the canonical compound name.
	for _, seg := range []string{
		"School of Nanoscience and Bio-Technology, Shivaji University",
		"School of Nanoscience & Biotechnology, Shivaji University",
		"Department of Nanoscience & Nanotechnology, Shivaji University",
	} {
		got := v.PatternMatches(Normalize(seg))
		assert.Equal(t, []string{"School of Nanoscience and Biotechnology"}, got, "segment %q", seg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	data := `
institutions:
  - name: Shivaji University
    enforce_exclusion: true
    multi_department: true
exclusions:
  - College
departments:
  - Department of Physics
  - Department of Chemistry
aliases:
  - phrase: Dept. of Phys.
    canonical: Department of Physics
consolidations:
  - canonical: Department of Chemistry
    patterns:
      - 'analytical chemistry (lab|laboratory)'
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Department of Physics", "Department of Chemistry"}, v.Departments())
	assert.Equal(t, []string{"Department of Physics"}, v.AliasMatches(Normalize("Dept. of Phys., Shivaji University")))
	assert.Equal(t, []string{"Department of Chemistry"}, v.PatternMatches(Normalize("Analytical Chemistry Laboratory")))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
