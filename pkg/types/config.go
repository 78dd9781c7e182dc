// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InstitutionRule configures one target institution. A segment belongs
// to an institution when the institution's name appears as a
// case-insensitive substring of the segment.
type InstitutionRule struct {
	// Name is the institution name matched against affiliation segments.
	Name string `json:"name" yaml:"name"`

	// EnforceExclusion applies the exclusion-phrase filter to segments
	// matched to this institution. Historical revisions of the ruleset
	// exempted one institution; the default vocabulary enforces
	// exclusion uniformly and the exemption survives only as this flag.
	EnforceExclusion bool `json:"enforce_exclusion" yaml:"enforce_exclusion"`

	// MultiDepartment allows a segment matched to this institution to
	// contribute every resolved department. When false the segment
	// contributes at most its first resolved department.
	MultiDepartment bool `json:"multi_department" yaml:"multi_department"`
}

// AliasRule maps a variant department phrase to its canonical name
// (e.g. "Dept. of Phys." to "Department of Physics").
type AliasRule struct {
	Phrase    string `json:"phrase" yaml:"phrase"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// ConsolidationRule maps regex patterns to a canonical department for
// variant forms that are not simple substrings. Patterns are matched
// case-insensitively against hyphen-normalized segment text.
type ConsolidationRule struct {
	// Canonical is the department name the rule resolves to. Must be a
	// member of the canonical department list.
	Canonical string `json:"canonical" yaml:"canonical"`

	// Patterns are the regular expressions that identify the variants.
	Patterns []string `json:"patterns" yaml:"patterns"`

	// RequireAny lists qualifier substrings, at least one of which must
	// be present in the segment for the rule to fire. Guards generic
	// patterns against resolving to a more specific compound department
	// (the technology/biotechnology disambiguation).
	RequireAny []string `json:"require_any,omitempty" yaml:"require_any,omitempty"`
}

// VocabularyConfig is the serializable form of the classification
// vocabulary. It is immutable once compiled; per-institution rule
// variants are expressed through InstitutionRule flags rather than
// code branches.
type VocabularyConfig struct {
	// Institutions are the target institutions in match order.
	Institutions []InstitutionRule `json:"institutions" yaml:"institutions"`

	// Exclusions are phrases whose presence disqualifies a segment
	// (subsidiary colleges, "Affiliated to", and similar).
	Exclusions []string `json:"exclusions" yaml:"exclusions"`

	// Departments is the ordered canonical department vocabulary.
	Departments []string `json:"departments" yaml:"departments"`

	// Aliases are direct substring substitutions, applied in order.
	Aliases []AliasRule `json:"aliases" yaml:"aliases"`

	// Consolidations are regex rules, applied in order after aliases.
	Consolidations []ConsolidationRule `json:"consolidations" yaml:"consolidations"`
}

// EngineConfig holds settings for a classification run.
type EngineConfig struct {
	// VocabularyPath points at a YAML vocabulary file. Empty selects the
	// built-in default vocabulary.
	VocabularyPath string `json:"vocabulary_path" yaml:"vocabulary_path"`

	// Workers is the number of records classified concurrently
	// (default 1). Classification of one record is pure, so sharding
	// changes nothing but wall time.
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the run-history store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "affiliation-runs.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig holds settings for report writers.
type ReportConfig struct {
	// OutputDir is the directory report files are written into.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Engine EngineConfig `json:"engine" yaml:"engine"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Report ReportConfig `json:"report" yaml:"report"`
}
