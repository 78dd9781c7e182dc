// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures used across the
// affiliation-engine pipeline stages.
package types

// Record holds one bibliographic row as read from the input table.
// The engine never mutates a Record; derived values live in
// Classification.
type Record struct {
	// Row is the 1-based data row number in the source table, kept for
	// provenance in reports and the run store.
	Row int `json:"row" yaml:"row"`

	// Affiliations is the raw affiliation field, segments separated by
	// ";". May be empty when the source cell was blank.
	Affiliations string `json:"affiliations" yaml:"affiliations"`

	// CitedBy is the citation count for the paper. Absent or unparsable
	// source values are coerced to 0 at ingest time.
	CitedBy float64 `json:"cited_by" yaml:"cited_by"`

	// Fields preserves the original row cells keyed by header name so
	// report writers can echo the input table alongside derived columns.
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Author is a (name, affiliation) pair extracted from one affiliation
// segment of the form "Name, Affiliation...".
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// OtherLabel is the sentinel department label for records with no
// qualifying department match.
const OtherLabel = "Other"

// Classification holds the derived outputs for one record.
type Classification struct {
	// Departments is the ordered, deduplicated list of canonical
	// department names resolved for the record. Empty means no match.
	Departments []string `json:"departments" yaml:"departments"`

	// Label is Departments joined with "; ", or OtherLabel when
	// Departments is empty.
	Label string `json:"label" yaml:"label"`

	// Corresponding is the selected corresponding author. Both fields
	// are empty when no eligible author was found.
	Corresponding Author `json:"corresponding" yaml:"corresponding"`
}

// DepartmentStat is one row of the aggregated statistics table.
type DepartmentStat struct {
	// Department is a canonical department name or OtherLabel.
	Department string `json:"department" yaml:"department"`

	// Papers is the number of records attributed to the department. A
	// record with k departments contributes one full count to each.
	Papers int `json:"papers" yaml:"papers"`

	// Citations is the sum of CitedBy over attributed records.
	Citations float64 `json:"citations" yaml:"citations"`
}
