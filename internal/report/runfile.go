// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// RunFile is the on-disk YAML record of one classification run: where
// the input came from, which vocabulary shaped the rules, and the
// resulting statistics. It lets a run be audited later without
// re-reading the input table.
type RunFile struct {
	Input      RunInput               `yaml:"input"`
	Vocabulary RunVocabulary          `yaml:"vocabulary"`
	Summary    RunSummary             `yaml:"summary"`
	Stats      []types.DepartmentStat `yaml:"stats"`
}

// RunInput identifies the source table.
type RunInput struct {
	Path              string `yaml:"path"`
	AffiliationColumn string `yaml:"affiliation_column"`
	Rows              int    `yaml:"rows"`
}

// RunVocabulary records the shape of the vocabulary used, enough to
// notice a rule-table change between runs.
type RunVocabulary struct {
	Source         string `yaml:"source"`
	Institutions   int    `yaml:"institutions"`
	Exclusions     int    `yaml:"exclusions"`
	Departments    int    `yaml:"departments"`
	Aliases        int    `yaml:"aliases"`
	Consolidations int    `yaml:"consolidations"`
}

// RunSummary stores headline numbers and a timestamp.
type RunSummary struct {
	Classified int       `yaml:"classified"`
	Other      int       `yaml:"other"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// NewRunVocabulary summarizes a vocabulary configuration. Source names
// where the vocabulary came from ("builtin" or a file path).
func NewRunVocabulary(source string, cfg types.VocabularyConfig) RunVocabulary {
	return RunVocabulary{
		Source:         source,
		Institutions:   len(cfg.Institutions),
		Exclusions:     len(cfg.Exclusions),
		Departments:    len(cfg.Departments),
		Aliases:        len(cfg.Aliases),
		Consolidations: len(cfg.Consolidations),
	}
}

// WriteRunFile saves a run record to a YAML file.
func WriteRunFile(path string, rf RunFile) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}

// ReadRunFile loads a previously written run record.
func ReadRunFile(path string) (RunFile, error) {
	var rf RunFile
	data, err := os.ReadFile(path)
	if err != nil {
		return rf, fmt.Errorf("reading run file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return rf, fmt.Errorf("parsing run file: %w", err)
	}
	return rf, nil
}
