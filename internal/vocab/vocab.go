// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab compiles the classification vocabulary: target
// institutions, exclusion phrases, the canonical department list, and
// the alias and consolidation tables that map variant department
// phrasings onto canonical names.
package vocab

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// institution pairs an InstitutionRule with its normalized needle.
type institution struct {
	rule   types.InstitutionRule
	needle string
}

// alias is a compiled AliasRule.
type alias struct {
	needle    string
	canonical string
}

// consolidation is a compiled ConsolidationRule.
type consolidation struct {
	canonical string
	patterns  []*regexp.Regexp
	require   []string
}

// Vocabulary is the compiled, immutable rule set the engine classifies
// against. Build one with Compile or Load and share it freely: all
// methods are read-only and safe for concurrent use.
type Vocabulary struct {
	cfg types.VocabularyConfig

	institutions   []institution
	exclusions     []string
	departments    []string // canonical display names, vocabulary order
	deptNeedles    []string // normalized forms, same order
	aliases        []alias
	consolidations []consolidation
	members        map[string]bool
}

// Compile validates cfg and builds the normalized lookup tables and
// compiled regexes. It fails on an empty institution or department
// list, on alias or consolidation targets outside the canonical
// department list, and on regex syntax errors.
func Compile(cfg types.VocabularyConfig) (*Vocabulary, error) {
	if len(cfg.Institutions) == 0 {
		return nil, fmt.Errorf("vocabulary: no target institutions configured")
	}
	if len(cfg.Departments) == 0 {
		return nil, fmt.Errorf("vocabulary: no canonical departments configured")
	}

	v := &Vocabulary{
		cfg:     cfg,
		members: make(map[string]bool, len(cfg.Departments)),
	}

	for _, inst := range cfg.Institutions {
		needle := Normalize(inst.Name)
		if needle == "" {
			return nil, fmt.Errorf("vocabulary: institution with empty name")
		}
		v.institutions = append(v.institutions, institution{rule: inst, needle: needle})
	}

	for _, excl := range cfg.Exclusions {
		if n := Normalize(excl); n != "" {
			v.exclusions = append(v.exclusions, n)
		}
	}

	for _, dept := range cfg.Departments {
		if v.members[dept] {
			return nil, fmt.Errorf("vocabulary: duplicate department %q", dept)
		}
		v.members[dept] = true
		v.departments = append(v.departments, dept)
		v.deptNeedles = append(v.deptNeedles, Normalize(dept))
	}

	for _, a := range cfg.Aliases {
		if !v.members[a.Canonical] {
			return nil, fmt.Errorf("vocabulary: alias %q maps to unknown department %q", a.Phrase, a.Canonical)
		}
		v.aliases = append(v.aliases, alias{needle: Normalize(a.Phrase), canonical: a.Canonical})
	}

	for _, c := range cfg.Consolidations {
		if !v.members[c.Canonical] {
			return nil, fmt.Errorf("vocabulary: consolidation maps to unknown department %q", c.Canonical)
		}
		compiled := consolidation{canonical: c.Canonical}
		for _, p := range c.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("vocabulary: pattern %q for %q: %w", p, c.Canonical, err)
			}
			compiled.patterns = append(compiled.patterns, re)
		}
		for _, q := range c.RequireAny {
			if n := Normalize(q); n != "" {
				compiled.require = append(compiled.require, n)
			}
		}
		v.consolidations = append(v.consolidations, compiled)
	}

	return v, nil
}

// Load reads a YAML vocabulary file and compiles it.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	var cfg types.VocabularyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	return Compile(cfg)
}

// Config returns the source configuration the vocabulary was compiled
// from, for provenance in run files and reports.
func (v *Vocabulary) Config() types.VocabularyConfig {
	return v.cfg
}

// Departments returns the canonical department names in vocabulary
// order. The caller must not modify the returned slice.
func (v *Vocabulary) Departments() []string {
	return v.departments
}

// IsCanonical reports whether name is a member of the canonical
// department vocabulary.
func (v *Vocabulary) IsCanonical(name string) bool {
	return v.members[name]
}

// InstitutionFor returns the rule of the first target institution whose
// name occurs in the normalized segment text, and whether one matched.
func (v *Vocabulary) InstitutionFor(normalized string) (types.InstitutionRule, bool) {
	for _, inst := range v.institutions {
		if strings.Contains(normalized, inst.needle) {
			return inst.rule, true
		}
	}
	return types.InstitutionRule{}, false
}

// IsExcluded reports whether any exclusion phrase occurs in the
// normalized segment text.
func (v *Vocabulary) IsExcluded(normalized string) bool {
	for _, excl := range v.exclusions {
		if strings.Contains(normalized, excl) {
			return true
		}
	}
	return false
}

// ExactMatches returns the canonical departments whose normalized names
// occur as substrings of the normalized segment, in vocabulary order.
func (v *Vocabulary) ExactMatches(normalized string) []string {
	var out []string
	for i, needle := range v.deptNeedles {
		if strings.Contains(normalized, needle) {
			out = append(out, v.departments[i])
		}
	}
	return out
}

// AliasMatches returns the canonical targets of alias phrases occurring
// in the normalized segment, in table order.
func (v *Vocabulary) AliasMatches(normalized string) []string {
	var out []string
	for _, a := range v.aliases {
		if strings.Contains(normalized, a.needle) {
			out = append(out, a.canonical)
		}
	}
	return out
}

// PatternMatches returns the canonical targets of consolidation rules
// matching the normalized segment, in table order. A rule with
// qualifier substrings fires only when at least one qualifier is
// present, so a generic pattern never resolves to a more specific
// compound department on unqualified text.
func (v *Vocabulary) PatternMatches(normalized string) []string {
	var out []string
	for _, c := range v.consolidations {
		if len(c.require) > 0 && !containsAny(normalized, c.require) {
			continue
		}
		for _, re := range c.patterns {
			if re.MatchString(normalized) {
				out = append(out, c.canonical)
				break
			}
		}
	}
	return out
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
