// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"github.com/pdiddy/affiliation-engine/internal/vocab"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Eligible decides whether one affiliation segment may contribute to
// classification. A segment qualifies when it names a target
// institution and, if that institution enforces exclusion, contains no
// exclusion phrase. Exclusion wins over inclusion: a segment naming
// both the target university and an excluded subsidiary college is
// rejected outright.
//
// The matched institution's rule is returned so callers can apply its
// per-institution behavior (exclusion enforcement, multi-department
// retention).
func Eligible(v *vocab.Vocabulary, segment string) (types.InstitutionRule, bool) {
	normalized := vocab.Normalize(segment)
	rule, ok := v.InstitutionFor(normalized)
	if !ok {
		return types.InstitutionRule{}, false
	}
	if rule.EnforceExclusion && v.IsExcluded(normalized) {
		return types.InstitutionRule{}, false
	}
	return rule, true
}
