// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"github.com/pdiddy/affiliation-engine/internal/vocab"
)

// ResolveDepartments maps one eligible segment to its canonical
// departments. Three passes run in a fixed order, accumulating a
// deduplicated list: exact substring matches over the canonical
// vocabulary, then alias-table hits, then consolidation-pattern hits.
// Emission order is therefore deterministic: vocabulary order first,
// then alias and pattern hits in table order.
//
// Every returned name is a member of the canonical vocabulary; aliases
// and patterns resolve to their canonical targets, never to the
// variant phrase. No match returns nil.
func ResolveDepartments(v *vocab.Vocabulary, segment string) []string {
	normalized := vocab.Normalize(segment)

	var out []string
	seen := make(map[string]bool)
	add := func(names []string) {
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}

	add(v.ExactMatches(normalized))
	add(v.AliasMatches(normalized))
	add(v.PatternMatches(normalized))
	return out
}
