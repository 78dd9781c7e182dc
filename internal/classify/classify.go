// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"sync"

	"github.com/pdiddy/affiliation-engine/internal/vocab"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Engine classifies records against a compiled vocabulary. It holds no
// mutable state, so one Engine may classify records from any number of
// goroutines.
type Engine struct {
	vocab *vocab.Vocabulary
}

// New returns an Engine classifying against v.
func New(v *vocab.Vocabulary) *Engine {
	return &Engine{vocab: v}
}

// Vocabulary returns the vocabulary the engine classifies against.
func (e *Engine) Vocabulary() *vocab.Vocabulary {
	return e.vocab
}

// Classify derives the department label and corresponding author for
// one record. Segments are filtered and resolved in order; per-segment
// department sets are unioned preserving first-seen order. A segment
// matched to an institution without multi-department retention
// contributes at most its first resolved department. An empty union
// yields the Other label. Malformed or empty affiliation text degrades
// to zero segments, never an error.
func (e *Engine) Classify(rec types.Record) types.Classification {
	var departments []string
	seen := make(map[string]bool)

	for _, seg := range Segments(rec.Affiliations) {
		rule, ok := Eligible(e.vocab, seg)
		if !ok {
			continue
		}
		resolved := ResolveDepartments(e.vocab, seg)
		if !rule.MultiDepartment && len(resolved) > 1 {
			resolved = resolved[:1]
		}
		for _, dept := range resolved {
			if !seen[dept] {
				seen[dept] = true
				departments = append(departments, dept)
			}
		}
	}

	label := types.OtherLabel
	if len(departments) > 0 {
		label = strings.Join(departments, "; ")
	}

	return types.Classification{
		Departments:   departments,
		Label:         label,
		Corresponding: e.SelectCorresponding(rec.Affiliations),
	}
}

// SelectCorresponding picks the corresponding author from a raw
// affiliation field: the LAST (name, affiliation) pair in segment order
// whose affiliation passes the eligibility filter. Affiliation lists in
// these datasets place the institutionally-affiliated corresponding
// entry toward the end of the author list, hence "last"; this is a
// domain heuristic, not a correctness guarantee. No eligible pair
// yields an empty Author.
func (e *Engine) SelectCorresponding(raw string) types.Author {
	var selected types.Author
	for _, pair := range AuthorPairs(raw) {
		if _, ok := Eligible(e.vocab, pair.Affiliation); ok {
			selected = pair
		}
	}
	return selected
}

// Result bundles the outputs of a full classification run.
type Result struct {
	// Classifications holds one entry per input record, same order.
	Classifications []types.Classification

	// Stats is the aggregated department table: one row per canonical
	// department in vocabulary order, the Other row last.
	Stats []types.DepartmentStat
}

// Run classifies every record and aggregates department statistics.
// With workers > 1 the records are sharded across goroutines; each
// shard accumulates into its own Aggregator and the accumulators are
// merged afterwards, which is safe because per-record classification
// is pure and the merge is plain addition.
func (e *Engine) Run(records []types.Record, workers int) Result {
	classifications := make([]types.Classification, len(records))

	if workers <= 1 || len(records) < 2 {
		agg := NewAggregator(e.vocab)
		for i, rec := range records {
			classifications[i] = e.Classify(rec)
			agg.Add(classifications[i].Label, rec.CitedBy)
		}
		return Result{Classifications: classifications, Stats: agg.Rows()}
	}

	if workers > len(records) {
		workers = len(records)
	}

	aggs := make([]*Aggregator, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		aggs[w] = NewAggregator(e.vocab)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(records); i += workers {
				classifications[i] = e.Classify(records[i])
				aggs[w].Add(classifications[i].Label, records[i].CitedBy)
			}
		}(w)
	}
	wg.Wait()

	total := aggs[0]
	for _, agg := range aggs[1:] {
		total.Merge(agg)
	}
	return Result{Classifications: classifications, Stats: total.Rows()}
}
