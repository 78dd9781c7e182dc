// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/affiliation-engine/internal/vocab"
	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Aggregator tallies paper counts and citation totals per canonical
// department. The accumulate operation is commutative and associative,
// so per-shard Aggregators can be combined with Merge in any order.
type Aggregator struct {
	order []string // canonical departments, Other last
	stats map[string]*types.DepartmentStat
}

// NewAggregator returns an empty accumulator over v's vocabulary plus
// the Other bucket. Every department appears in the output even at
// zero.
func NewAggregator(v *vocab.Vocabulary) *Aggregator {
	departments := v.Departments()
	a := &Aggregator{
		order: make([]string, 0, len(departments)+1),
		stats: make(map[string]*types.DepartmentStat, len(departments)+1),
	}
	for _, dept := range departments {
		a.order = append(a.order, dept)
		a.stats[dept] = &types.DepartmentStat{Department: dept}
	}
	a.order = append(a.order, types.OtherLabel)
	a.stats[types.OtherLabel] = &types.DepartmentStat{Department: types.OtherLabel}
	return a
}

// Add tallies one record. The label is split on "; "; each listed
// department receives a full paper count and the record's citations,
// so a record with k departments contributes k separate increments.
// An empty label, the Other label, or a name outside the vocabulary
// all count under Other, at most once per record.
func (a *Aggregator) Add(label string, citations float64) {
	other := false
	for _, name := range strings.Split(label, "; ") {
		name = strings.TrimSpace(name)
		stat, ok := a.stats[name]
		if !ok || name == types.OtherLabel {
			other = true
			continue
		}
		stat.Papers++
		stat.Citations += citations
	}
	if other || label == "" {
		stat := a.stats[types.OtherLabel]
		stat.Papers++
		stat.Citations += citations
	}
}

// Merge folds another accumulator built over the same vocabulary into
// this one.
func (a *Aggregator) Merge(other *Aggregator) {
	for name, stat := range other.stats {
		mine := a.stats[name]
		mine.Papers += stat.Papers
		mine.Citations += stat.Citations
	}
}

// Rows returns the statistics table in stable order: canonical
// departments in vocabulary order, the Other row last.
func (a *Aggregator) Rows() []types.DepartmentStat {
	rows := make([]types.DepartmentStat, 0, len(a.order))
	for _, name := range a.order {
		rows = append(rows, *a.stats[name])
	}
	return rows
}
