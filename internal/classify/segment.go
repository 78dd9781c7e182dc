// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify implements the affiliation classification engine:
// segmentation of raw affiliation text, institution filtering,
// department resolution, corresponding-author selection, and
// per-department aggregation.
package classify

import (
	"strings"

	"github.com/pdiddy/affiliation-engine/pkg/types"
)

// Segments splits a raw affiliation field into its ";"-separated
// segments, trimmed, in source order. Empty input yields no segments,
// and so does input that is all delimiters and whitespace.
func Segments(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(raw, ";") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// AuthorPairs decomposes the segments of a raw affiliation field into
// (name, affiliation) pairs. Each segment is split on the FIRST comma
// only, so internal commas stay in the affiliation half. Segments that
// do not split into exactly two non-empty parts carry no author and
// are skipped.
func AuthorPairs(raw string) []types.Author {
	var out []types.Author
	for _, seg := range Segments(raw) {
		name, affiliation, ok := strings.Cut(seg, ",")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		affiliation = strings.TrimSpace(affiliation)
		if name == "" || affiliation == "" {
			continue
		}
		out = append(out, types.Author{Name: name, Affiliation: affiliation})
	}
	return out
}
