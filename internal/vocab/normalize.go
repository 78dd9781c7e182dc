// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// hyphenReplacer folds the hyphen and dash forms that appear in
// affiliation exports into a plain space, so "Agro-Chemicals" and
// "Agro Chemicals" compare equal after normalization.
var hyphenReplacer = strings.NewReplacer(
	"-", " ",
	"‐", " ", // hyphen
	"‑", " ", // non-breaking hyphen
	"–", " ", // en dash
	"—", " ", // em dash
)

// Normalize prepares text for matching: Unicode NFKC fold, lower-case,
// hyphens to spaces, whitespace collapsed. All vocabulary needles and
// all segment text go through the same function so substring matching
// stays symmetric.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = hyphenReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
