// Package normalize provides the text folding used by search and sort.
//
// The original data is Brazilian Portuguese, so comparisons must not care
// about case or diacritics: "Café" and "cafe" are the same word.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold trims, lowercases and strips combining marks from s, producing the
// canonical form used for every case- and accent-insensitive comparison.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; for anything
		// else the lowercased input is still a usable comparison key.
		return s
	}
	return folded
}
