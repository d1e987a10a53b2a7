package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCaser = cases.Fold()

// Normalize reduces a name to a comparable key: Unicode-normalized,
// case-folded, with everything except letters and digits removed.
// Returns "" when nothing survives.
func Normalize(name string) string {
	name = norm.NFKC.String(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	folded := foldCaser.String(name)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Words splits a name into lowercase words on any non-alphanumeric
// boundary. Used by the reconciler to inspect trailing segment markers.
func Words(name string) []string {
	folded := foldCaser.String(strings.TrimSpace(name))
	words := make([]string, 0, 8)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return words
}
