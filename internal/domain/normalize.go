package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var newlineRemover = strings.NewReplacer("\r\n", "", "\n", "")

// Normalize canonicalizes a free-text zone name: surrounding whitespace is
// trimmed, newlines are removed, runs of spaces collapse to one, and the
// result is upper-cased and NFC-composed. Normalize is idempotent.
//
// Composition runs before and after upper-casing. Some combining marks that
// survive composition (U+0345) upper-case to a standalone letter, so a single
// pass would change on the second application.
func Normalize(raw string) string {
	composed := norm.NFC.String(CleanHeader(raw))
	return norm.NFC.String(strings.ToUpper(composed))
}

// CleanHeader applies Normalize's whitespace rules without changing case.
// Tabular column headers are matched with it.
func CleanHeader(raw string) string {
	s := strings.TrimSpace(raw)
	s = newlineRemover.Replace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
