// Package classify derives the single-character classification key from a
// title string. The key is the bucket every downstream grouping step uses:
// the first letter of the title uppercased, or "#" when a digit appears
// before any letter.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DigitKey is the sentinel key for titles that start with a digit.
const DigitKey = "#"

// foldMarks decomposes to NFD, strips combining marks, and recomposes, so
// accented initials ("É", "Ü") land on their base letter. Accent-folding
// keeps the key space at A-Z plus the digit sentinel for Latin-script titles.
var foldMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// FirstLetter returns the classification key for title. The boolean result
// is false when no key is defined: an empty or all-symbol title, or one that
// ends before any letter or digit is seen. Rows without a key must be
// excluded from every aggregation.
func FirstLetter(title string) (string, bool) {
	folded, _, err := transform.String(foldMarks, title)
	if err != nil {
		// Fold failures are non-fatal; classify the raw string instead.
		folded = title
	}
	for _, r := range strings.TrimSpace(folded) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r)), true
		}
		if unicode.IsDigit(r) {
			return DigitKey, true
		}
	}
	return "", false
}
