// Package sanitize provides text sanitization for values written to
// spreadsheets and other user-visible stores.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// formulaPrefixes are the leading characters a spreadsheet parses as the
// start of a formula when values are entered as USER_ENTERED.
const formulaPrefixes = "=+-@"

// Text normalizes user-provided text to NFC so decomposed Hangul jamo (as
// produced by some macOS input paths) is stored as composed syllables.
func Text(s string) string {
	return norm.NFC.String(s)
}

// Cell prepares a value for a spreadsheet cell: it applies Text and prefixes
// a single quote when the value would otherwise be evaluated as a formula.
// The quote is not displayed by the spreadsheet.
func Cell(s string) string {
	s = Text(s)
	if s != "" && strings.ContainsRune(formulaPrefixes, rune(s[0])) {
		return "'" + s
	}
	return s
}
