// Package filename canonicalizes product image filenames and catalog titles
// so that names typed by hand, exported from PDFs and stored on disk can be
// compared with each other.
package filename

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// quoteReplacer maps typographic double quotes and apostrophes to their ASCII forms.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"‟", `"`, // double high-reversed-9 quotation mark
	"″", `"`, // double prime
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9 quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
	"′", "'", // prime
	"´", "'", // acute accent
)

// ReplaceQuotes replaces typographic quote and apostrophe glyphs with plain
// ASCII quotes and leaves everything else untouched.
func ReplaceQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// Normalize lowercases s, composes it to NFC, maps quote variants to ASCII,
// collapses whitespace runs to a single space and trims the ends.
//
// Lowercasing can expose new compositions and composition can produce new
// upper case letters, so the pass is repeated until the output is stable.
// Normalize is idempotent.
func Normalize(s string) string {
	for i := 0; i < maxNormalizePasses; i++ {
		next := normalizePass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// maxNormalizePasses bounds the fixpoint loop in Normalize.
const maxNormalizePasses = 8

func normalizePass(s string) string {
	s = norm.NFC.String(strings.ToLower(s))
	s = quoteReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// CollapseSpaces trims s and collapses internal whitespace runs to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
