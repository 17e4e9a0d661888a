package filename

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sizePrefix matches a leading "<digits>mm" token with an optional
// parenthesized inch annotation, e.g. `430mm (17") ` or `395mm(15.5) `.
var sizePrefix = regexp.MustCompile(`^\d+mm\s*(?:\([^)]*\))?\s*`)

// StopWords is a set of tokens dropped during keyword extraction.
type StopWords map[string]struct{}

// FileStopWords keeps brand and model tokens intact; it is used when
// matching a requested filename against files on disk.
var FileStopWords = StopWords{
	"mm": {}, "pad": {}, "al": {},
}

// ProductStopWords also drops generic catalog words so that scoring
// against product metadata is driven by brand and model tokens.
var ProductStopWords = StopWords{
	"mm": {}, "pad": {}, "al": {},
	"clutch": {}, "disc": {}, "assembly": {}, "cover": {},
}

// StripSizePrefix removes a leading size prefix from s.
func StripSizePrefix(s string) string {
	return sizePrefix.ReplaceAllString(s, "")
}

// Keywords normalizes s, strips the size prefix and returns the remaining
// whitespace-separated tokens that are longer than two characters and not
// in stop. It returns nil when nothing remains.
func Keywords(s string, stop StopWords) []string {
	fields := strings.Fields(StripSizePrefix(Normalize(s)))

	var keywords []string
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= 2 {
			continue
		}
		if _, skip := stop[field]; skip {
			continue
		}
		keywords = append(keywords, field)
	}
	return keywords
}

// TrimExt removes a trailing ".png" extension, case-insensitively.
func TrimExt(name string) string {
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".png") {
		return name[:len(name)-4]
	}
	return name
}

// AltText derives display text from an image filename: the extension and
// size prefix are removed and whitespace is collapsed. When nothing is left
// the name without its extension is returned.
func AltText(name string) string {
	stem := TrimExt(name)
	alt := CollapseSpaces(StripSizePrefix(stem))
	if alt == "" {
		return stem
	}
	return alt
}
