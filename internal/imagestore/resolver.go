package imagestore

import (
	"net/url"
	"strings"

	"partscatalog/internal/filename"
)

// Stage names, in cascade order.
const (
	StageExact      = "exact"
	StageNormalized = "normalized"
	StageQuotes     = "quotes"
	StageKeywords   = "keywords"
)

// Stage is one matching strategy of the resolver cascade. Match returns the
// first file in listing order accepted by the strategy.
type Stage struct {
	Name  string
	Match func(requested string, files []string) (string, bool)
}

// Match is a successful resolution.
type Match struct {
	File  string
	Stage string
}

// Stages is the resolver cascade, tried in order until one matches.
var Stages = []Stage{
	{Name: StageExact, Match: matchExact},
	{Name: StageNormalized, Match: matchNormalized},
	{Name: StageQuotes, Match: matchQuotes},
	{Name: StageKeywords, Match: matchKeywords},
}

// DecodeName URL-decodes a requested name. Names that fail to decode are
// returned unchanged.
func DecodeName(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// Resolve finds the file in files that best matches requested. It returns
// ErrNotFound when no stage matches, including when files is empty.
func Resolve(requested string, files []string) (Match, error) {
	for _, stage := range Stages {
		if file, ok := stage.Match(requested, files); ok {
			return Match{File: file, Stage: stage.Name}, nil
		}
	}
	return Match{}, ErrNotFound
}

func matchExact(requested string, files []string) (string, bool) {
	for _, file := range files {
		if file == requested {
			return file, true
		}
	}
	return "", false
}

func matchNormalized(requested string, files []string) (string, bool) {
	want := filename.Normalize(requested)
	for _, file := range files {
		if filename.Normalize(file) == want {
			return file, true
		}
	}
	return "", false
}

func matchQuotes(requested string, files []string) (string, bool) {
	want := filename.ReplaceQuotes(requested)
	for _, file := range files {
		if strings.EqualFold(filename.ReplaceQuotes(file), want) {
			return file, true
		}
	}
	return "", false
}

// matchKeywords compares the space-joined keyword strings of the request and
// each file; either one containing the other is a match. Empty keyword
// strings never match.
func matchKeywords(requested string, files []string) (string, bool) {
	want := strings.Join(filename.Keywords(requested, filename.FileStopWords), " ")
	if want == "" {
		return "", false
	}
	for _, file := range files {
		got := strings.Join(filename.Keywords(file, filename.FileStopWords), " ")
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return file, true
		}
	}
	return "", false
}
