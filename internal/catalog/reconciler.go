package catalog

import (
	"strings"
	"unicode/utf8"

	"partscatalog/internal/filename"
)

// Reconciliation is a product matched to an image.
type Reconciliation struct {
	Product ProductRecord
	Index   int // position in the products slice
	Stage   string
}

// Reconciler matches image filenames to product records.
type Reconciler struct {
	overrides map[string]Override
}

// NewReconciler creates a Reconciler using the given override table.
func NewReconciler(overrides map[string]Override) *Reconciler {
	return &Reconciler{overrides: overrides}
}

// Match finds the product depicted by file among products. It tries the
// override table, then an exact part number match, then keyword scoring.
// A false result is a normal outcome, not an error.
func (r *Reconciler) Match(file, category, size string, products []ProductRecord) (Reconciliation, bool) {
	if len(products) == 0 {
		return Reconciliation{}, false
	}
	if idx, ok := r.matchOverride(file, category, size, products); ok {
		return Reconciliation{Product: products[idx], Index: idx, Stage: MatchOverride}, true
	}
	if idx, ok := matchPartNumber(file, products); ok {
		return Reconciliation{Product: products[idx], Index: idx, Stage: MatchExact}, true
	}
	if idx, ok := matchKeywords(file, products); ok {
		return Reconciliation{Product: products[idx], Index: idx, Stage: MatchKeywords}, true
	}
	return Reconciliation{}, false
}

func (r *Reconciler) matchOverride(file, category, size string, products []ProductRecord) (int, bool) {
	o, ok := r.overrides[file]
	if !ok || o.Category != category || o.Size != size {
		return 0, false
	}
	return FindByPartNumber(products, o.PartNumber)
}

// FindByPartNumber returns the index of the first product whose part number
// equals partNumber, ignoring case.
func FindByPartNumber(products []ProductRecord, partNumber string) (int, bool) {
	for i, p := range products {
		if strings.EqualFold(p.PartNumber, partNumber) {
			return i, true
		}
	}
	return 0, false
}

// matchPartNumber compares the filename stem with each part number.
func matchPartNumber(file string, products []ProductRecord) (int, bool) {
	stem := strings.TrimSpace(filename.TrimExt(file))
	want := filename.Normalize(stem)
	for i, p := range products {
		if p.PartNumber == "" {
			continue
		}
		if p.PartNumber == stem || filename.Normalize(p.PartNumber) == want {
			return i, true
		}
	}
	return 0, false
}

// matchKeywords scores every product by the total length of the filename
// keywords found in its part number, model application and features. The
// score doubles when a keyword appears in the part number itself. The first
// product with the strictly highest non-zero score wins.
func matchKeywords(file string, products []ProductRecord) (int, bool) {
	keywords := filename.Keywords(filename.TrimExt(file), filename.ProductStopWords)
	if len(keywords) == 0 {
		return 0, false
	}

	best, bestScore := 0, 0
	for i, p := range products {
		partNumber := filename.Normalize(p.PartNumber)
		text := partNumber + " " + strings.ToLower(p.ModelApplication) + " " + strings.ToLower(p.SpecialFeatures)

		score := 0
		inPartNumber := false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				score += utf8.RuneCountInString(kw)
			}
			if strings.Contains(partNumber, kw) {
				inPartNumber = true
			}
		}
		if inPartNumber {
			score *= 2
		}

		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return best, true
}
