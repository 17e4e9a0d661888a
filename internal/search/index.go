// Package search flattens the catalog into one list and filters it by
// substring.
package search

import (
	"strings"
	"sync"

	"partscatalog/internal/catalog"
	"partscatalog/internal/filename"
)

// Result is one searchable catalog entry.
type Result struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Size         string `json:"size"`
	ImagePath    string `json:"imagePath,omitempty"`
	PartNumber   string `json:"partNumber,omitempty"`
	OEMReference string `json:"oemReference,omitempty"`
	Model        string `json:"model,omitempty"`
}

// ImageSource supplies the images for a category and size.
type ImageSource interface {
	Images(category, size string) []catalog.ImageInfo
}

// Index builds the flattened entry list on first use and keeps it for the
// lifetime of the Index.
type Index struct {
	products catalog.Products
	images   ImageSource

	once    sync.Once
	entries []Result
}

// NewIndex creates an Index over the product table and image source.
func NewIndex(products catalog.Products, images ImageSource) *Index {
	return &Index{products: products, images: images}
}

// Entries returns every flattened entry, building the list if needed.
func (idx *Index) Entries() []Result {
	idx.once.Do(func() {
		idx.entries = flatten(idx.products, idx.images)
	})
	return idx.entries
}

// Search returns entries whose title, part number, OEM reference, model,
// category or size contain query, ignoring case. A blank query matches nothing.
func (idx *Index) Search(query string) []Result {
	if strings.TrimSpace(query) == "" {
		return []Result{}
	}
	q := strings.ToLower(query)

	results := []Result{}
	for _, entry := range idx.Entries() {
		if strings.Contains(searchableText(entry), q) {
			results = append(results, entry)
		}
	}
	return results
}

func searchableText(r Result) string {
	var fields []string
	for _, f := range []string{r.Title, r.PartNumber, r.OEMReference, r.Model, r.Category, r.Size} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// flatten lists one entry per product, or one per image for sizes that
// have images but no product rows.
func flatten(products catalog.Products, images ImageSource) []Result {
	var results []Result
	for _, cat := range catalog.Browsable() {
		for _, size := range filename.Sizes {
			rows := products.For(cat.Key, size)
			imgs := images.Images(cat.Key, size)

			for i, p := range rows {
				r := Result{
					ID:           catalog.ProductID(cat.Key, size, i),
					Title:        p.PartNumber,
					Category:     cat.Key,
					Size:         size,
					PartNumber:   p.PartNumber,
					OEMReference: p.OEMCrossReference,
					Model:        p.ModelApplication,
				}
				if r.Title == "" {
					r.Title = cat.Key + " " + size + "mm"
				}
				if i < len(imgs) {
					r.ImagePath = imgs[i].Path
				} else if len(imgs) > 0 {
					r.ImagePath = imgs[0].Path
				}
				results = append(results, r)
			}

			if len(rows) > 0 {
				continue
			}
			for i, img := range imgs {
				title := img.Alt
				if title == "" {
					title = cat.Key + " " + size + "mm"
				}
				results = append(results, Result{
					ID:        catalog.ProductID(cat.Key, size, i),
					Title:     title,
					Category:  cat.Key,
					Size:      size,
					ImagePath: img.Path,
				})
			}
		}
	}
	return results
}
