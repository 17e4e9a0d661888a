package catalog

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidProductID is returned when a product ID has no trailing index.
var ErrInvalidProductID = errors.New("invalid product id")

// Pair attaches a product to each image. Images the reconciler cannot match
// take the product at the same position, if there is one.
func Pair(r *Reconciler, category, size string, images []ImageInfo, products []ProductRecord) []ProductDisplay {
	displays := make([]ProductDisplay, 0, len(images))
	for i := range images {
		img := images[i]
		d := ProductDisplay{Index: i, Image: &img, ProductIndex: -1, MatchedBy: MatchNone}

		if m, ok := r.Match(img.ExactFilename, category, size, products); ok {
			p := m.Product
			d.Product, d.ProductIndex, d.MatchedBy = &p, m.Index, m.Stage
		} else if i < len(products) {
			p := products[i]
			d.Product, d.ProductIndex, d.MatchedBy = &p, i, MatchPosition
		}
		displays = append(displays, d)
	}
	return displays
}

// ProductID formats the ID used in product URLs and search results.
func ProductID(category, size string, index int) string {
	return category + "-" + size + "-" + strconv.Itoa(index)
}

// ParseProductIndex extracts the trailing index from a product ID such as
// "cover-assembly-430-2".
func ParseProductIndex(id string) (int, error) {
	tail := id
	if i := strings.LastIndex(id, "-"); i >= 0 {
		tail = id[i+1:]
	}
	idx, err := strconv.Atoi(tail)
	if err != nil || idx < 0 {
		return 0, ErrInvalidProductID
	}
	return idx, nil
}

// Detail returns the display for the product at index. The product comes
// from its list position; its image is the one paired with it, falling back
// to the image at the same position. When there is no product at index the
// image display at that position is returned on its own.
func Detail(displays []ProductDisplay, images []ImageInfo, products []ProductRecord, index int) (ProductDisplay, bool) {
	if index < len(products) {
		p := products[index]
		d := ProductDisplay{Index: index, Product: &p, ProductIndex: index, MatchedBy: MatchPosition}
		for _, disp := range displays {
			if disp.ProductIndex == index {
				d.Image, d.MatchedBy = disp.Image, disp.MatchedBy
				return d, true
			}
		}
		if index < len(images) {
			img := images[index]
			d.Image = &img
		}
		return d, true
	}
	if index < len(displays) {
		return displays[index], true
	}
	return ProductDisplay{}, false
}

// SplitList splits a comma separated field into trimmed, non-empty items.
func SplitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
