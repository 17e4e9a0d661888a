package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Products is the static product table: data key, then size, then rows in
// catalog order.
type Products map[string]map[string][]ProductRecord

// LoadProducts reads the product table from a JSON file.
func LoadProducts(path string) (Products, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products Products
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products file %s: %w", path, err)
	}
	return products, nil
}

// For returns the products for a category key such as "clutch-disc" and a size.
func (p Products) For(category, size string) []ProductRecord {
	cat, ok := LookupCategory(category)
	if !ok || cat.DataKey == "" {
		return nil
	}
	return p[cat.DataKey][size]
}

// Count returns the total number of product rows.
func (p Products) Count() int {
	n := 0
	for _, sizes := range p {
		for _, rows := range sizes {
			n += len(rows)
		}
	}
	return n
}
