// Package catalog holds the product catalog tables and pairs product images
// with the product metadata they depict.
package catalog

// ProductRecord is one row of the static product table.
type ProductRecord struct {
	PartNumber        string `json:"partNumber"`
	OEMCrossReference string `json:"oemCrossReference,omitempty"`
	ModelApplication  string `json:"modelApplication,omitempty"`
	SpecialFeatures   string `json:"specialFeatures,omitempty"` // comma separated
	Specs             string `json:"specs,omitempty"`           // comma separated
}

// Features returns the special features as a trimmed list.
func (p ProductRecord) Features() []string {
	return SplitList(p.SpecialFeatures)
}

// SpecList returns the specs as a trimmed list.
func (p ProductRecord) SpecList() []string {
	return SplitList(p.Specs)
}

// ImageInfo is a display-ready view of an image file.
type ImageInfo struct {
	Path          string `json:"path"`
	Alt           string `json:"alt"`
	ExactFilename string `json:"exactFilename"`
}

// Match stages reported by the reconciler and by Pair.
const (
	MatchOverride = "override"
	MatchExact    = "exact"
	MatchKeywords = "keywords"
	MatchPosition = "position"
	MatchNone     = "none"
)

// ProductDisplay pairs an image with the product it shows, if any.
type ProductDisplay struct {
	Index        int            `json:"index"`
	Image        *ImageInfo     `json:"image,omitempty"`
	Product      *ProductRecord `json:"product,omitempty"`
	ProductIndex int            `json:"productIndex"` // -1 when Product is nil
	MatchedBy    string         `json:"matchedBy"`
}
