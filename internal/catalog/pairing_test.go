package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestPair(t *testing.T) {
	selector := NewSelector(ImageFilenames, "/api/images/products")
	reconciler := NewReconciler(Overrides)

	images := selector.Images("cover-assembly", "430")
	products := []ProductRecord{
		{PartNumber: "G-M4311-DCA", ModelApplication: "MAN"},
		{PartNumber: "G-BB4302-DCA", ModelApplication: "Benz"},
		{PartNumber: "G-X999", ModelApplication: "Unlisted"},
	}

	displays := Pair(reconciler, "cover-assembly", "430", images, products)
	if len(displays) != len(images) {
		t.Fatalf("Pair() returned %d displays, want %d", len(displays), len(images))
	}

	tests := []struct {
		file      string
		wantPart  string
		wantIndex int
		wantBy    string
	}{
		{`430mm (17") Benz Cover Assembly.png`, "G-BB4302-DCA", 1, MatchOverride},
		// G-E4305-DCA is not in the list; no keywords overlap, so position 1 is used.
		{`430mm (17") Eicher Pro Cover Assembly.png`, "G-BB4302-DCA", 1, MatchPosition},
		{`430mm (17") Man Cover Assembly.png`, "G-M4311-DCA", 0, MatchOverride},
		{`430mm (17") Prima Cover Assembly.png`, "G-BB4302-DCA", 1, MatchOverride},
	}

	for i, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			d := displays[i]
			if d.Image == nil || d.Image.ExactFilename != tt.file {
				t.Fatalf("display %d image = %+v, want %q", i, d.Image, tt.file)
			}
			if d.Product == nil {
				t.Fatalf("display %d has no product", i)
			}
			if d.Product.PartNumber != tt.wantPart || d.ProductIndex != tt.wantIndex || d.MatchedBy != tt.wantBy {
				t.Errorf("display %d = (%q, %d, %q), want (%q, %d, %q)",
					i, d.Product.PartNumber, d.ProductIndex, d.MatchedBy, tt.wantPart, tt.wantIndex, tt.wantBy)
			}
		})
	}
}

func TestPair_NoProducts(t *testing.T) {
	images := []ImageInfo{{ExactFilename: "Scania Cover Assembly.png"}}

	displays := Pair(NewReconciler(nil), "cover-assembly", "430", images, nil)
	if len(displays) != 1 {
		t.Fatalf("Pair() returned %d displays, want 1", len(displays))
	}
	if displays[0].Product != nil || displays[0].ProductIndex != -1 || displays[0].MatchedBy != MatchNone {
		t.Errorf("Pair() display = %+v, want image without product", displays[0])
	}
}

func TestParseProductIndex(t *testing.T) {
	tests := []struct {
		id      string
		want    int
		wantErr bool
	}{
		{"cover-assembly-430-2", 2, false},
		{"7", 7, false},
		{"clutch-disc-395-", 0, true},
		{"clutch-disc-395-x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseProductIndex(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidProductID) {
					t.Errorf("ParseProductIndex(%q) error = %v, want ErrInvalidProductID", tt.id, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseProductIndex(%q) = (%d, %v), want (%d, nil)", tt.id, got, err, tt.want)
			}
		})
	}
}

func TestProductID(t *testing.T) {
	id := ProductID("clutch-disc", "395", 3)
	if id != "clutch-disc-395-3" {
		t.Errorf("ProductID() = %q", id)
	}
	idx, err := ParseProductIndex(id)
	if err != nil || idx != 3 {
		t.Errorf("ParseProductIndex(ProductID()) = (%d, %v), want (3, nil)", idx, err)
	}
}

func TestDetail(t *testing.T) {
	images := []ImageInfo{
		{ExactFilename: "a.png"},
		{ExactFilename: "b.png"},
	}
	products := []ProductRecord{
		{PartNumber: "P0"},
		{PartNumber: "P1"},
		{PartNumber: "P2"},
	}
	p0, p1 := products[0], products[1]
	displays := []ProductDisplay{
		{Index: 0, Image: &images[0], Product: &p1, ProductIndex: 1, MatchedBy: MatchKeywords},
		{Index: 1, Image: &images[1], Product: &p0, ProductIndex: 0, MatchedBy: MatchOverride},
	}

	tests := []struct {
		name      string
		index     int
		wantOK    bool
		wantPart  string
		wantImage string
		wantBy    string
	}{
		{"product takes its paired image", 0, true, "P0", "b.png", MatchOverride},
		{"second product paired by keywords", 1, true, "P1", "a.png", MatchKeywords},
		{"unpaired product has no image beyond the list", 2, true, "P2", "", MatchPosition},
		{"out of range", 5, false, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detail(displays, images, products, tt.index)
			if ok != tt.wantOK {
				t.Fatalf("Detail() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Product == nil || got.Product.PartNumber != tt.wantPart {
				t.Errorf("Detail() product = %+v, want %q", got.Product, tt.wantPart)
			}
			gotImage := ""
			if got.Image != nil {
				gotImage = got.Image.ExactFilename
			}
			if gotImage != tt.wantImage {
				t.Errorf("Detail() image = %q, want %q", gotImage, tt.wantImage)
			}
			if got.MatchedBy != tt.wantBy {
				t.Errorf("Detail() matchedBy = %q, want %q", got.MatchedBy, tt.wantBy)
			}
		})
	}
}

func TestDetail_ImageOnly(t *testing.T) {
	images := []ImageInfo{{ExactFilename: "a.png"}}
	displays := []ProductDisplay{{Index: 0, Image: &images[0], ProductIndex: -1, MatchedBy: MatchNone}}

	got, ok := Detail(displays, images, nil, 0)
	if !ok {
		t.Fatal("Detail() expected image-only display")
	}
	if got.Product != nil || got.Image.ExactFilename != "a.png" {
		t.Errorf("Detail() = %+v, want image-only display", got)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" Heavy duty ,, Long life,  ")
	want := []string{"Heavy duty", "Long life"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList() = %#v, want %#v", got, want)
	}
	if SplitList("") != nil {
		t.Error("SplitList(\"\") should return nil")
	}
}
