package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const productsJSON = `{
  "cover_assembly": {
    "430": [
      {"partNumber": "G-E4305-DCA", "oemCrossReference": "3482 083 118", "modelApplication": "Eicher Pro 6031", "specialFeatures": "Heavy duty, Long life", "specs": "430mm, 10 spline"}
    ]
  },
  "clutch_disc": {
    "395": [
      {"partNumber": "395mm(15.5) Benz Clutch Disc Assembly"},
      {"partNumber": "G-B395-CD"}
    ]
  }
}`

func writeProducts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write products file: %v", err)
	}
	return path
}

func TestLoadProducts(t *testing.T) {
	products, err := LoadProducts(writeProducts(t, productsJSON))
	if err != nil {
		t.Fatalf("LoadProducts() error = %v", err)
	}

	if products.Count() != 3 {
		t.Errorf("Count() = %d, want 3", products.Count())
	}

	covers := products.For("cover-assembly", "430")
	if len(covers) != 1 {
		t.Fatalf("For(cover-assembly, 430) returned %d rows, want 1", len(covers))
	}
	p := covers[0]
	if p.PartNumber != "G-E4305-DCA" || p.OEMCrossReference != "3482 083 118" || p.ModelApplication != "Eicher Pro 6031" {
		t.Errorf("For() row = %+v", p)
	}
	if got := p.Features(); len(got) != 2 || got[1] != "Long life" {
		t.Errorf("Features() = %#v", got)
	}
	if got := p.SpecList(); len(got) != 2 || got[0] != "430mm" {
		t.Errorf("SpecList() = %#v", got)
	}

	if got := products.For("clutch-disc", "395"); len(got) != 2 {
		t.Errorf("For(clutch-disc, 395) returned %d rows, want 2", len(got))
	}
	if got := products.For("fly-wheel", "430"); got != nil {
		t.Errorf("For(fly-wheel) = %v, want nil for reserved category", got)
	}
	if got := products.For("gearbox", "430"); got != nil {
		t.Errorf("For(gearbox) = %v, want nil for unknown category", got)
	}
}

func TestLoadProducts_Errors(t *testing.T) {
	if _, err := LoadProducts(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadProducts() expected error for missing file")
	}
	if _, err := LoadProducts(writeProducts(t, "{not json")); err == nil {
		t.Error("LoadProducts() expected error for invalid JSON")
	}
}

func TestLookupCategory(t *testing.T) {
	cat, ok := LookupCategory("clutch-disc")
	if !ok || cat.DataKey != "clutch_disc" || cat.Name != "Clutch Disc" {
		t.Errorf("LookupCategory(clutch-disc) = (%+v, %v)", cat, ok)
	}
	if _, ok := LookupCategory("gearbox"); ok {
		t.Error("LookupCategory(gearbox) expected false")
	}

	browsable := Browsable()
	if len(browsable) != 2 {
		t.Errorf("Browsable() returned %d categories, want 2", len(browsable))
	}
}

func TestShippedProducts_CoverOverrides(t *testing.T) {
	products, err := LoadProducts(filepath.Join("..", "..", "data", "products.json"))
	if err != nil {
		t.Fatalf("LoadProducts() error = %v", err)
	}

	for file, o := range Overrides {
		if _, ok := FindByPartNumber(products.For(o.Category, o.Size), o.PartNumber); !ok {
			t.Errorf("override %q points at %s/%s %q, which is not in data/products.json", file, o.Category, o.Size, o.PartNumber)
		}
	}
}
