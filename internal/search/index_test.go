package search

import (
	"testing"

	"partscatalog/internal/catalog"
)

type countingSource struct {
	selector *catalog.Selector
	calls    int
}

func (s *countingSource) Images(category, size string) []catalog.ImageInfo {
	s.calls++
	return s.selector.Images(category, size)
}

func testProducts() catalog.Products {
	return catalog.Products{
		"cover_assembly": {
			"430": {
				{PartNumber: "G-BB4302-DCA", OEMCrossReference: "3482 000 470", ModelApplication: "Benz Actros"},
				{PartNumber: "G-E4305-DCA", ModelApplication: "Eicher Pro 6031"},
			},
		},
		"clutch_disc": {
			"380": {
				{PartNumber: "", ModelApplication: "Tata LPT"},
			},
		},
	}
}

func newTestIndex() (*Index, *countingSource) {
	source := &countingSource{selector: catalog.NewSelector(catalog.ImageFilenames, "/img")}
	return NewIndex(testProducts(), source), source
}

func TestIndex_Search(t *testing.T) {
	index, _ := newTestIndex()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "part number, case-insensitive",
			query:   "g-e4305",
			wantIDs: []string{"cover-assembly-430-1"},
		},
		{
			name:    "oem reference",
			query:   "3482 000",
			wantIDs: []string{"cover-assembly-430-0"},
		},
		{
			name:    "model application",
			query:   "TATA",
			wantIDs: []string{"clutch-disc-380-0"},
		},
		{
			name:    "image-only entries by alt text",
			query:   "Mahindra Navistar Cover",
			wantIDs: []string{"cover-assembly-395-3"},
		},
		{
			name:    "blank query matches nothing",
			query:   "   ",
			wantIDs: []string{},
		},
		{
			name:    "no hits",
			query:   "scania",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := index.Search(tt.query)
			if results == nil {
				t.Fatal("Search() returned nil, want empty slice")
			}
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("Search(%q) returned %d results (%+v), want %d", tt.query, len(results), results, len(tt.wantIDs))
			}
			for i, r := range results {
				if r.ID != tt.wantIDs[i] {
					t.Errorf("Search(%q)[%d].ID = %q, want %q", tt.query, i, r.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestIndex_Entries(t *testing.T) {
	index, source := newTestIndex()

	entries := index.Entries()
	callsAfterBuild := source.calls
	_ = index.Entries()
	_ = index.Search("benz")

	if source.calls != callsAfterBuild {
		t.Errorf("index rebuilt: image source called %d times after first build", source.calls-callsAfterBuild)
	}

	byID := make(map[string]Result, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	first, ok := byID["cover-assembly-430-0"]
	if !ok {
		t.Fatal("Entries() missing cover-assembly-430-0")
	}
	if first.Title != "G-BB4302-DCA" || first.Size != "430" || first.Category != "cover-assembly" {
		t.Errorf("Entries() first product = %+v", first)
	}
	if first.ImagePath == "" {
		t.Error("Entries() product entry should carry the positional image path")
	}

	untitled, ok := byID["clutch-disc-380-0"]
	if !ok {
		t.Fatal("Entries() missing clutch-disc-380-0")
	}
	if untitled.Title != "clutch-disc 380mm" {
		t.Errorf("Entries() untitled product title = %q, want fallback", untitled.Title)
	}

	imageOnly, ok := byID["clutch-disc-395-0"]
	if !ok {
		t.Fatal("Entries() missing image-only entry clutch-disc-395-0")
	}
	if imageOnly.PartNumber != "" || imageOnly.ImagePath == "" {
		t.Errorf("Entries() image-only entry = %+v", imageOnly)
	}
}
