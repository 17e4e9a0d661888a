package catalog

import "partscatalog/internal/filename"

// Category describes a browsable product category.
type Category struct {
	Key      string   // URL form, e.g. "cover-assembly"
	Name     string   // display name
	DataKey  string   // key in the product table, empty for reserved categories
	Keywords []string // filename fragments identifying the category's images
	Reserved bool
}

// Categories lists every known category. Reserved categories have no
// product data and no keyword filter.
var Categories = []Category{
	{
		Key:     "cover-assembly",
		Name:    "Cover Assembly",
		DataKey: "cover_assembly",
		Keywords: []string{
			"Cover Assembly",
			"CoverAssembly",
			"Diaphragm Cover Assembly",
			"Diaphragm Assembly",
			"Conventional Cover Assembly",
			"Conventational Cover Assembly",
		},
	},
	{
		Key:     "clutch-disc",
		Name:    "Clutch Disc",
		DataKey: "clutch_disc",
		Keywords: []string{
			"Clutch Disc Assembly",
			"Disc Assembly",
			"Clutch Disc",
			"Ceramic Clutch Disc",
			"Organic Clutch Disc",
			"AL Clutch Disc",
			"Ceramic & Organic",
			"8 Pad Ceramic",
			"AL Organic Cushion Disc",
			"Mahindra Navistar Disc",
		},
	},
	{Key: "repair-kits", Name: "Repair Kits", Reserved: true},
	{Key: "fly-wheel", Name: "Fly Wheel", Reserved: true},
}

// LookupCategory returns the category registered under key.
func LookupCategory(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Browsable returns the categories that carry product data.
func Browsable() []Category {
	var out []Category
	for _, c := range Categories {
		if !c.Reserved {
			out = append(out, c)
		}
	}
	return out
}

// ImageFilenames lists the image files per size bucket exactly as they are
// named in the image directory. Characters must not be retyped: some names
// carry stray spaces and apostrophes that the image endpoint resolves.
var ImageFilenames = map[string][]string{
	filename.Size430: {
		`430mm (17 ") Prima Disc Assembly.png`,
		`430mm (17") Benz Cover Assembly.png`,
		`430mm (17") Benz Disc Assembly.png`,
		`430mm (17") Eicher Pro Cover Assembly.png`,
		`430mm (17") Eicher Pro Disc Assembly.png`,
		`430mm (17") Man Cover Assembly.png`,
		`430mm (17") Prima Cover Assembly.png`,
	},
	filename.Size395: {
		`395mm(15.5 ") Eicher Pro Diaphragm Assembly.png`,
		`395mm(15.5) AL Diaphragm Cover Assembly.png`,
		`395mm(15.5) Mahindra Navistar Disc Assembly.png`,
		`395mm(15.5") 8 Pad Ceramic AL Clutch Disc Assembly.png`,
		`395mm(15.5") AL Organic Cushion Disc Assembly.png`,
		`395mm(15.5") Benz Clutch Disc Assembly.png`,
		`395mm(15.5") Benz Diaphragm Cover Assembly.png`,
		`395mm(15.5") Ceramic & Organic Eicher Pro Disc Assembly.png`,
		`395mm(15.5") Mahindra Navistar Cover Assembly.png`,
	},
	filename.Size380: {
		`380mm (15')AL Clutch Disc Assembly.png`,
		`380mm (15") Ceramic Clutch Disc Assembly.png`,
		`380mm (15") Conventional Cover Assembly.png`,
		`380mm (15") Organic Clutch Disc Assembly.png`,
		`380mm(15") Diaphragm Cover Assembly.png`,
	},
	filename.Size360: {
		`362mm (14.5") Benz Clutch Disc Assembly.png`,
		`362mm (14.5") M & M Clutch Disc Assembly.png`,
		`362mm (14.5") M & M Diaphragm Cover Assembly.png`,
	},
	filename.Size350: {
		`352mm (14") Ceramic Clutch Disc Assembly.png`,
		`352mm (14") Clutch Disc Assembly.png`,
		`352mm (14") Conventational Cover Assembly.png`,
		`352mm (14") Conventional CoverAssembly.png`,
	},
}

// Override pins an image file to a product part number.
type Override struct {
	Category   string
	Size       string
	PartNumber string
}

// Overrides maps exact image filenames to the product they depict. Entries
// here bypass fuzzy matching.
var Overrides = map[string]Override{
	// 430 cover assembly
	`430mm (17") Benz Cover Assembly.png`:       {"cover-assembly", "430", "G-BB4302-DCA"},
	`430mm (17") Eicher Pro Cover Assembly.png`: {"cover-assembly", "430", "G-E4305-DCA"},
	`430mm (17") Man Cover Assembly.png`:        {"cover-assembly", "430", "G-M4311-DCA"},
	`430mm (17") Prima Cover Assembly.png`:      {"cover-assembly", "430", "G-BB4302-DCA"},

	// 430 clutch disc
	`430mm (17 ") Prima Disc Assembly.png`:     {"clutch-disc", "430", `430mm (17) Prima Disc Assembly`},
	`430mm (17") Benz Disc Assembly.png`:       {"clutch-disc", "430", `430mm (17) Benz Disc Assembly`},
	`430mm (17") Eicher Pro Disc Assembly.png`: {"clutch-disc", "430", "G-E4306-CD"},

	// 395 cover assembly
	`395mm(15.5) AL Diaphragm Cover Assembly.png`:       {"cover-assembly", "395", `395mm(15.5) AL Diaphragm Cover Assembly`},
	`395mm(15.5") Benz Diaphragm Cover Assembly.png`:    {"cover-assembly", "395", `395mm(15.5) Benz Diaphragm Cover Assembly`},
	`395mm(15.5 ") Eicher Pro Diaphragm Assembly.png`:   {"cover-assembly", "395", `395mm(15.5) Eicher Pro Diaphragm Assembly`},
	`395mm(15.5") Mahindra Navistar Cover Assembly.png`: {"cover-assembly", "395", `395mm(15.5) Mahindra Navistar Cover Assembly`},

	// 395 clutch disc
	`395mm(15.5) Mahindra Navistar Disc Assembly.png`:             {"clutch-disc", "395", `395mm(15.5) Mahindra Navistar Disc Assembly`},
	`395mm(15.5") 8 Pad Ceramic AL Clutch Disc Assembly.png`:      {"clutch-disc", "395", `395mm(15.5) 8 Pad Ceramic AL Clutch Disc Assembly`},
	`395mm(15.5") AL Organic Cushion Disc Assembly.png`:           {"clutch-disc", "395", `395mm(15.5) AL Organic Cushion Disc Assembly`},
	`395mm(15.5") Benz Clutch Disc Assembly.png`:                  {"clutch-disc", "395", `395mm(15.5) Benz Clutch Disc Assembly`},
	`395mm(15.5") Ceramic & Organic Eicher Pro Disc Assembly.png`: {"clutch-disc", "395", `395mm(15.5) Ceramic & Organic Eicher Pro Disc Assembly`},

	// 380 cover assembly
	`380mm (15") Conventional Cover Assembly.png`: {"cover-assembly", "380", `380mm (15) Conventional Cover Assembly`},
	`380mm(15") Diaphragm Cover Assembly.png`:     {"cover-assembly", "380", `380mm(15) Diaphragm Cover Assembly`},

	// 380 clutch disc
	`380mm (15')AL Clutch Disc Assembly.png`:       {"clutch-disc", "380", `380mm (15')AL Clutch Disc Assembly`},
	`380mm (15") Ceramic Clutch Disc Assembly.png`: {"clutch-disc", "380", `380mm (15) Ceramic Clutch Disc Assembly`},
	`380mm (15") Organic Clutch Disc Assembly.png`: {"clutch-disc", "380", `380mm (15) Organic Clutch Disc Assembly`},

	// 362 files live in the 360 bucket
	`362mm (14.5") M & M Diaphragm Cover Assembly.png`: {"cover-assembly", "360", `362mm (14.5) M & M Diaphragm Cover Assembly`},
	`362mm (14.5") Benz Clutch Disc Assembly.png`:      {"clutch-disc", "360", `362mm (14.5) Benz Clutch Disc Assembly`},
	`362mm (14.5") M & M Clutch Disc Assembly.png`:     {"clutch-disc", "360", `362mm (14.5) M & M Clutch Disc Assembly`},

	// 352 files live in the 350 bucket
	`352mm (14") Conventational Cover Assembly.png`: {"cover-assembly", "350", `352mm (14) Conventational Cover Assembly`},
	`352mm (14") Conventional CoverAssembly.png`:    {"cover-assembly", "350", `352mm (14) Conventional CoverAssembly`},
	`352mm (14") Ceramic Clutch Disc Assembly.png`:  {"clutch-disc", "350", "G-T352-BD / G-T353-BD / G-AL352-BD"},
	`352mm (14") Clutch Disc Assembly.png`:          {"clutch-disc", "350", "G-T352-F510"},
}
