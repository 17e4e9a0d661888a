package filename

import (
	"reflect"
	"testing"
)

func TestStripSizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`430mm (17") Benz Cover Assembly.png`, "Benz Cover Assembly.png"},
		{`395mm(15.5") Benz Clutch Disc Assembly.png`, "Benz Clutch Disc Assembly.png"},
		{`395mm(15.5) AL Diaphragm Cover Assembly.png`, "AL Diaphragm Cover Assembly.png"},
		{`380mm (15')AL Clutch Disc Assembly.png`, "AL Clutch Disc Assembly.png"},
		{`430mm Prima`, "Prima"},
		{`Prima 430mm (17")`, `Prima 430mm (17")`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripSizePrefix(tt.in); got != tt.want {
				t.Errorf("StripSizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		stop StopWords
		want []string
	}{
		{
			name: "file stop words keep generic catalog words",
			in:   `395mm(15.5") 8 Pad Ceramic AL Clutch Disc Assembly.png`,
			stop: FileStopWords,
			want: []string{"ceramic", "clutch", "disc", "assembly.png"},
		},
		{
			name: "product stop words drop generic catalog words",
			in:   `395mm(15.5") 8 Pad Ceramic AL Clutch Disc Assembly`,
			stop: ProductStopWords,
			want: []string{"ceramic"},
		},
		{
			name: "typographic quotes in prefix",
			in:   "430mm (17”) Eicher Pro Cover Assembly",
			stop: ProductStopWords,
			want: []string{"eicher", "pro"},
		},
		{
			name: "short tokens dropped",
			in:   `362mm (14.5") M & M Clutch Disc Assembly`,
			stop: ProductStopWords,
			want: nil,
		},
		{
			name: "nothing left",
			in:   `430mm (17")`,
			stop: FileStopWords,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.in, tt.stop)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAltText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`430mm (17 ") Prima Disc Assembly.png`, "Prima Disc Assembly"},
		{`380mm (15')AL Clutch Disc Assembly.png`, "AL Clutch Disc Assembly"},
		{`352mm (14")  Conventional   CoverAssembly.png`, "Conventional CoverAssembly"},
		{`430mm (17").png`, `430mm (17")`},
		{`plain.PNG`, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := AltText(tt.in); got != tt.want {
				t.Errorf("AltText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
