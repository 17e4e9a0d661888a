package filename

import "regexp"

var leadingSize = regexp.MustCompile(`^(\d+)mm`)

// Size buckets, in catalog display order.
const (
	Size430 = "430"
	Size395 = "395"
	Size380 = "380"
	Size350 = "350"
	Size360 = "360"
)

// Sizes lists every size bucket in the order the catalog presents them.
var Sizes = []string{Size430, Size395, Size380, Size350, Size360}

// bucketAliases maps the physical size token found in a filename to its bucket.
var bucketAliases = map[string]string{
	"430": Size430,
	"395": Size395,
	"380": Size380,
	"362": Size360,
	"352": Size350,
}

// SizeBucket parses the leading "<digits>mm" token of name and returns the
// size bucket it belongs to. Unknown sizes and names without the token
// report false.
func SizeBucket(name string) (string, bool) {
	m := leadingSize.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	bucket, ok := bucketAliases[m[1]]
	return bucket, ok
}

// IsSize reports whether size is one of the known buckets.
func IsSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}
