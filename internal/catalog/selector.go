package catalog

import (
	"net/url"
	"strings"

	"partscatalog/internal/filename"
)

// Selector picks the images shown for a category and size.
type Selector struct {
	files       map[string][]string
	routePrefix string
}

// NewSelector creates a Selector over a per-size filename table. Image paths
// are built under routePrefix.
func NewSelector(files map[string][]string, routePrefix string) *Selector {
	return &Selector{
		files:       files,
		routePrefix: strings.TrimSuffix(routePrefix, "/"),
	}
}

// Images returns the images for category and size in table order. Files are
// kept when their normalized name contains one of the category keywords;
// categories without keywords get every file of the size. Unknown categories
// and sizes yield nil.
func (s *Selector) Images(category, size string) []ImageInfo {
	cat, ok := LookupCategory(category)
	if !ok {
		return nil
	}

	files := s.files[size]
	if len(files) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(cat.Keywords))
	for _, kw := range cat.Keywords {
		keywords = append(keywords, filename.Normalize(kw))
	}

	var images []ImageInfo
	for _, file := range files {
		if len(keywords) > 0 && !containsAny(filename.Normalize(file), keywords) {
			continue
		}
		images = append(images, s.imageInfo(file))
	}
	return images
}

// ImagePath returns the public URL path serving file.
func (s *Selector) ImagePath(file string) string {
	return s.routePrefix + "/" + url.PathEscape(file)
}

func (s *Selector) imageInfo(file string) ImageInfo {
	return ImageInfo{
		Path:          s.ImagePath(file),
		Alt:           filename.AltText(file),
		ExactFilename: file,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
