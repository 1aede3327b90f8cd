package tmdb

import "strings"

// Image size names exposed to templates.
const (
	SizeOriginal = "original"
	SizeMedium   = "medium"
	SizeSmall    = "small"
)

// ImageURLs holds the poster/profile URL prefix for each supported size.
type ImageURLs struct {
	Original string
	Medium   string
	Small    string
}

// NewImageURLs builds the size table under base (e.g. https://image.tmdb.org).
func NewImageURLs(base string) ImageURLs {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return ImageURLs{
		Original: base + "/t/p/original",
		Medium:   base + "/t/p/w500",
		Small:    base + "/t/p/w185",
	}
}

// URL joins the prefix for size with an image path such as "/abc.jpg".
// Unknown sizes use the original size; an empty path yields "".
func (u ImageURLs) URL(size, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	switch size {
	case SizeMedium:
		return u.Medium + path
	case SizeSmall:
		return u.Small + path
	default:
		return u.Original + path
	}
}
