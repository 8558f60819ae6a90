package overlay

import "strings"

// BundledDocument is the page served from the embedded assets when the
// configured url is not an http(s) URL.
const BundledDocument = "content.html"

// Content is what the web surface should display
type Content struct {
	Remote bool   `json:"remote"`
	URL    string `json:"url"`
}

// ResolveContent maps the configured url to a content source. Only http://
// and https:// URLs are navigated to; anything else, including local file
// paths, shows the bundled document.
func ResolveContent(url string) Content {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return Content{Remote: true, URL: url}
	}
	return Content{Remote: false, URL: BundledDocument}
}
