// Package release defines the canonical release record and the adapters that
// produce it from the hosting API's query surfaces.
package release

// Release is the one canonical release shape the core pipeline operates on,
// regardless of which query mechanism produced the raw data.
type Release struct {
	// TagName is the git tag of the release, e.g. "publisher-stocks@v1.2.0".
	TagName string `json:"tagName"`

	// PublishedAt is the publication timestamp, carried verbatim.
	PublishedAt string `json:"publishedAt"`

	// Assets lists the downloadable artifacts attached to the release.
	Assets []Asset `json:"assets"`

	// Body holds the free-text release notes. Newer releases embed a JSON
	// metadata document here.
	Body string `json:"body"`
}

// Asset is a single downloadable artifact on a release.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
